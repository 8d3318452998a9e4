// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"bytes"
	"strings"
)

// A printer accumulates Markdown output.
// It carries the document's hyperlink targets so that [Ref] spans can
// resolve while printing.
type printer struct {
	buf   bytes.Buffer
	links map[string]string
}

func (p *printer) md(s string) {
	p.buf.WriteString(s)
}

func (p *printer) nl() {
	// Lines never end in trailing spaces.
	text := p.buf.Bytes()
	w := len(text)
	for w > 0 && text[w-1] == ' ' {
		w--
	}
	p.buf.Truncate(w)
	p.buf.WriteByte('\n')
}

// inline renders s through the inline markup scanner.
// Literal text (code block lines, fences) goes through md instead.
func (p *printer) inline(s string) {
	for _, x := range inline(s) {
		x.printMarkdown(p)
	}
}

// ToMarkdown returns the Markdown rendering of b.
// Rendering a [Document] resolves internal references against its
// hyperlink targets. Output ends in a single newline; a document with
// no printable blocks renders as the empty string.
func ToMarkdown(b Block) string {
	var p printer
	if d, ok := b.(*Document); ok {
		p.links = d.Links
	}
	b.printMarkdown(&p)

	s := strings.TrimRight(p.buf.String(), " \n")
	if s == "" {
		return ""
	}
	return s + "\n"
}
