// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

// A ThematicBreak is a [Block] representing a transition:
// a line of four or more repeated adornment characters with blank
// lines on both sides, printed as a horizontal rule.
type ThematicBreak struct {
	Position
}

func (*ThematicBreak) Block() {}

func (b *ThematicBreak) printMarkdown(p *printer) {
	p.md("---")
}

// startTransition is a [starter] for a [ThematicBreak].
// It runs after startHeading, so an adornment line that reaches it
// cannot be a title overline or underline; the blank-neighbor rule
// keeps stray adornments inside paragraphs from becoming rules.
func (d *parser) startTransition(s line) bool {
	if _, ok := adornChar(s); !ok {
		return false
	}
	if len(s.strip()) < 4 {
		return false
	}
	if d.i > 0 && !d.lines[d.i-1].isBlank() {
		return false
	}
	if d.i+1 < len(d.lines) && !d.lines[d.i+1].isBlank() {
		return false
	}
	d.addBlock(&ThematicBreak{d.pos(d.i, d.i)})
	d.i++
	return true
}
