// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import "strings"

// A CodeBlock is a [Block] representing a literal block:
// the indented text following a paragraph ending in "::",
// or the body of a code directive. Text holds the lines dedented by
// the block's minimum indentation but otherwise verbatim; internal
// blank lines are preserved. Info is a language hint and is empty
// unless a directive supplied one.
type CodeBlock struct {
	Position
	Info string
	Text []string
}

func (*CodeBlock) Block() {}

func (b *CodeBlock) printMarkdown(p *printer) {
	// Use a fence longer than any backtick run in the text.
	n := 3
	for _, s := range b.Text {
		if m := maxRun(s, '`'); m >= n {
			n = m + 1
		}
	}
	fence := strings.Repeat("`", n)
	p.md(fence)
	p.md(b.Info)
	p.nl()
	for _, s := range b.Text {
		p.md(s)
		p.nl()
	}
	p.md(fence)
}

// maxRun returns the length of the longest run of b bytes in s.
func maxRun(s string, b byte) int {
	m := 0
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			n++
			if n > m {
				m = n
			}
		} else {
			n = 0
		}
	}
	return m
}

// startLiteral consumes the literal block following a "::" paragraph
// whose text began at column indent: a blank line and then one or more
// lines indented past indent. It returns nil, consuming nothing, if no
// such block follows.
func (d *parser) startLiteral(indent int) *CodeBlock {
	j := d.i
	for j < len(d.lines) && d.lines[j].isBlank() {
		j++
	}
	if j == d.i || j >= len(d.lines) || d.lines[j].indent() <= indent {
		return nil
	}
	first := j
	last := j
	for j < len(d.lines) {
		s := d.lines[j]
		if !s.isBlank() {
			if s.indent() <= indent {
				break
			}
			last = j
		}
		j++
	}
	d.i = j

	text := dedent(d.lines[first : last+1])
	return &CodeBlock{d.pos(first, last), "", text}
}

// dedent strips the minimum indentation of the non-blank lines in
// block from every line, preserving relative indentation and blank
// lines exactly.
func dedent(block []line) []string {
	min := -1
	for _, s := range block {
		if s.isBlank() {
			continue
		}
		if n := s.indent(); min < 0 || n < min {
			min = n
		}
	}
	if min < 0 {
		min = 0
	}
	text := make([]string, len(block))
	for i, s := range block {
		text[i] = s.tail(min)
	}
	return text
}
