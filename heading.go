// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import "strings"

// A Heading is a [Block] representing a section title:
// a line of text underlined (and optionally overlined) with a
// repeated adornment character, like
//
//	Title
//	=====
//
// reStructuredText assigns no fixed meaning to adornment characters;
// the nesting order of a document is whatever order its adornment
// styles first appear in. See [parser.styleLevel].
type Heading struct {
	Position

	// Level is the heading level, 1 through 6.
	Level int

	// Style is the adornment character that produced this heading.
	Style byte

	// Text is the title text.
	Text string
}

func (*Heading) Block() {}

func (b *Heading) printMarkdown(p *printer) {
	for i := 0; i < b.Level; i++ {
		p.md("#")
	}
	p.md(" ")
	p.inline(b.Text)
}

// adornmentChars is the set of characters docutils accepts for section
// adornments and transitions: ASCII punctuation.
const adornmentChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// adornChar reports whether s consists solely of two or more copies of
// one adornment character, returning that character.
func adornChar(s line) (byte, bool) {
	t := s.strip()
	if len(t) < 2 {
		return 0, false
	}
	c := t[0]
	if !strings.ContainsRune(adornmentChars, rune(c)) {
		return 0, false
	}
	for i := 1; i < len(t); i++ {
		if t[i] != c {
			return 0, false
		}
	}
	return c, true
}

// styleLevel returns the heading level for adornment character c,
// assigning the next free level on first encounter.
// The first style seen in a document is level 1, the second level 2,
// and so on; a style keeps its level for the whole document.
// Styles beyond the sixth all collapse to level 6,
// the deepest heading Markdown can express.
func (d *parser) styleLevel(c byte) int {
	if l, ok := d.levels[c]; ok {
		return l
	}
	l := len(d.levels) + 1
	if l > 6 {
		l = 6
	}
	d.levels[c] = l
	return l
}

// startHeading is a [starter] for a [Heading] in either form:
//
//	=====          Title
//	Title          =====
//	=====
//
// The overline, when present, must match the underline character and
// is consumed as decoration; it does not produce a distinct style.
func (d *parser) startHeading(s line) bool {
	if c, ok := adornChar(s); ok {
		// Possible overline form: adornment, title, matching adornment.
		if d.i+2 >= len(d.lines) {
			return false
		}
		title := d.lines[d.i+1]
		under := d.lines[d.i+2]
		if title.isBlank() {
			return false
		}
		if _, ok := adornChar(title); ok {
			return false
		}
		c2, ok := adornChar(under)
		if !ok || c2 != c {
			return false
		}
		text := title.strip()
		if len(s.strip()) < len(text) || len(under.strip()) < len(text) {
			return false
		}
		d.addBlock(&Heading{d.pos(d.i, d.i+2), d.styleLevel(c), c, text})
		d.i += 3
		return true
	}

	// Underline form: this line is the title.
	if !isUnderlinedTitle(d, d.i) {
		return false
	}
	c, _ := adornChar(d.lines[d.i+1])
	d.addBlock(&Heading{d.pos(d.i, d.i+1), d.styleLevel(c), c, s.strip()})
	d.i += 2
	return true
}
