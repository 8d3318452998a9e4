// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import "strings"

// An Item is a [Block] representing one bullet or enumerated list
// item. Bullet items carry the marker character in Bullet; enumerated
// items carry their ordinal text ("1", "23", "a") in Ordinal, with
// Bullet zero. Nesting is flattened: Depth is the item's nesting depth
// within its list run, with 0 the shallowest.
type Item struct {
	Position

	Depth   int
	Bullet  byte   // '*', '-', or '+'; 0 for enumerated items
	Ordinal string // enumerated ordinal, carried verbatim
	Text    string
}

func (*Item) Block() {}

func (b *Item) printMarkdown(p *printer) {
	for i := 0; i < b.Depth; i++ {
		p.md("  ")
	}
	if b.Bullet != 0 {
		p.md("- ")
	} else {
		p.md(b.Ordinal)
		p.md(". ")
	}
	p.inline(b.Text)
}

// trimListMarker trims a list marker from the start of t,
// reporting the bullet character or ordinal text and the remaining
// item text. A bullet marker is '*', '-', or '+' followed by a space;
// an enumerated marker is a run of up to nine digits or one letter,
// then '.' or ')', then a space.
func trimListMarker(t string) (bullet byte, ordinal, rest string, ok bool) {
	if len(t) >= 2 && (t[0] == '*' || t[0] == '-' || t[0] == '+') && t[1] == ' ' {
		return t[0], "", trimSpace(t[2:]), true
	}
	n := 0
	for n < len(t) && isDigit(t[n]) {
		n++
	}
	if n == 0 && len(t) > 0 && isLetter(t[0]) {
		n = 1
	}
	if n == 0 || n > 9 || n+1 >= len(t) {
		return 0, "", "", false
	}
	if t[n] != '.' && t[n] != ')' {
		return 0, "", "", false
	}
	if t[n+1] != ' ' {
		return 0, "", "", false
	}
	return 0, t[:n], trimSpace(t[n+2:]), true
}

// listDepth returns the nesting depth for an item whose marker sits at
// column col: the rank of col among the distinct marker columns seen
// in the current list run. Depths are relative to the shallowest
// marker of the run, so a run starting at column 4 still begins at
// depth 0.
func (d *parser) listDepth(col int) int {
	for i, c := range d.cols {
		if col == c {
			return i
		}
		if col < c {
			d.cols = append(d.cols, 0)
			copy(d.cols[i+1:], d.cols[i:])
			d.cols[i] = col
			return i
		}
	}
	d.cols = append(d.cols, col)
	return len(d.cols) - 1
}

// startListItem is a [starter] for an [Item].
// Lines indented past the marker column that are not themselves items
// are continuation text, folded into the item joined by single spaces.
func (d *parser) startListItem(s line) bool {
	col := s.indent()
	bullet, ordinal, rest, ok := trimListMarker(s.strip())
	if !ok {
		return false
	}
	first := d.i
	d.i++
	var cont []string
	for d.i < len(d.lines) {
		n := d.lines[d.i]
		if n.isBlank() || n.indent() <= col {
			break
		}
		if _, _, _, ok := trimListMarker(n.strip()); ok {
			break
		}
		cont = append(cont, n.strip())
		d.i++
	}
	if len(cont) > 0 {
		rest = strings.TrimRight(strings.Join(append([]string{rest}, cont...), " "), " ")
	}
	d.addBlock(&Item{d.pos(first, d.i - 1), d.listDepth(col), bullet, ordinal, rest})
	return true
}
