// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import "strings"

// A Table is a [Block] representing a simple table:
//
//	=====  =====
//	one    two
//	=====  =====
//	a      b
//	=====  =====
//
// Column boundaries come from the '=' runs of the separator lines;
// every data line is sliced at those columns. Rows holds the raw cell
// text; inline markup in cells is interpreted when printing.
// The first row prints as the Markdown table header.
type Table struct {
	Position
	Rows [][]string
}

func (*Table) Block() {}

func (b *Table) printMarkdown(p *printer) {
	for i, row := range b.Rows {
		p.md("|")
		for _, cell := range row {
			p.md(" ")
			// Pipes inside a cell would split it; escape them before
			// inline rendering so they come out as \|.
			p.inline(strings.ReplaceAll(cell, "|", `\|`))
			p.md(" |")
		}
		if i == 0 {
			p.nl()
			p.md("|")
			for range row {
				p.md(" --- |")
			}
		}
		if i+1 < len(b.Rows) {
			p.nl()
		}
	}
}

// A span is one column of a table separator line:
// the byte range [start, end) of a '=' run.
type span struct {
	start, end int
}

// tableColumns reports whether s is a table separator line
// (runs of '=' separated by spaces, at least two runs)
// and returns the column spans.
func tableColumns(s line) ([]span, bool) {
	t := s.text
	var cols []span
	for i := 0; i < len(t); {
		switch t[i] {
		case ' ':
			i++
		case '=':
			start := i
			for i < len(t) && t[i] == '=' {
				i++
			}
			cols = append(cols, span{start, i})
		default:
			return nil, false
		}
	}
	if len(cols) < 2 {
		return nil, false
	}
	return cols, true
}

// sliceRow cuts one data line at the separator's column starts.
// The final column extends to the end of the line, so text that
// overruns the separator stays attached to the last cell.
func sliceRow(s line, cols []span) []string {
	t := s.text
	row := make([]string, len(cols))
	for i, c := range cols {
		start := c.start
		end := len(t)
		if i+1 < len(cols) {
			end = cols[i+1].start
		}
		if start > len(t) {
			start = len(t)
		}
		if end > len(t) {
			end = len(t)
		}
		row[i] = trimSpace(t[start:end])
	}
	return row
}

// startTable is a [starter] for a [Table].
// The table ends at its final separator line (one followed by a blank
// line or end of input) or, for malformed input, at the first blank
// line; interior separator lines only delimit the header.
func (d *parser) startTable(s line) bool {
	cols, ok := tableColumns(s)
	if !ok {
		return false
	}
	first := d.i
	d.i++
	var rows [][]string
	for d.i < len(d.lines) {
		s := d.lines[d.i]
		if s.isBlank() {
			break
		}
		if _, ok := tableColumns(s); ok {
			d.i++
			if d.i >= len(d.lines) || d.lines[d.i].isBlank() {
				break
			}
			continue
		}
		rows = append(rows, sliceRow(s, cols))
		d.i++
	}
	if len(rows) == 0 {
		// Separator lines with no data; nothing to print.
		return true
	}
	d.addBlock(&Table{d.pos(first, d.i - 1), rows})
	return true
}
