// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import "strings"

// A line is a single line of source text, without its trailing newline.
// Tabs have already been expanded (see expandTabs), so indentation is
// always a run of spaces and byte offsets are column numbers.
type line struct {
	text string
}

// isBlank reports whether the line is empty or all spaces.
func (s line) isBlank() bool {
	return trimSpace(s.text) == ""
}

// indent returns the indentation column of the line:
// the number of leading spaces.
func (s line) indent() int {
	i := 0
	for i < len(s.text) && s.text[i] == ' ' {
		i++
	}
	return i
}

// strip returns the line text with leading and trailing spaces removed.
func (s line) strip() string {
	return trimSpace(s.text)
}

// tail returns the line text with up to col leading columns removed.
// Blank lines dedent to the empty string regardless of col.
func (s line) tail(col int) string {
	if s.isBlank() {
		return ""
	}
	if col > s.indent() {
		col = s.indent()
	}
	return strings.TrimRight(s.text[col:], " ")
}

func trimSpace(s string) string {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	s = s[i:]
	j := len(s)
	for j > 0 && s[j-1] == ' ' {
		j--
	}
	return s[:j]
}

// expandTabs replaces tabs in s with spaces up to 8-column tab stops,
// the expansion reStructuredText defines for indentation.
// Mixing tabs and spaces then compares consistently by column.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\t' {
			b.WriteByte(' ')
			col++
			for col%8 != 0 {
				b.WriteByte(' ')
				col++
			}
			continue
		}
		b.WriteByte(s[i])
		col++
	}
	return b.String()
}

// isPunct reports whether c is ASCII punctuation.
func isPunct(c byte) bool {
	return '!' <= c && c <= '/' || ':' <= c && c <= '@' || '[' <= c && c <= '`' || '{' <= c && c <= '~'
}

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isLDH reports whether c is an ASCII letter, digit, or hyphen,
// the characters allowed in a bare reference name.
func isLDH(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' || c == '-'
}
