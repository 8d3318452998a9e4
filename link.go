// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// normalizeRefName returns the normalized form of a reference name,
// for use as a map key: reStructuredText reference names are
// case-insensitive with runs of whitespace folded to single spaces.
func normalizeRefName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	var b strings.Builder
	hi := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c >= 0x80 {
			hi = true
		}
		b.WriteByte(c)
	}
	s = b.String()
	if hi {
		s = cases.Fold().String(s)
	}
	return s
}

// anchorSlug converts a reference label to a local anchor fragment:
// lower case, spaces and underscores become hyphens, and other
// punctuation drops, matching the ids Markdown renderers generate
// for headings.
func anchorSlug(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
