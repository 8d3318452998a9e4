// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import "testing"

var normalizeRefNameTests = []struct {
	in   string
	want string
}{
	{"Docs", "docs"},
	{"User Guide", "user guide"},
	{"User    Guide", "user guide"},
	{"  padded  ", "padded"},
	{"MiXeD-Case_name", "mixed-case_name"},
	{"Straße", "strasse"},
}

func TestNormalizeRefName(t *testing.T) {
	for _, tt := range normalizeRefNameTests {
		if got := normalizeRefName(tt.in); got != tt.want {
			t.Errorf("normalizeRefName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

var anchorSlugTests = []struct {
	in   string
	want string
}{
	{"Getting Started", "getting-started"},
	{"word", "word"},
	{"C++ API", "c-api"},
	{"foo_bar", "foo-bar"},
	{"Version 2.0", "version-20"},
}

func TestAnchorSlug(t *testing.T) {
	for _, tt := range anchorSlugTests {
		if got := anchorSlug(tt.in); got != tt.want {
			t.Errorf("anchorSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLinkTargets(t *testing.T) {
	doc := Parse(".. _Docs: https://e.com/docs\n" +
		".. _`RFC 2616`: https://e.com/rfc\n" +
		".. _wrapped: https://e.com/\n   a/b\n" +
		".. _indirect: other_\n" +
		".. _anonymous:\n")
	want := map[string]string{
		"docs":     "https://e.com/docs",
		"rfc 2616": "https://e.com/rfc",
		"wrapped":  "https://e.com/a/b",
	}
	if len(doc.Links) != len(want) {
		t.Errorf("Links = %v, want %v", doc.Links, want)
	}
	for name, url := range want {
		if doc.Links[name] != url {
			t.Errorf("Links[%q] = %q, want %q", name, doc.Links[name], url)
		}
	}
}
