// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"reflect"
	"testing"
)

var expandTabsTests = []struct {
	in   string
	want string
}{
	{"", ""},
	{"no tabs", "no tabs"},
	{"\tx", "        x"},
	{"a\tb", "a       b"},
	{"ab\tc", "ab      c"},
	{"12345678\tx", "12345678        x"},
	{"\t\tx", "                x"},
}

func TestExpandTabs(t *testing.T) {
	for _, tt := range expandTabsTests {
		if got := expandTabs(tt.in); got != tt.want {
			t.Errorf("expandTabs(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDedent(t *testing.T) {
	in := []line{{"    a"}, {""}, {"      b"}, {"   "}, {"    c"}}
	want := []string{"a", "", "  b", "", "c"}
	if got := dedent(in); !reflect.DeepEqual(got, want) {
		t.Errorf("dedent = %q, want %q", got, want)
	}
}

func TestLineTail(t *testing.T) {
	s := line{"    text  "}
	if got := s.tail(2); got != "  text" {
		t.Errorf("tail(2) = %q, want %q", got, "  text")
	}
	if got := s.tail(8); got != "text" {
		t.Errorf("tail(8) = %q, want %q", got, "text")
	}
}
