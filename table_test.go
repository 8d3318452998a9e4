// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"reflect"
	"testing"
)

var tableColumnsTests = []struct {
	in   string
	cols []span
	ok   bool
}{
	{"===  ===", []span{{0, 3}, {5, 8}}, true},
	{"==  ==  ==", []span{{0, 2}, {4, 6}, {8, 10}}, true},
	{"  ===  ===", []span{{2, 5}, {7, 10}}, true},
	{"=====", nil, false},
	{"=== x ===", nil, false},
	{"", nil, false},
	{"---  ---", nil, false},
}

func TestTableColumns(t *testing.T) {
	for _, tt := range tableColumnsTests {
		cols, ok := tableColumns(line{tt.in})
		if !reflect.DeepEqual(cols, tt.cols) || ok != tt.ok {
			t.Errorf("tableColumns(%q) = %v, %v, want %v, %v", tt.in, cols, ok, tt.cols, tt.ok)
		}
	}
}

var sliceRowTests = []struct {
	in   string
	cols []span
	want []string
}{
	{"foo  bar", []span{{0, 3}, {5, 8}}, []string{"foo", "bar"}},
	{"a    b and more", []span{{0, 3}, {5, 8}}, []string{"a", "b and more"}},
	{"x", []span{{0, 3}, {5, 8}}, []string{"x", ""}},
	{"", []span{{0, 3}, {5, 8}}, []string{"", ""}},
	{"  pad  pad  ", []span{{0, 3}, {5, 8}}, []string{"pad", "pad"}},
}

func TestSliceRow(t *testing.T) {
	for _, tt := range sliceRowTests {
		if got := sliceRow(line{tt.in}, tt.cols); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("sliceRow(%q, %v) = %q, want %q", tt.in, tt.cols, got, tt.want)
		}
	}
}

func TestSeparatorOnlyTable(t *testing.T) {
	// Separator lines with no data rows consume cleanly and emit nothing.
	if got := Convert("t", "===  ===\n===  ===\n"); got != "" {
		t.Errorf("got %q, want empty output", got)
	}
}
