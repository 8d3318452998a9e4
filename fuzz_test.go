// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"golang.org/x/tools/txtar"
)

// FuzzConvert checks that conversion never fails on arbitrary input:
// no panic, output ends in a newline, and the emitted Markdown is
// accepted by an independent Markdown parser.
func FuzzConvert(f *testing.F) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		f.Fatal(err)
	}
	for _, file := range files {
		a, err := txtar.ParseFile(file)
		if err != nil {
			f.Fatal(err)
		}
		for _, tf := range a.Files {
			if strings.HasSuffix(tf.Name, ".rst") {
				f.Add(string(tf.Data))
			}
		}
	}
	f.Fuzz(func(t *testing.T, s string) {
		out := Convert("fuzz", s)
		if out != "" && !strings.HasSuffix(out, "\n") {
			t.Fatalf("output does not end in newline: %q", out)
		}
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(out), &buf); err != nil {
			t.Fatalf("emitted Markdown does not parse: %v", err)
		}
	})
}
