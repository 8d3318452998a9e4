// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"bytes"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"golang.org/x/tools/txtar"
)

var goldmarkFlag = flag.Bool("goldmark", false, "check that emitted Markdown parses with goldmark")

// TestConvert runs the conversion test corpus: each testdata/*.txt is a
// txtar archive of name.rst/name.md pairs, with parser settings in the
// archive comment.
func TestConvert(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata")
	}
	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txt"), func(t *testing.T) {
			a, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			var p Parser
			for _, setting := range strings.Split(string(a.Comment), "\n") {
				switch strings.TrimSpace(setting) {
				case "":
					// ok
				case "DropDirectives: true":
					p.DropDirectives = true
				default:
					t.Fatalf("%s: unknown parser setting %q", file, setting)
				}
			}
			if len(a.Files)%2 != 0 {
				t.Fatalf("%s: unpaired txtar files", file)
			}
			for i := 0; i+1 < len(a.Files); i += 2 {
				in, out := a.Files[i], a.Files[i+1]
				name := strings.TrimSuffix(in.Name, ".rst")
				if !strings.HasSuffix(in.Name, ".rst") || out.Name != name+".md" {
					t.Fatalf("%s: mismatched txtar pair %q, %q", file, in.Name, out.Name)
				}
				t.Run(name, func(t *testing.T) {
					doc := p.Parse(string(in.Data))
					doc.Name = name
					md := ToMarkdown(doc)
					if md != string(out.Data) {
						t.Fatalf("conversion mismatch:\n--- have ---\n%s--- want ---\n%s", md, out.Data)
					}
					if *goldmarkFlag {
						var buf bytes.Buffer
						if err := goldmark.Convert([]byte(md), &buf); err != nil {
							t.Fatalf("goldmark rejects emitted Markdown: %v", err)
						}
					}
				})
			}
		})
	}
}

func TestConvertNewlines(t *testing.T) {
	// CRLF and bare CR input behave exactly like LF input.
	want := Convert("t", "Title\n=====\n\npara\n")
	if got := Convert("t", "Title\r\n=====\r\n\r\npara\r\n"); got != want {
		t.Errorf("CRLF: got %q, want %q", got, want)
	}
	if got := Convert("t", "Title\r=====\r\rpara\r"); got != want {
		t.Errorf("CR: got %q, want %q", got, want)
	}
}

func TestConvertOutputInvariant(t *testing.T) {
	// Non-empty output ends in exactly one newline.
	for _, in := range []string{"x", "x\n", "x\n\n\n", "\n\n", ""} {
		out := Convert("t", in)
		if out == "" {
			continue
		}
		if !strings.HasSuffix(out, "\n") || strings.HasSuffix(out, "\n\n") {
			t.Errorf("Convert(%q) = %q, want exactly one trailing newline", in, out)
		}
	}
}
