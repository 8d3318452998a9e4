// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Rst2md converts reStructuredText to Markdown.
//
// Usage:
//
//	rst2md [file...]
//
// Rst2md reads the named files, or else standard input, as
// reStructuredText documents and prints the corresponding Markdown to
// standard output.
//
// Conversion itself cannot fail; rst2md exits non-zero only when an
// input file cannot be read or is not valid UTF-8.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"unicode/utf8"

	"rsc.io/rst"
)

var exit = 0

func usage() {
	fmt.Fprintf(os.Stderr, "usage: rst2md [file...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("rst2md: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		convert(data, "stdin")
	} else {
		for _, file := range flag.Args() {
			data, err := os.ReadFile(file)
			if err != nil {
				log.Print(err)
				exit = 1
				continue
			}
			convert(data, file)
		}
	}
	os.Exit(exit)
}

func convert(data []byte, name string) {
	if !utf8.Valid(data) {
		log.Printf("%s: invalid UTF-8", name)
		exit = 1
		return
	}
	os.Stdout.WriteString(rst.Convert(name, string(data)))
}
