// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rst converts reStructuredText documents to Markdown.

The package handles a constrained, commonly used subset of
reStructuredText: adorned section titles, bullet and enumerated lists,
literal blocks, simple tables, directives, transitions, and inline
markup (emphasis, strong emphasis, inline literals, hyperlinks, and
internal references). It does not interpret Sphinx directives, resolve
cross-document references, or attempt round-trip fidelity.

Conversion never fails: input that does not match a recognized
construct passes through as plain paragraph text, and unmatched inline
delimiters are emitted verbatim.
*/
package rst

// A Position describes the source line range of a block:
// the text on lines StartLine through EndLine, inclusive.
// Line numbers are 1-indexed.
type Position struct {
	StartLine int
	EndLine   int
}

func (p Position) Pos() Position {
	return p
}

// A Block is a top-level structural element of a document:
// one of [Paragraph], [Heading], [Item], [CodeBlock], [Table],
// [Directive], [ThematicBreak], or [Document] itself.
type Block interface {
	Block()
	Pos() Position

	printMarkdown(*printer)
}

// A Document is a parsed reStructuredText document.
type Document struct {
	Position

	// Name is an optional label for the document, such as its file name.
	// It is used for labeling only and is never parsed.
	Name string

	// Blocks are the top-level blocks of the document, in input order.
	Blocks []Block

	// Links maps normalized hyperlink target names
	// (from ".. _name: url" lines) to their URLs.
	Links map[string]string
}

func (*Document) Block() {}

func (b *Document) printMarkdown(p *printer) {
	for i, c := range b.Blocks {
		if i > 0 {
			p.nl()
			// Consecutive list items stay adjacent; everything else is
			// separated by one blank line.
			if !tightPair(b.Blocks[i-1], c) {
				p.nl()
			}
		}
		c.printMarkdown(p)
	}
}

// tightPair reports whether blocks prev and next should be printed
// without a blank line between them: both list items, of the same
// list kind.
func tightPair(prev, next Block) bool {
	p, ok1 := prev.(*Item)
	n, ok2 := next.(*Item)
	return ok1 && ok2 && (p.Bullet != 0) == (n.Bullet != 0)
}

// Parse parses text as a reStructuredText document with default settings.
func Parse(text string) *Document {
	var p Parser
	return p.Parse(text)
}

// Convert converts the reStructuredText document text to Markdown.
// The name is a label for the document, such as a file name;
// it is recorded on the parsed document but never parsed itself.
func Convert(name, text string) string {
	doc := Parse(text)
	doc.Name = name
	return ToMarkdown(doc)
}
