// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import "strings"

// A Parser is a reStructuredText parser.
// The exported fields control parsing; the zero value is a valid
// configuration accepting the full supported subset.
type Parser struct {
	// DropDirectives discards unrecognized directives entirely
	// instead of emitting them as HTML comments.
	DropDirectives bool
}

// A parser holds the state of one Parse call.
// All state is per-call: the heading style map in particular must not
// outlive the call, so that a given adornment character maps to the
// same level for one document but is reassigned fresh for the next.
type parser struct {
	Parser
	doc    *Document
	lines  []line
	i      int          // index of the line being considered
	levels map[byte]int // adornment style character → heading level
	cols   []int        // marker columns of the current list run, ascending
}

// A starter attempts to parse the block construct it recognizes,
// beginning at p.lines[p.i]. On success it appends the block(s) to the
// document, advances p.i past the consumed lines, and reports true.
// On failure it leaves p.i unchanged.
type starter func(p *parser, s line) bool

// starters lists the block constructs in match order.
// Paragraph is not in the list: it is the fallback for any line
// no starter claims, so parsing never fails.
var starters = []starter{
	(*parser).startDirective,
	(*parser).startHeading,
	(*parser).startTransition,
	(*parser).startTable,
	(*parser).startListItem,
}

// Parse parses text as a reStructuredText document.
func (p *Parser) Parse(text string) *Document {
	d := &parser{
		Parser: *p,
		doc:    &Document{Links: make(map[string]string)},
		levels: make(map[byte]int),
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\x00", "�")
	for _, s := range strings.Split(text, "\n") {
		d.lines = append(d.lines, line{expandTabs(s)})
	}

Lines:
	for d.i < len(d.lines) {
		s := d.lines[d.i]
		if s.isBlank() {
			// Blank runs collapse; block separation is reconstructed
			// from block boundaries when printing.
			d.i++
			continue
		}
		for _, start := range starters {
			if start(d, s) {
				continue Lines
			}
		}
		d.startParagraph(s)
	}

	d.doc.Position = Position{1, len(d.lines)}
	return d.doc
}

// addBlock appends b to the document.
// Any block other than a list item ends the current list run,
// so that a later list starts its nesting depths over.
func (d *parser) addBlock(b Block) {
	if _, ok := b.(*Item); !ok {
		d.cols = d.cols[:0]
	}
	d.doc.Blocks = append(d.doc.Blocks, b)
}

// pos returns the Position for lines first through last, 0-indexed.
func (d *parser) pos(first, last int) Position {
	return Position{first + 1, last + 1}
}

// A Paragraph is a [Block] of running text.
// Text holds the raw source text with line breaks folded to spaces;
// inline markup is interpreted when the paragraph is printed.
type Paragraph struct {
	Position
	Text string
}

func (*Paragraph) Block() {}

func (b *Paragraph) printMarkdown(p *printer) {
	p.inline(b.Text)
}

// startParagraph consumes a paragraph starting at s.
// It always succeeds: a paragraph is the fallback for unrecognized
// lines. A paragraph ending in "::" additionally introduces a literal
// block (see startLiteral).
func (d *parser) startParagraph(s line) {
	indent := s.indent()
	first := d.i
	var texts []string
	for d.i < len(d.lines) {
		s := d.lines[d.i]
		if s.isBlank() {
			break
		}
		// A line followed by a matching adornment is a section title:
		// leave both for the heading starter.
		if d.i > first && isUnderlinedTitle(d, d.i) {
			break
		}
		texts = append(texts, s.strip())
		d.i++
	}
	last := d.i - 1

	text := strings.Join(texts, " ")
	if strings.HasSuffix(text, "::") {
		// "Paragraph::" introduces a literal block. The marker is
		// stripped; a paragraph that was only the marker disappears.
		text = strings.TrimRight(text[:len(text)-2], " ")
		if text != "" {
			d.addBlock(&Paragraph{d.pos(first, last), text})
		}
		if lit := d.startLiteral(indent); lit != nil {
			d.addBlock(lit)
		}
		return
	}
	d.addBlock(&Paragraph{d.pos(first, last), text})
}

// isUnderlinedTitle reports whether the line at index i is a section
// title: a non-adornment line whose following line is an adornment run
// at least as long as the title text.
func isUnderlinedTitle(d *parser, i int) bool {
	if i+1 >= len(d.lines) {
		return false
	}
	if _, ok := adornChar(d.lines[i]); ok {
		return false
	}
	if _, ok := adornChar(d.lines[i+1]); !ok {
		return false
	}
	return len(d.lines[i+1].strip()) >= len(d.lines[i].strip())
}
