// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import "strings"

// An Inline is an inline element of body text, one of
// [Plain], [Escaped], [Code], [Emph], [Strong], [Link], and [Ref].
type Inline interface {
	Inline()

	printMarkdown(*printer)
}

// An Inlines is an [Inline] that represents a concatenation of Inlines.
type Inlines []Inline

func (Inlines) Inline() {}

func (x Inlines) printMarkdown(p *printer) {
	for _, inl := range x {
		inl.printMarkdown(p)
	}
}

// A Plain is an [Inline] representing plain text,
// including any markup delimiters that failed to pair up:
// an opening delimiter with no closing counterpart degrades to
// plain text rather than reporting an error.
type Plain struct {
	Text string
}

func (*Plain) Inline() {}

func (x *Plain) printMarkdown(p *printer) {
	p.md(x.Text)
}

// An Escaped is an [Inline] representing a backslash-escaped
// character. It prints with the backslash kept, which is the Markdown
// escape for the same punctuation set.
type Escaped struct {
	Plain
}

func (x *Escaped) printMarkdown(p *printer) {
	p.md(`\`)
	p.md(x.Text)
}

// A Code is an [Inline] representing an inline literal:
// ``text`` or non-reference interpreted text `text`.
type Code struct {
	Text string
}

func (*Code) Inline() {}

func (x *Code) printMarkdown(p *printer) {
	// Use the fewest backticks that exceed any run in the text,
	// and add spaces if the text begins or ends with a backtick.
	n := maxRun(x.Text, '`') + 1
	ticks := strings.Repeat("`", n)
	space := len(x.Text) == 0 || x.Text[0] == '`' || x.Text[len(x.Text)-1] == '`'
	p.md(ticks)
	if space {
		p.md(" ")
	}
	p.md(x.Text)
	if space {
		p.md(" ")
	}
	p.md(ticks)
}

// An Emph is an [Inline] representing emphasis: *text* or _text_.
// Both forms print with the normalized * marker.
type Emph struct {
	Inner Inlines
}

func (*Emph) Inline() {}

func (x *Emph) printMarkdown(p *printer) {
	p.md("*")
	x.Inner.printMarkdown(p)
	p.md("*")
}

// A Strong is an [Inline] representing strong emphasis:
// **text** or __text__, printed with the normalized ** marker.
type Strong struct {
	Inner Inlines
}

func (*Strong) Inline() {}

func (x *Strong) printMarkdown(p *printer) {
	p.md("**")
	x.Inner.printMarkdown(p)
	p.md("**")
}

// A Link is an [Inline] representing a hyperlink with an embedded
// target: `label <url>`_.
type Link struct {
	Text string
	URL  string
}

func (*Link) Inline() {}

func (x *Link) printMarkdown(p *printer) {
	p.md("[")
	p.md(x.Text)
	p.md("](")
	p.md(x.URL)
	p.md(")")
}

// A Ref is an [Inline] representing an internal reference:
// `label`_ or a bare word_. It resolves against the document's
// hyperlink targets when printed; an unresolved label becomes a
// best-effort local anchor link.
type Ref struct {
	Label string
}

func (*Ref) Inline() {}

func (x *Ref) printMarkdown(p *printer) {
	url, ok := p.links[normalizeRefName(x.Label)]
	if !ok {
		url = "#" + anchorSlug(x.Label)
	}
	p.md("[")
	p.md(x.Label)
	p.md("](")
	p.md(url)
	p.md(")")
}

// An inlineParser parses s[start:] into an Inline, returning the
// Inline and the index where it ends. If it cannot parse s[start:] as
// its construct, it returns ok=false and the scan moves on, so the
// text passes through as plain.
type inlineParser func(s string, start int) (x Inline, end int, ok bool)

// inline parses s into a sequence of inline elements.
// It scans left to right, dispatching on the byte at the scan point;
// anything unclaimed accumulates as [Plain] text. There is no error
// path: malformed markup is plain text.
func inline(s string) Inlines {
	var list Inlines
	emitted := 0
	emit := func(i int) {
		if emitted < i {
			list = append(list, &Plain{s[emitted:i]})
			emitted = i
		}
	}

	for off := 0; off < len(s); {
		var parser inlineParser
		switch s[off] {
		case '\\':
			parser = parseEscape
		case '`':
			parser = parseBacktick
		case '*':
			parser = parseEmph
		case '_':
			// A trailing underscore after a bare word is an internal
			// reference; it claims text already scanned past, so it is
			// handled outside the parser dispatch.
			if start, x, end, ok := trimTrailingRef(s, off); ok && start >= emitted {
				emit(start)
				list = append(list, x)
				emitted = end
				off = end
				continue
			}
			parser = parseEmph
		}
		if parser != nil {
			if x, end, ok := parser(s, off); ok {
				emit(off)
				list = append(list, x)
				emitted = end
				off = end
				continue
			}
		}
		off++
	}
	emit(len(s))
	return list
}

// parseEscape is an [inlineParser] for a backslash escape.
func parseEscape(s string, start int) (x Inline, end int, ok bool) {
	if start+1 < len(s) && isPunct(s[start+1]) {
		end = start + 2
		return &Escaped{Plain{s[start+1 : end]}}, end, true
	}
	return nil, 0, false
}

// parseBacktick is an [inlineParser] for the backtick constructs:
// ``literal``, `label <url>`_, `label`_, and plain `interpreted text`,
// which prints as an inline literal.
func parseBacktick(s string, start int) (x Inline, end int, ok bool) {
	if strings.HasPrefix(s[start:], "``") {
		j := strings.Index(s[start+2:], "``")
		if j < 0 {
			return nil, 0, false
		}
		return &Code{s[start+2 : start+2+j]}, start + 2 + j + 2, true
	}

	j := start + 1
	for ; ; j++ {
		if j >= len(s) {
			return nil, 0, false
		}
		if s[j] == '\\' {
			j++
			continue
		}
		if s[j] == '`' {
			break
		}
	}
	label := s[start+1 : j]
	if label == "" {
		return nil, 0, false
	}
	end = j + 1

	if end < len(s) && s[end] == '_' {
		end++
		if end < len(s) && s[end] == '_' {
			end++ // anonymous reference
		}
		// An embedded target turns the reference into a direct link.
		if k := strings.LastIndex(label, " <"); k >= 0 && strings.HasSuffix(label, ">") {
			return &Link{strings.TrimSpace(label[:k]), label[k+2 : len(label)-1]}, end, true
		}
		return &Ref{label}, end, true
	}
	return &Code{label}, end, true
}

// trimTrailingRef recognizes a bare internal reference word_:
// a run of letters, digits, and hyphens ending in an unescaped
// underscore, not embedded in a longer word. It returns the start of
// the word along with the usual [inlineParser] results.
// s[off] is known to be '_'.
func trimTrailingRef(s string, off int) (start int, x Inline, end int, ok bool) {
	ws := off
	for ws > 0 && isLDH(s[ws-1]) {
		ws--
	}
	if ws == off {
		return 0, nil, 0, false
	}
	if ws > 0 && (s[ws-1] == '\\' || s[ws-1] == '`' || s[ws-1] == '_') {
		return 0, nil, 0, false
	}
	end = off + 1
	if end < len(s) && s[end] == '_' {
		end++ // anonymous reference
	}
	if end < len(s) && (isLDH(s[end]) || s[end] == '_') {
		// Mid-word underscore, as in snake_case; not a reference.
		return 0, nil, 0, false
	}
	return ws, &Ref{s[ws:off]}, end, true
}

// parseEmph is an [inlineParser] for emphasis and strong emphasis with
// either marker character. The two-character markers ** and __ are
// tried before * and _, so the longest delimiter wins. Start-strings
// must be immediately followed by non-space text and end-strings
// immediately preceded by it; an opener with no closer fails, leaving
// the delimiter as plain text.
func parseEmph(s string, start int) (x Inline, end int, ok bool) {
	c := s[start]
	marker := s[start : start+1]
	if start+1 < len(s) && s[start+1] == c {
		marker = s[start : start+2]
	}
	if c == '_' && start > 0 && isLDH(s[start-1]) {
		// Underscore following a word is never an opener.
		return nil, 0, false
	}

	i := start + len(marker)
	if i >= len(s) || s[i] == ' ' {
		return nil, 0, false
	}
	j := findClose(s, marker, i)
	if j < 0 {
		return nil, 0, false
	}
	inner := inline(s[i:j])
	end = j + len(marker)
	if len(marker) == 2 {
		return &Strong{inner}, end, true
	}
	return &Emph{inner}, end, true
}

// findClose returns the index of the end-string matching marker at or
// after i, or -1. An end-string must follow non-space text, escapes do
// not count, and a single-character marker does not match inside a run
// of the same character.
func findClose(s, marker string, i int) int {
	for j := i; j+len(marker) <= len(s); j++ {
		if s[j] == '\\' {
			j++
			continue
		}
		if !strings.HasPrefix(s[j:], marker) {
			continue
		}
		if s[j-1] == ' ' {
			continue
		}
		if len(marker) == 1 && j+1 < len(s) && s[j+1] == marker[0] {
			j++
			continue
		}
		return j
	}
	return -1
}
