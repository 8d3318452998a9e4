// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import "strings"

// A Directive is a [Block] representing an explicit markup directive:
//
//	.. name:: args
//	   body
//
// Directives are recognized but never interpreted. A handful of
// well-known code directives become a [CodeBlock] and image directives
// become image paragraphs; everything else is carried through as a
// comment in the output (or dropped, see [Parser.DropDirectives]).
type Directive struct {
	Position
	Name string
	Args string
	Body []string
}

func (*Directive) Block() {}

func (b *Directive) printMarkdown(p *printer) {
	p.md("<!-- ")
	p.md(b.Name)
	if b.Args != "" {
		p.md(" ")
		p.md(b.Args)
	}
	p.md(" -->")
}

// codeDirectives names the directives whose body is a code sample.
// Their argument, when present, is a language name.
var codeDirectives = map[string]bool{
	"code":       true,
	"code-block": true,
	"sourcecode": true,
	"highlight":  true,
}

// imageDirectives names the directives that place an image.
var imageDirectives = map[string]bool{
	"image":  true,
	"figure": true,
}

// startDirective is a [starter] for explicit markup: directives,
// comments, and hyperlink targets, all introduced by "..".
func (d *parser) startDirective(s line) bool {
	t := s.strip()
	if t != ".." && !strings.HasPrefix(t, ".. ") {
		return false
	}
	indent := s.indent()
	first := d.i
	rest := trimSpace(strings.TrimPrefix(t, ".."))
	d.i++
	body := d.explicitBody(indent)

	switch {
	case rest == "":
		// Comment; drops.

	case rest[0] == '_':
		// Hyperlink target: .. _name: url
		d.addLinkTarget(rest, body)

	case rest[0] == '|':
		// Substitution definition; outside the supported subset, drops.

	default:
		name, args, ok := cutDirective(rest)
		if !ok {
			// ".. arbitrary text" is a comment; drops.
			break
		}
		pos := d.pos(first, d.i-1)
		switch {
		case codeDirectives[name]:
			d.addBlock(&CodeBlock{pos, args, dedent(trimFields(body))})
		case imageDirectives[name]:
			d.addBlock(&Paragraph{pos, "![" + imageAlt(body) + "](" + args + ")"})
		case !d.DropDirectives:
			d.addBlock(&Directive{pos, name, args, dedent(body)})
		}
	}
	return true
}

// explicitBody collects the indented body of an explicit markup block
// starting at column indent: all following lines indented past indent,
// with interior blank lines kept and trailing blank lines dropped.
func (d *parser) explicitBody(indent int) []line {
	first := d.i
	last := d.i - 1
	for d.i < len(d.lines) {
		s := d.lines[d.i]
		if !s.isBlank() {
			if s.indent() <= indent {
				break
			}
			last = d.i
		}
		d.i++
	}
	d.i = last + 1
	return d.lines[first : last+1]
}

// cutDirective splits "name:: args" into its parts.
func cutDirective(s string) (name, args string, ok bool) {
	i := strings.Index(s, "::")
	if i <= 0 {
		return "", "", false
	}
	name = trimSpace(s[:i])
	for j := 0; j < len(name); j++ {
		if !isLDH(name[j]) && name[j] != '_' {
			return "", "", false
		}
	}
	return name, trimSpace(s[i+2:]), true
}

// addLinkTarget records a hyperlink target ".. _name: url" in the
// document link map. The name may be backquoted to contain colons;
// the URL may continue on indented lines, which are joined without
// spaces, as docutils does for wrapped URLs.
func (d *parser) addLinkTarget(rest string, body []line) {
	rest = rest[1:] // leading _
	var name, url string
	if strings.HasPrefix(rest, "`") {
		j := strings.Index(rest[1:], "`:")
		if j < 0 {
			return
		}
		name = rest[1 : 1+j]
		url = trimSpace(rest[1+j+2:])
	} else {
		j := targetNameEnd(rest)
		if j < 0 {
			return
		}
		name = rest[:j]
		url = trimSpace(rest[j+1:])
	}
	for _, s := range body {
		url += s.strip()
	}
	if name == "" || url == "" || strings.HasSuffix(url, "_") {
		// Anonymous and indirect targets cannot be resolved locally.
		return
	}
	d.doc.Links[normalizeRefName(name)] = url
}

// targetNameEnd returns the index of the colon ending a plain target
// name: the first unescaped ':' that is followed by a space or ends
// the string, so that URLs like https://... are not split.
func targetNameEnd(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case ':':
			if i+1 == len(s) || s[i+1] == ' ' {
				return i
			}
		}
	}
	return -1
}

// trimFields drops leading option fields (":linenos:" and the like)
// and blank lines from a directive body, leaving the content.
func trimFields(body []line) []line {
	for len(body) > 0 {
		t := body[0].strip()
		if t == "" || (strings.HasPrefix(t, ":") && strings.Count(t, ":") >= 2) {
			body = body[1:]
			continue
		}
		break
	}
	return body
}

// imageAlt extracts the :alt: option from an image directive body,
// if present.
func imageAlt(body []line) string {
	for _, s := range body {
		if t, ok := strings.CutPrefix(s.strip(), ":alt:"); ok {
			return trimSpace(t)
		}
	}
	return ""
}
