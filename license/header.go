// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"regexp"
	"strconv"
	"strings"
)

// HeaderState describes the license header found in a file.
type HeaderState int

const (
	// HeaderNone means the file has no license header.
	HeaderNone HeaderState = iota
	// HeaderMatching means the header is the expected template.
	HeaderMatching
	// HeaderStale means the header is the expected template with the
	// wrong year.
	HeaderStale
	// HeaderForeign means the file has a header for a different license.
	HeaderForeign
)

func (s HeaderState) String() string {
	switch s {
	case HeaderNone:
		return "none"
	case HeaderMatching:
		return "matching"
	case HeaderStale:
		return "stale"
	case HeaderForeign:
		return "foreign"
	}
	return "HeaderState(" + strconv.Itoa(int(s)) + ")"
}

var licenseIndicators = []string{"license", "copyright", "©", "spdx-license-identifier"}

// document is a file split into lines, with the position of its leading
// comment block.
type document struct {
	nl    string
	lines []string
	style CommentStyle

	// preserved is the number of leading lines that stay above the header.
	preserved int
	// blockEnd is the index after the last line of the comment block that
	// starts at preserved. blockEnd == preserved if there is no block.
	blockEnd int
}

func parseDocument(content string, style CommentStyle) *document {
	d := &document{nl: "\n", style: style}
	if strings.Contains(content, "\r\n") {
		d.nl = "\r\n"
	}
	d.lines = strings.Split(content, d.nl)

	i := 0
	if strings.HasPrefix(d.lines[0], "#!") {
		i++
	}
	for i < len(d.lines) && isDeclaration(d.lines[i]) {
		i++
	}
	d.preserved = i
	d.blockEnd = d.findBlockEnd(i)
	return d
}

func isDeclaration(line string) bool {
	l := strings.ToLower(strings.TrimSpace(line))
	return strings.HasPrefix(l, "<?xml") || strings.HasPrefix(l, "<!doctype") || strings.HasPrefix(l, "<?php")
}

func (d *document) findBlockEnd(start int) int {
	if start >= len(d.lines) {
		return start
	}
	if !d.style.Paired() {
		i := start
		for i < len(d.lines) && strings.HasPrefix(strings.TrimLeft(d.lines[i], " \t"), d.style.Start) {
			i++
		}
		return i
	}

	first := strings.TrimLeft(d.lines[start], " \t")
	if !strings.HasPrefix(first, d.style.Start) {
		return start
	}
	if strings.Contains(first[len(d.style.Start):], d.style.End) {
		return start + 1
	}
	for i := start + 1; i < len(d.lines); i++ {
		if strings.Contains(d.lines[i], d.style.End) {
			return i + 1
		}
	}
	// Unterminated comment.
	return start
}

func (d *document) block() []string { return d.lines[d.preserved:d.blockEnd] }

// hasLicense reports whether the leading comment block is a license header.
func (d *document) hasLicense() bool {
	text := strings.ToLower(strings.Join(d.block(), "\n"))
	for _, ind := range licenseIndicators {
		if strings.Contains(text, ind) {
			return true
		}
	}
	return false
}

// blockText returns the leading comment block without comment markers.
func (d *document) blockText() string {
	out := make([]string, 0, d.blockEnd-d.preserved)
	for i := d.preserved; i < d.blockEnd; i++ {
		out = append(out, d.lineText(i))
	}
	return strings.Join(out, "\n")
}

// lineText returns line i of the comment block without comment markers.
func (d *document) lineText(i int) string {
	line := strings.TrimSpace(d.lines[i])
	if !d.style.Paired() {
		return strings.TrimSpace(strings.TrimPrefix(line, d.style.Start))
	}
	if i == d.preserved {
		line = strings.TrimPrefix(line, d.style.Start)
	}
	if i == d.blockEnd-1 {
		line = strings.TrimSuffix(line, d.style.End)
	}
	line = strings.TrimSpace(line)
	switch {
	case line == "*":
		line = ""
	case strings.HasPrefix(line, "* "):
		line = line[2:]
	}
	return strings.TrimSpace(line)
}

var noticeLine = regexp.MustCompile(`(?i)copyright|©|\(c\)|spdx-license-identifier|all rights reserved`)

// headerEnd returns the index after the license part of the comment block,
// or d.preserved if the block does not start with one. The license part is
// a run of copyright notices and lines of known templates, possibly
// separated by empty comment lines.
func (d *document) headerEnd(known *lineSet) int {
	end := d.preserved
	for i := d.preserved; i < d.blockEnd; i++ {
		text := d.lineText(i)
		switch {
		case text == "":
		case noticeLine.MatchString(text) || known.contains(text):
			end = i + 1
		default:
			return end
		}
	}
	return end
}

// state classifies the header against the template recognized by m.
// A zero year accepts any year.
func (d *document) state(m *matcher, year int) HeaderState {
	if !d.hasLicense() {
		return HeaderNone
	}
	ok, got := m.match(d.blockText())
	switch {
	case !ok:
		return HeaderForeign
	case year != 0 && got != 0 && got != year:
		return HeaderStale
	}
	return HeaderMatching
}

// insert returns the file contents with header placed after the preserved
// lines, followed by a blank line and the rest of the file.
func (d *document) insert(header []string) string {
	return d.assemble(header, d.lines[d.preserved:])
}

// replace returns the file contents with the license part of the leading
// comment block replaced by header. The rest of the block is kept. If the
// whole block is a license header, one blank line after it goes too. A
// block that does not start with a license header is kept whole and header
// is inserted above it.
func (d *document) replace(header []string, known *lineSet) string {
	end := d.headerEnd(known)
	if end == d.preserved {
		return d.insert(header)
	}
	rest := end
	for rest < d.blockEnd && d.lineText(rest) == "" {
		rest++
	}
	if rest == d.blockEnd {
		body := d.lines[d.blockEnd:]
		if len(body) > 1 && strings.TrimSpace(body[0]) == "" {
			body = body[1:]
		}
		return d.assemble(header, body)
	}

	var body []string
	if d.style.Paired() {
		body = append(body, d.style.Start)
	}
	return d.assemble(header, append(body, d.lines[rest:]...))
}

func (d *document) assemble(header, body []string) string {
	out := make([]string, 0, d.preserved+len(header)+1+len(body))
	out = append(out, d.lines[:d.preserved]...)
	out = append(out, header...)
	out = append(out, "")
	// A lone empty line is the final newline of the file.
	if !(len(body) == 0 || len(body) == 1 && body[0] == "") {
		out = append(out, body...)
	}
	return strings.Join(out, d.nl)
}

var (
	copyrightLine = regexp.MustCompile(`(?i)copyright|©|\(c\)`)
	yearToken     = regexp.MustCompile(`\b(\d{4})(?:(\s?[-–]\s?)(\d{4}))?\b`)
)

// updateYear rewrites the year on copyright lines of the license header.
// A single year is replaced; a range keeps its start and gets year as its
// end. It reports whether anything changed.
func (d *document) updateYear(year int) (string, bool) {
	if !d.hasLicense() {
		return "", false
	}
	ys := strconv.Itoa(year)
	changed := false
	for i := d.preserved; i < d.blockEnd; i++ {
		line := d.lines[i]
		if !copyrightLine.MatchString(line) {
			continue
		}
		loc := yearToken.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}
		var repl string
		if loc[6] >= 0 {
			// Range: keep the start year and separator.
			if start, _ := strconv.Atoi(line[loc[2]:loc[3]]); year < start {
				continue
			}
			repl = line[loc[2]:loc[5]] + ys
		} else {
			repl = ys
		}
		updated := line[:loc[0]] + repl + line[loc[1]:]
		if updated != line {
			d.lines[i] = updated
			changed = true
		}
	}
	if !changed {
		return "", false
	}
	return strings.Join(d.lines, d.nl), true
}
