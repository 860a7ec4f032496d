// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Vars holds the values substituted into a template.
type Vars struct {
	Year   int
	Author string
	// Extra maps custom placeholder names to values: {"project": "Foo"}
	// replaces {project}.
	Extra map[string]string
}

// Render substitutes the {year}, {author} and custom placeholders of tmpl.
// Unknown placeholders are left as they are.
func Render(tmpl string, v Vars) string {
	pairs := []string{
		"{year}", strconv.Itoa(v.Year),
		"{author}", v.Author,
	}
	for _, name := range slices.Sorted(maps.Keys(v.Extra)) {
		pairs = append(pairs, "{"+name+"}", v.Extra[name])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Comment converts text into comment lines using style. Leading and
// trailing blank lines of text are dropped, as is trailing whitespace of
// every line.
func Comment(text string, style CommentStyle) []string {
	text = strings.Trim(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := strings.Split(text, "\n")

	var out []string
	if style.Paired() {
		out = append(out, style.Start)
	}
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		switch {
		case style.Paired() && line == "":
			out = append(out, "")
		case style.Paired():
			out = append(out, " "+line)
		case line == "":
			out = append(out, style.Start)
		default:
			out = append(out, style.Start+" "+line)
		}
	}
	if style.Paired() {
		out = append(out, style.End)
	}
	return out
}

// yearPattern matches a year or a year range like 2019-2026.
const yearPattern = `(\d{4})(?: ?[-–] ?(\d{4}))?`

// placeholder matches {year}, {author} and custom placeholders.
var placeholder = regexp.MustCompile(`\{[A-Za-z_][A-Za-z0-9_]*\}`)

// matcher recognizes the text of a rendered template regardless of the
// year, author and custom values that were used.
type matcher struct {
	re *regexp.Regexp
}

func newMatcher(tmpl string) *matcher {
	return &matcher{re: regexp.MustCompile("^" + templatePattern(normalize(tmpl)) + "$")}
}

// templatePattern turns normalized template text into a regular expression.
// {year} matches a year or a range, any other placeholder matches anything.
func templatePattern(norm string) string {
	var sb strings.Builder
	last := 0
	for _, loc := range placeholder.FindAllStringIndex(norm, -1) {
		lit := norm[last:loc[0]]
		switch {
		case norm[loc[0]:loc[1]] == "{year}":
			sb.WriteString(regexp.QuoteMeta(lit))
			sb.WriteString(yearPattern)
		case strings.HasSuffix(lit, " "):
			// An empty value collapses the surrounding spaces into one.
			sb.WriteString(regexp.QuoteMeta(strings.TrimSuffix(lit, " ")))
			sb.WriteString(`(?: .*?)?`)
		default:
			sb.WriteString(regexp.QuoteMeta(lit))
			sb.WriteString(`.*?`)
		}
		last = loc[1]
	}
	sb.WriteString(regexp.QuoteMeta(norm[last:]))
	return sb.String()
}

// match reports whether text is the template. If it is and the template
// has a year, year is the last year mentioned (the end of a range).
func (m *matcher) match(text string) (ok bool, year int) {
	sub := m.re.FindStringSubmatch(normalize(text))
	if sub == nil {
		return false, 0
	}
	// The first year placeholder decides.
	if len(sub) >= 3 {
		y := sub[1]
		if sub[2] != "" {
			y = sub[2]
		}
		year, _ = strconv.Atoi(y)
	}
	return true, year
}

// normalize collapses every run of whitespace into a single space.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// lineSet recognizes single lines of license templates.
type lineSet struct {
	exact    map[string]bool
	patterns []*regexp.Regexp
}

func newLineSet(templates []string) *lineSet {
	ls := &lineSet{exact: make(map[string]bool)}
	for _, tmpl := range templates {
		for line := range strings.Lines(tmpl) {
			norm := normalize(line)
			if norm == "" || ls.exact[norm] {
				continue
			}
			if !placeholder.MatchString(norm) {
				ls.exact[norm] = true
				continue
			}
			// A line of nothing but placeholders would match any text.
			if strings.TrimSpace(placeholder.ReplaceAllString(norm, "")) == "" {
				continue
			}
			ls.patterns = append(ls.patterns, regexp.MustCompile("^"+templatePattern(norm)+"$"))
		}
	}
	return ls
}

func (ls *lineSet) contains(text string) bool {
	norm := normalize(text)
	if ls.exact[norm] {
		return true
	}
	for _, re := range ls.patterns {
		if re.MatchString(norm) {
			return true
		}
	}
	return false
}
