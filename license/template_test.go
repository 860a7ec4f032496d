// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"testing"

	"go.astrophena.name/licenser/testutil"
)

const testTemplate = "Copyright {year} {author}\n\nSPDX-License-Identifier: MIT\n"

func TestRender(t *testing.T) {
	got := Render("(c) {year} {author}, {author}", Vars{Year: 2025, Author: "Jane"})
	testutil.AssertEqual(t, got, "(c) 2025 Jane, Jane")

	// Unknown placeholders are left alone.
	got = Render("{project} {year}", Vars{Year: 2025})
	testutil.AssertEqual(t, got, "{project} 2025")

	got = Render("{project} by {author}, see {url}", Vars{
		Author: "Jane",
		Extra:  map[string]string{"project": "Licenser", "url": "https://example.com"},
	})
	testutil.AssertEqual(t, got, "Licenser by Jane, see https://example.com")
}

func TestComment(t *testing.T) {
	text := Render(testTemplate, Vars{Year: 2023, Author: "Jane"})

	cases := map[string]struct {
		style CommentStyle
		want  []string
	}{
		"hash": {
			style: hashStyle,
			want:  []string{"# Copyright 2023 Jane", "#", "# SPDX-License-Identifier: MIT"},
		},
		"slash": {
			style: slashStyle,
			want:  []string{"// Copyright 2023 Jane", "//", "// SPDX-License-Identifier: MIT"},
		},
		"xml": {
			style: xmlStyle,
			want:  []string{"<!--", " Copyright 2023 Jane", "", " SPDX-License-Identifier: MIT", "-->"},
		},
		"css": {
			style: cssStyle,
			want:  []string{"/*", " Copyright 2023 Jane", "", " SPDX-License-Identifier: MIT", "*/"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, Comment(text, tc.style), tc.want)
		})
	}
}

func TestMatcher(t *testing.T) {
	m := newMatcher(testTemplate)

	cases := map[string]struct {
		text     string
		wantOK   bool
		wantYear int
	}{
		"exact": {
			text:     "Copyright 2023 Jane Doe\n\nSPDX-License-Identifier: MIT",
			wantOK:   true,
			wantYear: 2023,
		},
		"reflowed whitespace": {
			text:     "Copyright   2019\tACME Inc.\nSPDX-License-Identifier:  MIT",
			wantOK:   true,
			wantYear: 2019,
		},
		"year range": {
			text:     "Copyright 2019-2024 ACME\nSPDX-License-Identifier: MIT",
			wantOK:   true,
			wantYear: 2024,
		},
		"empty author": {
			text:     "Copyright 2023\nSPDX-License-Identifier: MIT",
			wantOK:   true,
			wantYear: 2023,
		},
		"different license": {
			text:   "Copyright 2023 Jane\nSPDX-License-Identifier: Apache-2.0",
			wantOK: false,
		},
		"extra text": {
			text:   "Copyright 2023 Jane\nSPDX-License-Identifier: MIT\nAll rights reserved.",
			wantOK: false,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ok, year := m.match(tc.text)
			testutil.AssertEqual(t, ok, tc.wantOK)
			testutil.AssertEqual(t, year, tc.wantYear)
		})
	}
}

func TestMatcherCustomPlaceholders(t *testing.T) {
	m := newMatcher("Copyright {year} {author}\nThis file is part of {project}.\nSee {url}/LICENSE.\n")

	cases := map[string]struct {
		text   string
		wantOK bool
	}{
		"filled": {
			text:   "Copyright 2024 Jane\nThis file is part of Licenser.\nSee https://example.com/LICENSE.",
			wantOK: true,
		},
		"multi-word value": {
			text:   "Copyright 2024 Jane\nThis file is part of the Licenser project.\nSee https://example.com/LICENSE.",
			wantOK: true,
		},
		"empty value": {
			text:   "Copyright 2024 Jane\nThis file is part of.\nSee /LICENSE.",
			wantOK: true,
		},
		"literal placeholder": {
			text:   "Copyright 2024 Jane\nThis file is part of {project}.\nSee {url}/LICENSE.",
			wantOK: true,
		},
		"changed literal text": {
			text:   "Copyright 2024 Jane\nThis file belongs to Licenser.\nSee https://example.com/LICENSE.",
			wantOK: false,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ok, year := m.match(tc.text)
			testutil.AssertEqual(t, ok, tc.wantOK)
			if ok {
				testutil.AssertEqual(t, year, 2024)
			}
		})
	}
}

func TestLineSet(t *testing.T) {
	ls := newLineSet([]string{
		testTemplate,
		"{author}\nThis file is part of {project}.\n",
	})

	cases := map[string]bool{
		"SPDX-License-Identifier: MIT":          true,
		"SPDX-License-Identifier:   MIT":        true,
		"Copyright 2020-2024 Jane":              true,
		"This file is part of Licenser.":        true,
		"This file belongs to Licenser.":        false,
		"Package license parses license files.": false,
		"Jane":                                  false,
		"":                                      false,
	}
	for text, want := range cases {
		testutil.AssertEqual(t, ls.contains(text), want)
	}
}

func TestMatcherBuiltinTemplates(t *testing.T) {
	cfg := NewConfig()
	for _, name := range cfg.TemplateNames() {
		t.Run(name, func(t *testing.T) {
			tmpl, err := cfg.Template(name)
			if err != nil {
				t.Fatal(err)
			}
			rendered := Render(tmpl, Vars{Year: 2021, Author: "Some Author (some@example.com)"})
			ok, year := newMatcher(tmpl).match(rendered)
			testutil.AssertEqual(t, ok, true)
			testutil.AssertEqual(t, year, 2021)
		})
	}
}
