// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"errors"
	"strings"
	"testing"

	"go.astrophena.name/licenser/testutil"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	testutil.AssertEqual(t, cfg.TemplateNames(), []string{"apache2", "gpl3", "isc", "mit"})

	mit, err := cfg.Template("mit")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(mit, "The MIT License (MIT)\n") {
		t.Errorf("unexpected mit template: %q", mit)
	}

	for _, dir := range []string{".git", "node_modules", "__pycache__", ".venv"} {
		if !cfg.IsIgnoredDir(dir) {
			t.Errorf("%s must be ignored by default", dir)
		}
	}
}

func TestTemplateRegistration(t *testing.T) {
	cfg := NewConfig()

	if _, err := cfg.Template("corp"); !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("Template(corp) error = %v, want ErrUnknownTemplate", err)
	}

	testutil.AssertEqual(t, cfg.AddLicenseTemplate("corp", "first {year}"), nil)
	testutil.AssertEqual(t, cfg.AddLicenseTemplate("Corp", "second {year}"), nil)
	got, err := cfg.Template("corp")
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, got, "second {year}")

	if err := cfg.AddLicenseTemplate("  ", "x"); !errors.Is(err, ErrEmptyKey) {
		t.Fatalf("AddLicenseTemplate with empty name error = %v, want ErrEmptyKey", err)
	}
}

func TestStyleFor(t *testing.T) {
	cfg := NewConfig()
	testutil.AssertEqual(t, cfg.AddFilePattern([]string{".d.ts"}, CommentStyle{Start: "///"}), nil)

	cases := map[string]struct {
		path   string
		want   CommentStyle
		wantOK bool
	}{
		"python":          {"src/app.py", hashStyle, true},
		"javascript":      {"app.js", slashStyle, true},
		"html":            {"index.html", xmlStyle, true},
		"css":             {"site.css", cssStyle, true},
		"upper case":      {"MAIN.GO", slashStyle, true},
		"file name":       {"sub/Makefile", hashStyle, true},
		"longest suffix":  {"types.d.ts", CommentStyle{Start: "///"}, true},
		"plain extension": {"types.ts", slashStyle, true},
		"unknown":         {"notes.unknown", CommentStyle{}, false},
		"no extension":    {"README", CommentStyle{}, false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := cfg.StyleFor(tc.path)
			testutil.AssertEqual(t, ok, tc.wantOK)
			testutil.AssertEqual(t, got, tc.want)
		})
	}

	t.Run("default style", func(t *testing.T) {
		cfg := NewConfig()
		cfg.DefaultStyle = &CommentStyle{Start: ";"}
		got, ok := cfg.StyleFor("config.ini")
		testutil.AssertEqual(t, ok, true)
		testutil.AssertEqual(t, got, CommentStyle{Start: ";"})
	})
}

func TestAddFilePatternOverrides(t *testing.T) {
	cfg := NewConfig()
	testutil.AssertEqual(t, cfg.AddFilePattern([]string{".js", "mjs"}, cssStyle), nil)

	got, _ := cfg.StyleFor("app.js")
	testutil.AssertEqual(t, got, cssStyle)

	if err := cfg.AddFilePattern([]string{".x"}, CommentStyle{}); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("empty comment start error = %v, want ErrEmptyKey", err)
	}
	if err := cfg.AddFilePattern(nil, hashStyle); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("no extensions error = %v, want ErrEmptyKey", err)
	}
	if err := cfg.AddFilePattern([]string{""}, hashStyle); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("empty extension error = %v, want ErrEmptyKey", err)
	}
}

func TestIgnoredDirs(t *testing.T) {
	cfg := NewConfig()

	testutil.AssertEqual(t, cfg.IsIgnoredDir("vendor"), false)
	testutil.AssertEqual(t, cfg.AddIgnoredDir("vendor"), nil)
	testutil.AssertEqual(t, cfg.IsIgnoredDir("vendor"), true)

	testutil.AssertEqual(t, cfg.RemoveIgnoredDir("build"), true)
	testutil.AssertEqual(t, cfg.IsIgnoredDir("build"), false)
	testutil.AssertEqual(t, cfg.RemoveIgnoredDir("build"), false)

	if err := cfg.AddIgnoredDir(""); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("AddIgnoredDir(\"\") error = %v, want ErrEmptyKey", err)
	}
}

func TestExclusions(t *testing.T) {
	cfg := NewConfig()
	testutil.AssertEqual(t, cfg.AddExclusion("third_party/**"), nil)
	testutil.AssertEqual(t, cfg.AddExclusion("*.pb.go"), nil)

	cases := map[string]bool{
		"third_party/x/y.go": true,
		"third_party":        false,
		"api.pb.go":          true,
		"api/api.pb.go":      false,
		"main.go":            false,
	}
	for path, want := range cases {
		if got := cfg.IsExcluded(path); got != want {
			t.Errorf("IsExcluded(%q) = %v, want %v", path, got, want)
		}
	}

	if err := cfg.AddExclusion(" "); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("AddExclusion(\" \") error = %v, want ErrEmptyKey", err)
	}
}
