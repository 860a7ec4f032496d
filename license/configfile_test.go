// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"go.astrophena.name/licenser/testutil"
	"go.astrophena.name/licenser/txtar"
)

const projectConfig = `Project configuration.
-- config.yaml --
template: corp
author: ACME Corp
ignored_dirs:
  - vendor
exclude:
  - "**/*.pb.go"
patterns:
  - extensions: [".lua", ".sql"]
    start: "--"
  - extensions: [".vue"]
    start: "<!--"
    end: "-->"
default_style:
  start: "#"
vars:
  project: Licenser
-- template.corp --
Copyright {year} {author}
Proprietary and confidential.
`

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	testutil.WriteFile(t, path, projectConfig)

	cfg := NewConfig()
	fc, err := LoadConfigFile(cfg, path)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, fc.Template, "corp")
	testutil.AssertEqual(t, fc.Author, "ACME Corp")
	testutil.AssertEqual(t, fc.Vars, map[string]string{"project": "Licenser"})

	tmpl, err := cfg.Template("corp")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, tmpl, "Copyright {year} {author}\nProprietary and confidential.\n")

	testutil.AssertEqual(t, cfg.IsIgnoredDir("vendor"), true)
	testutil.AssertEqual(t, cfg.IsIgnoredDir("node_modules"), true)
	testutil.AssertEqual(t, cfg.IsExcluded("api/v1/api.pb.go"), true)
	testutil.AssertEqual(t, cfg.IsExcluded("api/v1/api.go"), false)

	cases := map[string]CommentStyle{
		"init.lua":   {Start: "--"},
		"schema.sql": {Start: "--"},
		"App.vue":    {Start: "<!--", End: "-->"},
		"main.go":    {Start: "//"},
		"README":     {Start: "#"},
	}
	for file, want := range cases {
		got, ok := cfg.StyleFor(file)
		if !ok {
			t.Errorf("StyleFor(%q): no style", file)
			continue
		}
		testutil.AssertEqual(t, got, want)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg := NewConfig()
	fc, err := LoadConfigFile(cfg, filepath.Join(t.TempDir(), ConfigFileName))
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, *fc, FileConfig{})
	testutil.AssertEqual(t, cfg.DefaultStyle == nil, true)
}

func TestApplyArchiveErrors(t *testing.T) {
	cases := map[string]struct {
		archive string
		wantIs  error
		wantIn  string
	}{
		"unknown field": {
			archive: "-- config.yaml --\ntemplate: mit\ncolour: red\n",
			wantIn:  "colour",
		},
		"malformed yaml": {
			archive: "-- config.yaml --\ntemplate: [mit\n",
			wantIn:  "decode config.yaml",
		},
		"pattern without start": {
			archive: "-- config.yaml --\npatterns:\n  - extensions: [\".lua\"]\n",
			wantIs:  ErrEmptyKey,
		},
		"empty default style": {
			archive: "-- config.yaml --\ndefault_style:\n  end: \"*/\"\n",
			wantIs:  ErrEmptyKey,
		},
		"blank ignored dir": {
			archive: "-- config.yaml --\nignored_dirs: [\" \"]\n",
			wantIs:  ErrEmptyKey,
		},
		"invalid var name": {
			archive: "-- config.yaml --\nvars:\n  my-project: x\n",
			wantIn:  "my-project",
		},
		"reserved var name": {
			archive: "-- config.yaml --\nvars:\n  year: \"1999\"\n",
			wantIn:  "year",
		},
		"unnamed template": {
			archive: "-- template. --\nCopyright {year}\n",
			wantIs:  ErrEmptyKey,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := applyArchive(NewConfig(), txtar.Parse([]byte(tc.archive)))
			if err == nil {
				t.Fatal("want error, got nil")
			}
			if tc.wantIs != nil && !errors.Is(err, tc.wantIs) {
				t.Errorf("error = %v, want %v", err, tc.wantIs)
			}
			if tc.wantIn != "" && !strings.Contains(err.Error(), tc.wantIn) {
				t.Errorf("error = %v, want it to contain %q", err, tc.wantIn)
			}
		})
	}
}

func TestApplyArchiveEmptyConfig(t *testing.T) {
	cfg := NewConfig()
	fc, err := applyArchive(cfg, txtar.Parse([]byte("-- config.yaml --\n-- template.mine --\n{author}\n")))
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, *fc, FileConfig{})
	tmpl, err := cfg.Template("mine")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, tmpl, "{author}\n")
}
