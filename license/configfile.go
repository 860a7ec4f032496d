// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"go.astrophena.name/licenser/txtar"
)

// ConfigFileName is the default name of the project configuration file.
const ConfigFileName = ".licenser.txtar"

// FileConfig is the config.yaml member of a project configuration file.
type FileConfig struct {
	Template     string        `yaml:"template"`
	Author       string        `yaml:"author"`
	IgnoredDirs  []string      `yaml:"ignored_dirs"`
	Exclude      []string      `yaml:"exclude"`
	Patterns     []FilePattern `yaml:"patterns"`
	DefaultStyle *CommentStyle `yaml:"default_style"`
	// Vars holds values of custom template placeholders.
	Vars map[string]string `yaml:"vars"`
}

// LoadConfigFile reads the project configuration file at path into cfg.
//
// The file is a txtar archive. Its config.yaml member is decoded into a
// [FileConfig] whose directories, exclusions and patterns are registered
// with cfg; members named template.<name> register custom templates.
// A missing file yields a zero FileConfig and no error.
func LoadConfigFile(cfg *Config, path string) (*FileConfig, error) {
	ar, err := txtar.ParseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return new(FileConfig), nil
	}
	if err != nil {
		return nil, err
	}
	fc, err := applyArchive(cfg, ar)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

func applyArchive(cfg *Config, ar *txtar.Archive) (*FileConfig, error) {
	fc := new(FileConfig)
	if data, ok := txtar.Lookup(ar, "config.yaml"); ok {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(fc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode config.yaml: %w", err)
		}
	}

	for _, d := range fc.IgnoredDirs {
		if err := cfg.AddIgnoredDir(d); err != nil {
			return nil, err
		}
	}
	for _, ex := range fc.Exclude {
		if err := cfg.AddExclusion(ex); err != nil {
			return nil, err
		}
	}
	for _, p := range fc.Patterns {
		if err := cfg.AddFilePattern(p.Extensions, p.Style); err != nil {
			return nil, err
		}
	}
	if fc.DefaultStyle != nil {
		if fc.DefaultStyle.Start == "" {
			return nil, fmt.Errorf("default_style: start: %w", ErrEmptyKey)
		}
		cfg.DefaultStyle = fc.DefaultStyle
	}
	for name := range fc.Vars {
		if !placeholder.MatchString("{" + name + "}") || name == "year" || name == "author" {
			return nil, fmt.Errorf("vars: invalid placeholder name %q", name)
		}
	}
	for _, f := range txtar.WithPrefix(ar, "template.") {
		if err := cfg.AddLicenseTemplate(strings.TrimPrefix(f.Name, "template."), string(f.Data)); err != nil {
			return nil, err
		}
	}
	return fc, nil
}
