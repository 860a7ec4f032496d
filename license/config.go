// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go4org/hashtriemap"
	"github.com/gobwas/glob"

	"go.astrophena.name/licenser/unwrap"
)

var (
	// ErrUnknownTemplate is returned when a template name is not registered.
	ErrUnknownTemplate = errors.New("unknown license template")
	// ErrEmptyKey is returned when registering a template, pattern or
	// directory with an empty name.
	ErrEmptyKey = errors.New("empty key")
)

//go:embed templates/*.txt
var builtinTemplates embed.FS

// Config holds comment styles, license templates, ignored directories and
// exclusion patterns used by a [Handler].
//
// Use [NewConfig] to create a Config with the built-in defaults. A Config
// may be read concurrently, but registration calls must not race with each
// other.
type Config struct {
	// DefaultStyle, if not nil, is used for files with an unknown extension.
	// Such files are skipped otherwise.
	DefaultStyle *CommentStyle

	templates   *hashtriemap.HashTrieMap[string, string]
	styles      map[string]CommentStyle
	ignoredDirs map[string]struct{}
	exclusions  []exclusion
}

type exclusion struct {
	pattern string
	g       glob.Glob
}

// NewConfig returns a Config populated with the built-in templates (mit,
// gpl3, apache2, isc), comment styles and ignored directories.
func NewConfig() *Config {
	c := &Config{
		templates:   new(hashtriemap.HashTrieMap[string, string]),
		styles:      make(map[string]CommentStyle),
		ignoredDirs: make(map[string]struct{}),
	}
	for _, e := range unwrap.Value(builtinTemplates.ReadDir("templates")) {
		b := unwrap.Value(builtinTemplates.ReadFile(path.Join("templates", e.Name())))
		c.templates.Store(strings.TrimSuffix(e.Name(), ".txt"), string(b))
	}
	for _, p := range defaultPatterns() {
		for _, ext := range p.Extensions {
			c.styles[strings.ToLower(ext)] = p.Style
		}
	}
	for _, d := range defaultIgnoredDirs() {
		c.ignoredDirs[d] = struct{}{}
	}
	return c
}

// AddLicenseTemplate registers a template under name, replacing any
// template with the same name. The template may contain the {year} and
// {author} placeholders.
func (c *Config) AddLicenseTemplate(name, template string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("license template: %w", ErrEmptyKey)
	}
	c.templates.Store(name, template)
	return nil
}

// Template returns the template registered under name.
func (c *Config) Template(name string) (string, error) {
	tmpl, ok := c.templates.Load(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return "", fmt.Errorf("%w %q (known: %s)", ErrUnknownTemplate, name, strings.Join(c.TemplateNames(), ", "))
	}
	return tmpl, nil
}

// TemplateNames returns the sorted names of all registered templates.
func (c *Config) TemplateNames() []string {
	var names []string
	for name := range c.templates.All() {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (c *Config) templateTexts() []string {
	var texts []string
	for _, tmpl := range c.templates.All() {
		texts = append(texts, tmpl)
	}
	return texts
}

// AddFilePattern binds extensions to style. Later registrations for the
// same extension win.
func (c *Config) AddFilePattern(extensions []string, style CommentStyle) error {
	if style.Start == "" {
		return fmt.Errorf("file pattern %v: comment start: %w", extensions, ErrEmptyKey)
	}
	if len(extensions) == 0 {
		return fmt.Errorf("file pattern: no extensions: %w", ErrEmptyKey)
	}
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			return fmt.Errorf("file pattern: extension: %w", ErrEmptyKey)
		}
		c.styles[ext] = style
	}
	return nil
}

// StyleFor returns the comment style for the file at path. Full file names
// are matched first, then the longest registered extension. The
// [Config.DefaultStyle] is used when nothing matches.
func (c *Config) StyleFor(file string) (CommentStyle, bool) {
	base := strings.ToLower(filepath.Base(file))
	if s, ok := c.styles[base]; ok {
		return s, true
	}
	for i := 0; i < len(base); i++ {
		if base[i] != '.' {
			continue
		}
		if s, ok := c.styles[base[i:]]; ok {
			return s, true
		}
	}
	if c.DefaultStyle != nil {
		return *c.DefaultStyle, true
	}
	return CommentStyle{}, false
}

// AddIgnoredDir excludes directories called name from traversal.
func (c *Config) AddIgnoredDir(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("ignored directory: %w", ErrEmptyKey)
	}
	c.ignoredDirs[name] = struct{}{}
	return nil
}

// RemoveIgnoredDir removes name from the ignored directories. It reports
// whether name was ignored before.
func (c *Config) RemoveIgnoredDir(name string) bool {
	_, ok := c.ignoredDirs[name]
	delete(c.ignoredDirs, name)
	return ok
}

// IsIgnoredDir reports whether directories called name are skipped.
func (c *Config) IsIgnoredDir(name string) bool {
	_, ok := c.ignoredDirs[name]
	return ok
}

// AddExclusion excludes paths matching the glob pattern from traversal.
// Patterns are matched against slash-separated paths relative to the
// walked root; "*" does not cross directories, "**" does.
func (c *Config) AddExclusion(pattern string) error {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return fmt.Errorf("exclusion: %w", ErrEmptyKey)
	}
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return fmt.Errorf("exclusion %q: %w", pattern, err)
	}
	c.exclusions = append(c.exclusions, exclusion{pattern: pattern, g: g})
	return nil
}

// IsExcluded reports whether the slash-separated relative path matches
// an exclusion pattern.
func (c *Config) IsExcluded(rel string) bool {
	for _, ex := range c.exclusions {
		if ex.g.Match(rel) {
			return true
		}
	}
	return false
}
