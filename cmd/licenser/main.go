// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"maps"
	"path/filepath"
	"strings"

	"go.astrophena.name/licenser/cli"
	"go.astrophena.name/licenser/license"
	"go.astrophena.name/licenser/logger"
)

const (
	defaultTemplate = "mit"
	defaultAuthor   = "Author"
)

func main() { cli.Main(new(app)) }

type app struct {
	dir        string
	template   string
	author     string
	year       int
	configPath string
	vars       map[string]string

	updateYear    bool
	verify        bool
	createLicense bool
	force         bool
	dry           bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.dir, "directory", ".", "Project root `directory`.")
	fs.StringVar(&a.dir, "d", ".", "Shorthand for -directory.")
	fs.StringVar(&a.template, "template", "", "License template `name` (default "+defaultTemplate+").")
	fs.StringVar(&a.template, "t", "", "Shorthand for -template.")
	fs.StringVar(&a.author, "author", "", "Author `name` for the license (default "+defaultAuthor+").")
	fs.StringVar(&a.author, "a", "", "Shorthand for -author.")
	fs.IntVar(&a.year, "year", 0, "`Year` to use in the license (default current year).")
	fs.IntVar(&a.year, "y", 0, "Shorthand for -year.")
	fs.Func("var", "Set a custom template placeholder, as `name=value`. Can be repeated.", a.setVar)
	fs.StringVar(&a.configPath, "config", "", "Configuration `file` (default "+license.ConfigFileName+" in the project directory).")
	fs.BoolVar(&a.updateYear, "update-year", false, "Update the year in existing license headers.")
	fs.BoolVar(&a.verify, "verify", false, "Verify license headers without making changes.")
	fs.BoolVar(&a.createLicense, "create-license-file", false, "Create a LICENSE file in the project directory.")
	fs.BoolVar(&a.force, "force", false, "Replace existing license headers and LICENSE files.")
	fs.BoolVar(&a.dry, "dry", false, "Print the files that would be changed, without changing them.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrInvalidArgs, env.Args)
	}
	if a.year != 0 && (a.year < 1000 || a.year > 9999) {
		return fmt.Errorf("%w: year %d is not a four-digit year", cli.ErrInvalidArgs, a.year)
	}

	fi, err := os.Stat(a.dir)
	if err != nil {
		return fmt.Errorf("directory not found: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", cli.ErrInvalidArgs, a.dir)
	}

	cfg := license.NewConfig()
	fc, err := a.loadConfig(cfg)
	if err != nil {
		return err
	}
	tmpl := cmp.Or(a.template, fc.Template, defaultTemplate)
	author := cmp.Or(a.author, fc.Author, defaultAuthor)

	if _, err := cfg.Template(tmpl); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
	}

	vars := maps.Clone(fc.Vars)
	if vars == nil {
		vars = make(map[string]string)
	}
	maps.Copy(vars, a.vars)

	h := license.NewHandler(cfg)
	opts := license.ApplyOptions{
		Template: tmpl,
		Author:   author,
		Year:     a.year,
		Vars:     vars,
		Force:    a.force,
		DryRun:   a.dry,
	}

	switch {
	case a.verify:
		logger.Info(ctx, "verifying license headers", slog.String("dir", a.dir), slog.String("template", tmpl))
		rep, err := h.Verify(ctx, a.dir, license.VerifyOptions{Template: tmpl, Year: a.year})
		if err != nil {
			return err
		}
		if rep.Total == 0 {
			fmt.Fprintln(env.Stdout, "No eligible files found.")
			return rep.Err()
		}
		for _, f := range rep.Files {
			fmt.Fprintf(env.Stdout, "%s: %s\n", f.Path, f.State)
		}
		fmt.Fprintf(env.Stdout, "%d/%d files (%.1f%%) have the expected license header.\n",
			rep.Compliant, rep.Total, float64(rep.Compliant)/float64(rep.Total)*100)
		// The summary above already says what is wrong.
		return cli.Silent(rep.Err())
	case a.updateYear:
		logger.Info(ctx, "updating license year", slog.String("dir", a.dir))
		res, err := h.UpdateYear(ctx, a.dir, license.UpdateOptions{Year: a.year, DryRun: a.dry})
		if err != nil {
			return err
		}
		verb := "updated"
		if a.dry {
			verb = "would be updated"
		}
		fmt.Fprintf(env.Stdout, "%d files %s.\n", res.Modified, verb)
		return res.Err()
	case a.createLicense:
		path, err := h.CreateLicenseFile(ctx, a.dir, opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(env.Stdout, "Created %s.\n", path)
		return nil
	}

	logger.Info(ctx, "applying license headers", slog.String("dir", a.dir), slog.String("template", tmpl))
	res, err := h.Apply(ctx, a.dir, opts)
	if err != nil {
		return err
	}
	verb := "modified"
	if a.dry {
		verb = "would be modified"
	}
	fmt.Fprintf(env.Stdout, "%d files %s, %d skipped, %d failed.\n", res.Modified, verb, res.Skipped, res.Failed)
	return res.Err()
}

func (a *app) setVar(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("want name=value, got %q", s)
	}
	if name == "year" || name == "author" {
		return fmt.Errorf("use -%s to set {%s}", name, name)
	}
	if a.vars == nil {
		a.vars = make(map[string]string)
	}
	a.vars[name] = value
	return nil
}

// loadConfig reads the project configuration file into cfg. The default
// file may be missing; a file named with -config must exist.
func (a *app) loadConfig(cfg *license.Config) (*license.FileConfig, error) {
	path := a.configPath
	if path == "" {
		path = filepath.Join(a.dir, license.ConfigFileName)
	} else if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: config file %s does not exist", cli.ErrInvalidArgs, path)
	}
	return license.LoadConfigFile(cfg, path)
}
