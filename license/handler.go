// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go.astrophena.name/licenser/logger"
)

var (
	// ErrLicenseFileExists is returned by [Handler.CreateLicenseFile] when
	// the LICENSE file exists and overwriting was not requested.
	ErrLicenseFileExists = errors.New("LICENSE file already exists")
	// ErrNotCompliant reports that verification found files without the
	// expected header.
	ErrNotCompliant = errors.New("files without the expected license header")
	// ErrFilesFailed reports that some files could not be read or written.
	ErrFilesFailed = errors.New("some files could not be processed")
)

// Handler applies, updates and verifies license headers in a file tree.
type Handler struct {
	cfg *Config
	now func() time.Time
}

// NewHandler returns a Handler that uses cfg.
func NewHandler(cfg *Config) *Handler {
	return &Handler{cfg: cfg, now: time.Now}
}

// ApplyOptions control [Handler.Apply] and [Handler.CreateLicenseFile].
type ApplyOptions struct {
	// Template is the name of a registered template.
	Template string
	Author   string
	// Year defaults to the current year.
	Year int
	// Force replaces existing license headers.
	Force bool
	// DryRun logs what would change without writing anything.
	DryRun bool
	// Vars holds values for custom template placeholders.
	Vars map[string]string
}

// UpdateOptions control [Handler.UpdateYear].
type UpdateOptions struct {
	// Year defaults to the current year.
	Year int
	// DryRun logs what would change without writing anything.
	DryRun bool
}

// Result counts what happened to the visited files.
type Result struct {
	// Modified files were written (or would be, in a dry run).
	Modified int
	// Skipped files were left untouched: they already had a header, are
	// binary, excluded, or have no known comment style.
	Skipped int
	// Failed files could not be read or written.
	Failed int
}

// Err returns an error wrapping [ErrFilesFailed] if any file failed.
func (r Result) Err() error {
	if r.Failed > 0 {
		return fmt.Errorf("%w: %d failed", ErrFilesFailed, r.Failed)
	}
	return nil
}

// VerifyOptions control [Handler.Verify].
type VerifyOptions struct {
	// Template is the name of a registered template.
	Template string
	// Year, if not zero, is the year every header must carry.
	Year int
}

// FileStatus is the header state of a single file.
type FileStatus struct {
	Path  string
	State HeaderState
}

// Report is the outcome of [Handler.Verify].
type Report struct {
	// Compliant is the number of files with the expected header.
	Compliant int
	// Total is the number of eligible files.
	Total int
	// Failed is the number of files that could not be read.
	Failed int
	// Files lists the eligible files without the expected header.
	Files []FileStatus
}

// Err returns an error wrapping [ErrNotCompliant] or [ErrFilesFailed] if
// the report is not clean.
func (r Report) Err() error {
	if r.Compliant < r.Total {
		return fmt.Errorf("%w: %d of %d", ErrNotCompliant, r.Total-r.Compliant, r.Total)
	}
	if r.Failed > 0 {
		return fmt.Errorf("%w: %d failed", ErrFilesFailed, r.Failed)
	}
	return nil
}

func (h *Handler) year(y int) int {
	if y == 0 {
		return h.now().Year()
	}
	return y
}

// Apply adds the license header to every eligible file under path, which
// may also be a single file. Files that already have a license header are
// left untouched unless opts.Force is set, in which case the header is
// replaced.
//
// Per-file errors are logged and counted in the result. An error is
// returned only if the template is unknown or path cannot be walked.
func (h *Handler) Apply(ctx context.Context, path string, opts ApplyOptions) (Result, error) {
	tmpl, err := h.cfg.Template(opts.Template)
	if err != nil {
		return Result{}, err
	}
	text := Render(tmpl, h.vars(opts))
	known := newLineSet(h.cfg.templateTexts())

	return h.walk(ctx, path, func(file string, style CommentStyle) (bool, error) {
		content, err := os.ReadFile(file)
		if err != nil {
			return false, err
		}
		doc := parseDocument(string(content), style)
		header := Comment(text, style)

		var (
			out    string
			action string
		)
		switch {
		case !doc.hasLicense():
			out, action = doc.insert(header), "added license header"
		case opts.Force:
			out, action = doc.replace(header, known), "replaced license header"
		default:
			logger.Debug(ctx, "already has a license header", slog.String("path", file))
			return false, nil
		}
		if out == string(content) {
			return false, nil
		}

		return writeFile(ctx, file, out, action, opts.DryRun)
	})
}

func (h *Handler) vars(opts ApplyOptions) Vars {
	return Vars{Year: h.year(opts.Year), Author: opts.Author, Extra: opts.Vars}
}

// writeFile writes content to the file at path unless dryRun is set, and
// logs action.
func writeFile(ctx context.Context, path, content, action string, dryRun bool) (bool, error) {
	if dryRun {
		logger.Info(ctx, "would modify file", slog.String("path", path), slog.String("action", action))
		return true, nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, err
	}
	logger.Info(ctx, action, slog.String("path", path))
	return true, nil
}

// UpdateYear rewrites the copyright year in the license header of every
// eligible file under path. Files without a license header or without a
// year are untouched.
func (h *Handler) UpdateYear(ctx context.Context, path string, opts UpdateOptions) (Result, error) {
	year := h.year(opts.Year)
	return h.walk(ctx, path, func(file string, style CommentStyle) (bool, error) {
		content, err := os.ReadFile(file)
		if err != nil {
			return false, err
		}
		out, ok := parseDocument(string(content), style).updateYear(year)
		if !ok {
			return false, nil
		}
		return writeFile(ctx, file, out, "updated license year", opts.DryRun)
	})
}

// Verify checks that every eligible file under path carries the header of
// opts.Template. It never writes.
func (h *Handler) Verify(ctx context.Context, path string, opts VerifyOptions) (Report, error) {
	tmpl, err := h.cfg.Template(opts.Template)
	if err != nil {
		return Report{}, err
	}
	m := newMatcher(tmpl)

	var rep Report
	res, err := h.walk(ctx, path, func(file string, style CommentStyle) (bool, error) {
		content, err := os.ReadFile(file)
		if err != nil {
			return false, err
		}
		rep.Total++
		state := parseDocument(string(content), style).state(m, opts.Year)
		if state == HeaderMatching {
			rep.Compliant++
			return false, nil
		}
		rep.Files = append(rep.Files, FileStatus{Path: file, State: state})
		logger.Info(ctx, "license header mismatch", slog.String("path", file), slog.String("state", state.String()))
		return false, nil
	})
	rep.Failed = res.Failed
	return rep, err
}

// CreateLicenseFile writes the rendered template to a LICENSE file in dir
// and returns its path. An existing file is only overwritten if
// opts.Force is set.
func (h *Handler) CreateLicenseFile(ctx context.Context, dir string, opts ApplyOptions) (string, error) {
	tmpl, err := h.cfg.Template(opts.Template)
	if err != nil {
		return "", err
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%s: not a directory", dir)
	}

	path := filepath.Join(dir, "LICENSE")
	if _, err := os.Stat(path); err == nil && !opts.Force {
		return "", fmt.Errorf("%s: %w", path, ErrLicenseFileExists)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	text := Render(tmpl, h.vars(opts))
	if opts.DryRun {
		logger.Info(ctx, "would create LICENSE file", slog.String("path", path))
		return path, nil
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", err
	}
	logger.Info(ctx, "created LICENSE file", slog.String("path", path))
	return path, nil
}

// visitFunc handles an eligible file and reports whether it was modified.
type visitFunc func(path string, style CommentStyle) (bool, error)

// walk calls visit for every eligible file under root, or for root itself
// if it is a file. Ignored directories and excluded paths are not entered,
// binary files and files without a comment style are skipped.
func (h *Handler) walk(ctx context.Context, root string, visit visitFunc) (Result, error) {
	var res Result

	fi, err := os.Stat(root)
	if err != nil {
		return res, err
	}
	if !fi.IsDir() {
		h.visitFile(ctx, root, visit, &res)
		return res, nil
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return err
			}
			logger.Error(ctx, "cannot read", slog.String("path", path), slog.Any("err", err))
			res.Failed++
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path != root && (h.cfg.IsIgnoredDir(d.Name()) || h.cfg.IsExcluded(rel)) {
				logger.Debug(ctx, "skipping directory", slog.String("path", path))
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if h.cfg.IsExcluded(rel) {
			logger.Debug(ctx, "skipping excluded file", slog.String("path", path))
			res.Skipped++
			return nil
		}
		h.visitFile(ctx, path, visit, &res)
		return nil
	})
	return res, err
}

func (h *Handler) visitFile(ctx context.Context, path string, visit visitFunc, res *Result) {
	style, ok := h.cfg.StyleFor(path)
	if !ok {
		logger.Debug(ctx, "skipping unsupported file type", slog.String("path", path))
		res.Skipped++
		return
	}
	bin, err := isBinary(path)
	if err != nil {
		logger.Error(ctx, "cannot read", slog.String("path", path), slog.Any("err", err))
		res.Failed++
		return
	}
	if bin {
		logger.Debug(ctx, "skipping binary file", slog.String("path", path))
		res.Skipped++
		return
	}

	modified, err := visit(path, style)
	switch {
	case err != nil:
		logger.Error(ctx, "cannot process", slog.String("path", path), slog.Any("err", err))
		res.Failed++
	case modified:
		res.Modified++
	default:
		res.Skipped++
	}
}
