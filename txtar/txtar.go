// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package txtar reads and writes txtar archives and moves them to and from
// directories on disk.
//
// The archive format itself is implemented by [golang.org/x/tools/txtar];
// this package adds the file system helpers used by project configuration
// and tests.
package txtar

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/txtar"
)

// An Archive is a collection of files.
type Archive = txtar.Archive

// A File is a single file in an archive.
type File = txtar.File

// Parse parses the serialized form of an Archive.
func Parse(data []byte) *Archive { return txtar.Parse(data) }

// Format returns the serialized form of an Archive.
func Format(a *Archive) []byte { return txtar.Format(a) }

// ParseFile parses the named file as an archive.
func ParseFile(file string) (*Archive, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Parse(data), nil
}

// Extract writes every file of the archive below dir, creating directories
// as needed. File names must be relative and must not escape dir.
func Extract(a *Archive, dir string) error {
	for _, f := range a.Files {
		name := filepath.FromSlash(f.Name)
		if !filepath.IsLocal(name) {
			return fmt.Errorf("txtar: file name %q escapes target directory", f.Name)
		}
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// FromDir builds an archive from the regular files below dir. Files are
// added in lexical order and named by their slash-separated path relative
// to dir.
func FromDir(dir string) (*Archive, error) {
	a := new(Archive)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		a.Files = append(a.Files, File{
			Name: filepath.ToSlash(rel),
			Data: data,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Lookup returns the data of the named file in the archive.
func Lookup(a *Archive, name string) ([]byte, bool) {
	for _, f := range a.Files {
		if f.Name == name {
			return f.Data, true
		}
	}
	return nil, false
}

// WithPrefix returns the files of the archive whose names start with prefix.
func WithPrefix(a *Archive, prefix string) []File {
	var files []File
	for _, f := range a.Files {
		if strings.HasPrefix(f.Name, prefix) {
			files = append(files, f)
		}
	}
	return files
}
