// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package unwrap

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"go.astrophena.name/licenser/testutil"
)

var templates = fstest.MapFS{
	"templates/mit.txt": {Data: []byte("Copyright (c) {year} {author}\n")},
}

func mustPanic(t *testing.T, f func()) any {
	t.Helper()
	var r any
	func() {
		defer func() { r = recover() }()
		f()
	}()
	if r == nil {
		t.Fatal("no panic")
	}
	return r
}

func TestValue(t *testing.T) {
	b := Value(fs.ReadFile(templates, "templates/mit.txt"))
	testutil.AssertEqual(t, string(b), "Copyright (c) {year} {author}\n")

	entries := Value(fs.ReadDir(templates, "templates"))
	testutil.AssertEqual(t, len(entries), 1)

	r := mustPanic(t, func() { Value(fs.ReadFile(templates, "templates/gpl3.txt")) })
	err, ok := r.(error)
	if !ok || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("panic value = %v, want fs.ErrNotExist", r)
	}
}

func TestNoError(t *testing.T) {
	NoError(nil)

	errBroken := errors.New("template registry is broken")
	r := mustPanic(t, func() { NoError(errBroken) })
	testutil.AssertEqual(t, r, errBroken)
}
