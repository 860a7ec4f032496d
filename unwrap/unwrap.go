// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package unwrap provides helpers that panic on non-nil errors. They are
// meant for errors that can only happen if the program itself is broken,
// like reading an embedded file.
package unwrap

// Value returns val if err is nil and panics otherwise.
func Value[T any](val T, err error) T {
	NoError(err)
	return val
}

// NoError panics if err is not nil.
func NoError(err error) {
	if err != nil {
		panic(err)
	}
}
