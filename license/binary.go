// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var binaryExtensions = map[string]bool{
	".exe": true, ".dll": true, ".so": true, ".dylib": true,
	".bin": true, ".dat": true, ".wasm": true, ".qm": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".ico": true,
	".mp3": true, ".mp4": true, ".mkv": true,
	".zip": true, ".gz": true, ".pdf": true,
}

// sniffLen is how much of a file is inspected for NUL bytes.
const sniffLen = 1024

// isBinary reports whether the file at path has a binary extension or
// contains a NUL byte in its first kilobyte.
func isBinary(path string) (bool, error) {
	if binaryExtensions[strings.ToLower(filepath.Ext(path))] {
		return true, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return bytes.IndexByte(buf[:n], 0) >= 0, nil
}
