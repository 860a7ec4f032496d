// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"strings"
	"testing"

	"go.astrophena.name/licenser/testutil"
)

func TestInfoString(t *testing.T) {
	cases := map[string]struct {
		in   Info
		want string
	}{
		"without commit": {
			in:   Info{Name: "licenser", Version: "devel", GoVersion: "go1.26.0", OS: "linux", Arch: "amd64"},
			want: "licenser devel\nbuilt with go1.26.0 for linux/amd64\n",
		},
		"dirty commit": {
			in:   Info{Name: "licenser", Version: "v1.0.0", Commit: "abcdef123456", Dirty: true, GoVersion: "go1.26.0", OS: "linux", Arch: "arm64"},
			want: "licenser v1.0.0 (abcdef123456, dirty)\nbuilt with go1.26.0 for linux/arm64\n",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.in.String(), tc.want)
		})
	}
}

func TestVersion(t *testing.T) {
	v := Version()
	if v.Name == "" || v.GoVersion == "" {
		t.Fatalf("Version() returned incomplete info: %#v", v)
	}
	if !strings.HasPrefix(v.String(), v.Name+" ") {
		t.Fatalf("String() = %q, want it to start with the command name", v.String())
	}
}
