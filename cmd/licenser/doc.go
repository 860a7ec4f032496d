// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Licenser manages license headers in the source files of a project.

It recursively walks the project directory and, for every file with a known
comment style, adds a license header rendered from a template. Shebang lines
and XML, HTML and PHP declarations stay on top of the file. Files that
already have a license header are left alone unless -force is given. With
-force, only the copyright notice and lines of known templates are
replaced; other comments, like a package doc comment, stay.
Binary files and directories like .git, node_modules or venv are skipped.

Built-in templates are mit, gpl3, apache2 and isc. The {year} and {author}
placeholders of a template are replaced with the values of -year and
-author. Custom templates can use other placeholders like {project}; their
values come from the vars section of config.yaml or from -var name=value.
When looking for existing headers, custom placeholders match any text.

-year must be a four-digit year.

Modes, in order of precedence:

  - -verify reports files without the expected header and exits with a
    non-zero status if there are any. With -year, headers must also carry
    that year.
  - -update-year rewrites the year on copyright lines of existing headers.
    A year range keeps its start. With -dry, files are only reported.
  - -create-license-file writes the full license text to a LICENSE file in
    the project directory.
  - Otherwise, license headers are added.

The project can be configured with a .licenser.txtar file in its root
directory. This file is a txtar archive and can contain the following
files:

  - config.yaml: default template and author, extra ignored directories,
    exclusion globs, extra comment styles, a fallback style for files
    with unknown extensions and values of custom placeholders.
  - template.{name}: a custom license template called name.

For example:

	-- config.yaml --
	template: corp
	author: ACME Corp
	ignored_dirs: [vendor]
	exclude: ["**.pb.go", "testdata/**"]
	patterns:
	  - extensions: [".lua", ".sql"]
	    start: "--"
	vars:
	  project: Rocket
	-- template.corp --
	Copyright {year} {author}
	Part of {project}. Proprietary and confidential.

Flags override the configuration file.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/licenser/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
