// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

// CommentStyle describes how to comment out a line of text in a file.
// A style with an empty End prefixes every line with Start; otherwise
// the whole header is wrapped in Start and End.
type CommentStyle struct {
	Start string `yaml:"start"`
	End   string `yaml:"end,omitempty"`
}

// Paired reports whether the style wraps text in a start and end marker.
func (s CommentStyle) Paired() bool { return s.End != "" }

// FilePattern binds a set of file extensions to a comment style.
//
// Extensions start with a dot (".go"). An entry without a leading dot is
// a complete file name ("Makefile").
type FilePattern struct {
	Extensions []string     `yaml:"extensions"`
	Style      CommentStyle `yaml:",inline"`
}

var (
	hashStyle  = CommentStyle{Start: "#"}
	slashStyle = CommentStyle{Start: "//"}
	xmlStyle   = CommentStyle{Start: "<!--", End: "-->"}
	cssStyle   = CommentStyle{Start: "/*", End: "*/"}
)

func defaultPatterns() []FilePattern {
	return []FilePattern{
		{[]string{".py", ".sh", ".bash", ".ps1", ".rb", ".rake", ".pl", ".yaml", ".yml", ".toml", "Makefile", "Dockerfile"}, hashStyle},
		{[]string{".js", ".jsx", ".ts", ".tsx", ".c", ".cpp", ".h", ".hpp"}, slashStyle},
		{[]string{".java", ".kt", ".scala", ".rs", ".go", ".php", ".swift", ".cs", ".proto"}, slashStyle},
		{[]string{".html", ".xml", ".svg", ".ui", ".qrc"}, xmlStyle},
		{[]string{".css", ".scss", ".less"}, cssStyle},
	}
}

func defaultIgnoredDirs() []string {
	return []string{
		"__pycache__",
		"node_modules",
		".git",
		".hg",
		".svn",
		"venv",
		".venv",
		"build",
		"dist",
		".pytest_cache",
		".coverage",
		".idea",
		".vscode",
	}
}
