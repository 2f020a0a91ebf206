package site

import (
	"path/filepath"
	"strings"
)

// OutputPath maps a docs-relative markdown path to its generated HTML path.
// The swap is extension-aware: only the trailing suffix changes, regardless
// of how often ".md" appears inside the path.
func OutputPath(relPath string) string {
	rel := filepath.ToSlash(relPath)
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + ".html"
}

// BasePath returns the relative prefix from outputPath back to the site
// root: one "../" per directory level, or "./" for root-level pages.
func BasePath(outputPath string) string {
	depth := strings.Count(filepath.ToSlash(outputPath), "/")
	if depth == 0 {
		return "./"
	}
	return strings.Repeat("../", depth)
}
