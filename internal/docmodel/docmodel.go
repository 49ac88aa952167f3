// Package docmodel holds the host-facing view of a documentation build: the
// page descriptors the site builder enumerates and the predicate deciding
// what counts as a markdown source. The plugin only consumes these, it never
// produces them.
package docmodel

import (
	"path"
	"strings"
)

// Page describes a single source file the host build system enumerated.
type Page struct {
	// SrcPath is the path of the source file relative to the docs root, using
	// whatever separator the host OS produced.
	SrcPath string
}

// Files is the host's enumeration of site files for one build.
type Files []Page

// DocumentationPages returns the pages whose source is a markdown file,
// mirroring the host builder's own selection of renderable pages.
func (f Files) DocumentationPages() []Page {
	var out []Page
	for _, p := range f {
		if IsMarkdownFile(p.SrcPath) {
			out = append(out, p)
		}
	}
	return out
}

// IsMarkdownFile reports whether the path names a markdown source.
func IsMarkdownFile(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	return ext == ".md" || ext == ".markdown"
}

// NormalizeSrcPath converts a host-produced source path to the canonical
// forward-slash form used as redirect-map keys.
func NormalizeSrcPath(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
