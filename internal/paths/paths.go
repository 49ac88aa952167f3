// Package paths maps documentation source paths to the HTML paths the site
// builder produces, and computes relative links between them. All functions
// operate in URL space (forward slashes) regardless of host OS.
package paths

import (
	"path"
	"strings"
)

// HTMLPath returns the output HTML path for a markdown source path.
//
// Both index.md and README.md normalize to index.html during a build. With
// directory-style URLs every other page lands in its own directory so the
// bare "dir/name/" URL resolves.
func HTMLPath(src string, directoryURLs bool) string {
	parent, filename := path.Split(src)
	name := strings.TrimSuffix(filename, path.Ext(filename))

	lower := strings.ToLower(name)
	if lower == "index" || lower == "readme" {
		name = "index"
	}

	if !directoryURLs {
		return path.Join(parent, name+".html")
	}
	if name == "index" {
		return path.Join(parent, "index.html")
	}
	return path.Join(parent, name, "index.html")
}

// RelativeHTMLPath returns the relative link from the built location of
// oldSrc to the built location of newSrc. With directory-style URLs the
// result is a directory reference with a trailing slash, so that browsers
// resolve it against the old page's URL without naming index.html.
func RelativeHTMLPath(oldSrc, newSrc string, directoryURLs bool) string {
	oldPath := HTMLPath(oldSrc, directoryURLs)
	newPath := HTMLPath(newSrc, directoryURLs)

	if directoryURLs {
		// Drop the trailing index.html so the link addresses the directory.
		newPath = path.Dir(newPath)
	}

	rel := relative(path.Dir(oldPath), newPath)

	if directoryURLs {
		rel += "/"
	}
	return rel
}

// relative computes the URL-space relative path from directory base to
// target, the slash-separated equivalent of filepath.Rel.
func relative(base, target string) string {
	base = path.Clean(base)
	target = path.Clean(target)
	if base == target {
		return "."
	}

	var baseParts, targetParts []string
	if base != "." {
		baseParts = strings.Split(base, "/")
	}
	if target != "." {
		targetParts = strings.Split(target, "/")
	}

	common := 0
	for common < len(baseParts) && common < len(targetParts) && baseParts[common] == targetParts[common] {
		common++
	}

	parts := make([]string, 0, len(baseParts)-common+len(targetParts)-common)
	for range baseParts[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, targetParts[common:]...)
	return strings.Join(parts, "/")
}
