// Package paths computes relative paths between filesystem paths.
package paths

import (
	"path/filepath"
	"strings"
)

// RelativePath returns the steps needed to get from base to path.
//
// When exactly one of the two paths is absolute there is no meaningful
// answer: an absolute target is returned unchanged, a relative one
// reports no relative path. Otherwise both paths are walked
// component-by-component from the root; the shared prefix is skipped,
// each remaining component of base becomes a ".." step, and the
// remaining components of path follow.
//
// A ".." component in base past the shared prefix makes the walk
// unresolvable and reports no relative path. A ".." in path is not
// rejected symmetrically; callers should treat that shape as a known
// limitation of the walk.
func RelativePath(path, base string) (string, bool) {
	if filepath.IsAbs(path) != filepath.IsAbs(base) {
		if filepath.IsAbs(path) {
			return path, true
		}
		return "", false
	}

	a := components(path)
	b := components(base)

	var comps []string
	i, j := 0, 0
	for {
		switch {
		case i >= len(a) && j >= len(b):
			return join(comps), true
		case i < len(a) && j >= len(b):
			comps = append(comps, a[i:]...)
			return join(comps), true
		case i >= len(a):
			comps = append(comps, "..")
			j++
		case len(comps) == 0 && a[i] == b[j]:
			i++
			j++
		case b[j] == ".":
			comps = append(comps, a[i])
			i++
			j++
		case b[j] == "..":
			return "", false
		default:
			// Paths diverge: back out of what remains of base,
			// then descend into what remains of path.
			comps = append(comps, "..")
			for k := j + 1; k < len(b); k++ {
				comps = append(comps, "..")
			}
			comps = append(comps, a[i:]...)
			return join(comps), true
		}
	}
}

// components splits a path into its meaningful components. The root and
// a leading "." are kept as components of their own; empty segments and
// interior "." segments are dropped.
func components(p string) []string {
	p = filepath.ToSlash(p)

	var comps []string
	switch {
	case strings.HasPrefix(p, "/"):
		comps = append(comps, "/")
	case p == "." || strings.HasPrefix(p, "./"):
		comps = append(comps, ".")
	}

	for _, c := range strings.Split(p, "/") {
		if c == "" || c == "." {
			continue
		}
		comps = append(comps, c)
	}

	return comps
}

func join(comps []string) string {
	if len(comps) == 0 {
		return ""
	}
	if comps[0] == "/" {
		return "/" + strings.Join(comps[1:], "/")
	}
	return strings.Join(comps, "/")
}
