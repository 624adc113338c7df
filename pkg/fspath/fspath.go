// SPDX-License-Identifier: MPL-2.0

// Package fspath provides the path canonicalization helpers shared by the
// closure collector and the cache materializer. Both sides must agree on one
// canonical identity per file, otherwise symlinked duplicates slip past the
// discovered-set guard or relative paths drift between collect and copy.
package fspath

import (
	"path/filepath"
	"strings"
)

// Resolve returns the canonical identity of a path: absolute, cleaned, with
// symlinks resolved when the path exists. Nonexistent paths (still to be
// existence-checked by the caller) resolve to their absolute form.
func Resolve(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// RelTo expresses path relative to root in forward-slash form. Both arguments
// must already be canonical (see Resolve). The second return is false when
// path lies outside root.
func RelTo(root, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
