// SPDX-License-Identifier: MPL-2.0

package closure

import "sort"

// FileSet is a set of absolute file paths, unique by symlink-resolved
// identity. Every member either existed on disk when it was discovered or the
// traversal that built the set failed.
type FileSet map[string]struct{}

// NewFileSet returns an empty FileSet.
func NewFileSet() FileSet {
	return make(FileSet)
}

// Add inserts a path into the set.
func (s FileSet) Add(path string) {
	s[path] = struct{}{}
}

// Contains reports whether the set holds the given path.
func (s FileSet) Contains(path string) bool {
	_, ok := s[path]
	return ok
}

// Len returns the number of paths in the set.
func (s FileSet) Len() int {
	return len(s)
}

// Paths returns the members in sorted order, for deterministic
// materialization and logging.
func (s FileSet) Paths() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
