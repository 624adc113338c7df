// SPDX-License-Identifier: MPL-2.0

package closure

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"typi-cli/internal/issue"
	"typi-cli/pkg/fspath"
)

// SourceFileExt is the suffix marking a file as scannable source.
// Files without it are leaves of the traversal.
const SourceFileExt = ".typ"

// Collector walks the file-reference graph of one package.
type Collector struct {
	// Root is the package root; missing-file errors are reported relative to it.
	Root string
}

// NewCollector creates a collector rooted at the given package directory.
func NewCollector(packageRoot string) *Collector {
	return &Collector{Root: packageRoot}
}

// Collect returns the closure of files reachable from entrypoint.
//
// The traversal uses an explicit work stack rather than call-stack recursion:
// deep or cyclic import graphs terminate via the discovered-set guard, and
// the visit order stays auditable. Import references must exist, otherwise
// *issue.MissingFileError is returned; asset references are pre-checked at
// push time and silently dropped when absent. Exclude filtering is NOT
// applied here; callers prune the full closure afterwards so that excluded
// files still contribute their own imports.
func (c *Collector) Collect(entrypoint string) (FileSet, error) {
	discovered := NewFileSet()
	stack := []string{fspath.Resolve(entrypoint)}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if isExternalPackageReference(current) {
			continue
		}
		if discovered.Contains(current) {
			continue
		}
		if _, err := os.Stat(current); err != nil {
			return nil, &issue.MissingFileError{Path: c.relToRoot(current)}
		}
		discovered.Add(current)

		if !strings.HasSuffix(current, SourceFileExt) {
			continue
		}

		data, err := os.ReadFile(current)
		if err != nil {
			return nil, fmt.Errorf("failed to read source file %s: %w", c.relToRoot(current), err)
		}

		base := filepath.Dir(current)
		for _, ref := range ScanReferences(string(data)) {
			target := fspath.Resolve(filepath.Join(base, filepath.FromSlash(ref.Path)))

			switch ref.Kind {
			case RefImport:
				stack = append(stack, target)
			case RefAsset:
				// Assets are optional: existence is settled here, not deferred.
				if _, err := os.Stat(target); err == nil {
					stack = append(stack, target)
				}
			}
		}
	}

	return discovered, nil
}

// relToRoot expresses path relative to the package root in forward-slash
// form, falling back to the path itself when it lies outside the root.
func (c *Collector) relToRoot(path string) string {
	if rel, ok := fspath.RelTo(fspath.Resolve(c.Root), path); ok {
		return rel
	}
	return filepath.ToSlash(path)
}

// isExternalPackageReference reports whether a resolved path denotes a
// registry-managed package (e.g. "@preview/foo:0.1.0") rather than a local
// file. Such references resolve through the package cache independently and
// are never copied. The check is a substring test on the resolved path, so a
// legitimate local filename containing '@' is also skipped; keeping '@' out
// of package-local filenames is a documented constraint of the format.
func isExternalPackageReference(path string) bool {
	return strings.Contains(path, "@")
}
