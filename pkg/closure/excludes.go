// SPDX-License-Identifier: MPL-2.0

package closure

import (
	"fmt"

	"github.com/gobwas/glob"

	"typi-cli/pkg/fspath"
)

// ApplyExcludes prunes the set by the manifest's exclude patterns.
//
// Patterns use shell-style wildcards matched against the package-relative,
// forward-slash form of each path. A '*' crosses directory separators, like
// fnmatch. Pruning happens once, after the full closure is computed: an
// excluded file has already contributed its own imports, which stay in the
// set unless they match a pattern themselves.
func ApplyExcludes(set FileSet, packageRoot string, patterns []string) (FileSet, error) {
	if len(patterns) == 0 {
		return set, nil
	}

	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}

	root := fspath.Resolve(packageRoot)
	kept := NewFileSet()
	for path := range set {
		rel, ok := fspath.RelTo(root, path)
		if !ok {
			kept.Add(path)
			continue
		}

		excluded := false
		for _, g := range globs {
			if g.Match(rel) {
				excluded = true
				break
			}
		}
		if !excluded {
			kept.Add(path)
		}
	}

	return kept, nil
}
