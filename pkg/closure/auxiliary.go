// SPDX-License-Identifier: MPL-2.0

package closure

import (
	"os"
	"path/filepath"

	"typi-cli/internal/issue"
	"typi-cli/pkg/fspath"
	"typi-cli/pkg/manifest"
)

const (
	// ReadmeFileName is included from the package root when present.
	ReadmeFileName = "README.md"
	// LicenseFileName is included from the package root when present.
	LicenseFileName = "LICENSE"
	// AssetsDirName is the directory whose direct entries are always included.
	AssetsDirName = "assets"
)

// AddAuxiliary extends the set with the fixed files every installed package
// carries, independent of what the entrypoint scan discovered:
//
//   - the manifest file itself (always),
//   - README.md and LICENSE at the package root when present,
//   - direct children of assets/ (top level only, not recursive),
//   - the template entrypoint when the manifest declares a template block.
//
// The template entrypoint is added without being scanned for further
// references, but it must exist; a missing one fails with
// *issue.MissingFileError before anything is copied.
func AddAuxiliary(set FileSet, packageRoot string, man *manifest.Manifest) error {
	set.Add(fspath.Resolve(manifest.Path(packageRoot)))

	for _, name := range []string{ReadmeFileName, LicenseFileName} {
		p := filepath.Join(packageRoot, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			set.Add(fspath.Resolve(p))
		}
	}

	assetsDir := filepath.Join(packageRoot, AssetsDirName)
	if entries, err := os.ReadDir(assetsDir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				// Top-level glob only; nested asset directories need an
				// explicit reference from a source file to be included.
				continue
			}
			set.Add(fspath.Resolve(filepath.Join(assetsDir, entry.Name())))
		}
	}

	if tmpl, ok := man.TemplateEntrypointPath(packageRoot); ok {
		resolved := fspath.Resolve(tmpl)
		if _, err := os.Stat(resolved); err != nil {
			rel, ok := fspath.RelTo(fspath.Resolve(packageRoot), resolved)
			if !ok {
				rel = filepath.ToSlash(resolved)
			}
			return &issue.MissingFileError{Path: rel}
		}
		set.Add(resolved)
	}

	return nil
}
