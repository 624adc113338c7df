// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"typi-cli/internal/issue"
)

// FileName is the manifest file name expected at the package root.
const FileName = "typst.toml"

type (
	// Manifest is a loaded typst.toml package descriptor.
	Manifest struct {
		// Package holds the required package identity and entrypoint.
		Package PackageInfo
		// Template holds the optional template block (nil if absent).
		Template *TemplateInfo
		// FilePath is the absolute path the manifest was loaded from.
		FilePath string
	}

	// PackageInfo mirrors the [package] section of typst.toml.
	PackageInfo struct {
		// Name is the package name (required).
		Name string `toml:"name"`
		// Version is the package version string (required).
		// Semver resolution across packages is out of scope; the version is
		// treated as an opaque cache key segment.
		Version string `toml:"version"`
		// Entrypoint is the root source file, relative to the package root (required).
		Entrypoint string `toml:"entrypoint"`
		// Exclude lists glob patterns removing files from the resolved set (optional).
		Exclude []string `toml:"exclude"`
	}

	// TemplateInfo mirrors the [template] section of typst.toml.
	// Both fields are required when the section is present.
	TemplateInfo struct {
		// Path is the template directory, relative to the package root.
		Path string `toml:"path"`
		// Entrypoint is the template's entry file, relative to Path.
		Entrypoint string `toml:"entrypoint"`
	}

	// rawManifest is the decode target. Package is a pointer so a missing
	// [package] section can be told apart from an empty one.
	rawManifest struct {
		Package  *PackageInfo  `toml:"package"`
		Template *TemplateInfo `toml:"template"`
	}
)

// Path returns the manifest file path inside a package root.
func Path(packageRoot string) string {
	return filepath.Join(packageRoot, FileName)
}

// Load reads and validates the manifest at the root of packageRoot.
// Returns *issue.NotAPackageError if no typst.toml exists there and
// *issue.InvalidManifestError if it exists but is structurally wrong.
func Load(packageRoot string) (*Manifest, error) {
	manifestPath := Path(packageRoot)

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &issue.NotAPackageError{Dir: packageRoot}
		}
		return nil, fmt.Errorf("failed to read manifest at %s: %w", manifestPath, err)
	}

	return Parse(data, manifestPath)
}

// Parse decodes and validates manifest content. path is used for error
// reporting and recorded as FilePath.
func Parse(data []byte, path string) (*Manifest, error) {
	var raw rawManifest
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, &issue.InvalidManifestError{Path: path, Reason: "invalid TOML", Cause: err}
	}

	if raw.Package == nil {
		return nil, &issue.InvalidManifestError{Path: path, Reason: "missing [package] section"}
	}

	for _, field := range []struct {
		name  string
		value string
	}{
		{"package.name", raw.Package.Name},
		{"package.version", raw.Package.Version},
		{"package.entrypoint", raw.Package.Entrypoint},
	} {
		if field.value == "" {
			return nil, &issue.InvalidManifestError{
				Path:   path,
				Reason: fmt.Sprintf("missing required field %s", field.name),
			}
		}
	}

	if raw.Template != nil {
		if raw.Template.Path == "" || raw.Template.Entrypoint == "" {
			return nil, &issue.InvalidManifestError{
				Path:   path,
				Reason: "[template] section requires both path and entrypoint",
			}
		}
	}

	return &Manifest{
		Package:  *raw.Package,
		Template: raw.Template,
		FilePath: path,
	}, nil
}

// EntrypointPath returns the entrypoint resolved against the package root.
func (m *Manifest) EntrypointPath(packageRoot string) string {
	return filepath.Join(packageRoot, filepath.FromSlash(m.Package.Entrypoint))
}

// TemplateEntrypointPath returns the template entrypoint resolved against the
// package root, or "" and false if the manifest has no template block.
func (m *Manifest) TemplateEntrypointPath(packageRoot string) (string, bool) {
	if m.Template == nil {
		return "", false
	}
	return filepath.Join(
		packageRoot,
		filepath.FromSlash(m.Template.Path),
		filepath.FromSlash(m.Template.Entrypoint),
	), true
}
