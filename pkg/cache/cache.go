// SPDX-License-Identifier: MPL-2.0

package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"typi-cli/pkg/closure"
	"typi-cli/pkg/fspath"
)

// EntryDir returns the versioned destination directory for a package.
func EntryDir(cacheRoot, name, version string) string {
	return filepath.Join(cacheRoot, name, version)
}

// EntryExists reports whether the name+version pair is already materialized.
func EntryExists(cacheRoot, name, version string) bool {
	info, err := os.Stat(EntryDir(cacheRoot, name, version))
	return err == nil && info.IsDir()
}

// Materialize copies every file in the set under destRoot, preserving each
// file's path relative to packageRoot and its mode and timestamps.
// Intermediate directories are created as needed. Re-running with unchanged
// content is idempotent.
//
// The copy is not transactional: on failure the files copied so far remain
// in place. The returned slice lists the package-relative paths copied (in
// deterministic order), including the complete list on success, so callers
// can report progress or aid manual cleanup.
func Materialize(set closure.FileSet, packageRoot, destRoot string) ([]string, error) {
	root := fspath.Resolve(packageRoot)

	var copied []string
	for _, src := range set.Paths() {
		rel, ok := fspath.RelTo(root, src)
		if !ok {
			return copied, fmt.Errorf("file %s lies outside the package root %s", src, root)
		}

		dst := filepath.Join(destRoot, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return copied, fmt.Errorf("failed to create directory for %s: %w", rel, err)
		}
		if err := copyFile(src, dst); err != nil {
			return copied, fmt.Errorf("failed to copy %s: %w", rel, err)
		}

		copied = append(copied, rel)
	}

	return copied, nil
}

// copyFile copies a single file's bytes, mode, and modification time.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return err
	}

	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
