// SPDX-License-Identifier: MPL-2.0

package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// InstalledPackage is one cached package name with its installed versions.
type InstalledPackage struct {
	Name     string
	Versions []string
}

// List enumerates installed packages under cacheRoot, sorted by name with
// versions sorted lexically. A missing cache root yields an empty listing,
// not an error.
func List(cacheRoot string) ([]InstalledPackage, error) {
	entries, err := os.ReadDir(cacheRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache directory %s: %w", cacheRoot, err)
	}

	var packages []InstalledPackage
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		versionEntries, err := os.ReadDir(filepath.Join(cacheRoot, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read versions of %s: %w", entry.Name(), err)
		}

		var versions []string
		for _, v := range versionEntries {
			if v.IsDir() {
				versions = append(versions, v.Name())
			}
		}
		sort.Strings(versions)

		packages = append(packages, InstalledPackage{
			Name:     entry.Name(),
			Versions: versions,
		})
	}

	sort.Slice(packages, func(i, j int) bool { return packages[i].Name < packages[j].Name })

	return packages, nil
}
