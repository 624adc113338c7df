// SPDX-License-Identifier: MPL-2.0

package install

import (
	"io"

	"github.com/charmbracelet/log"

	"typi-cli/internal/issue"
	"typi-cli/pkg/cache"
	"typi-cli/pkg/closure"
	"typi-cli/pkg/manifest"
)

type (
	// Installer installs one package version into the local cache.
	// It carries the resolved cache root explicitly; nothing here reads
	// ambient environment state.
	Installer struct {
		// CacheRoot is the local package cache directory.
		CacheRoot string
		// Update overwrites an already-installed name+version pair.
		Update bool
		// Logger receives per-file progress at debug level.
		Logger *log.Logger
	}

	// Result describes a completed installation.
	Result struct {
		// Name and Version identify the installed package.
		Name    string
		Version string
		// Updated is true when an existing cache entry was overwritten.
		Updated bool
		// Copied lists the package-relative paths written to the cache.
		Copied []string
	}
)

// New creates an Installer. A nil logger is replaced with a silent one.
func New(cacheRoot string, update bool, logger *log.Logger) *Installer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Installer{
		CacheRoot: cacheRoot,
		Update:    update,
		Logger:    logger,
	}
}

// Install resolves and materializes the package rooted at packageRoot.
//
// Manifest and closure errors abort before anything is written. When the
// name+version pair is already cached and Update is false, the install is
// skipped with *issue.AlreadyInstalledNotice and zero filesystem writes.
// A failure during the copy phase itself may leave a partial destination;
// the files copied up to that point are logged to aid manual cleanup.
func (ins *Installer) Install(packageRoot string) (*Result, error) {
	man, err := manifest.Load(packageRoot)
	if err != nil {
		return nil, err
	}

	name := man.Package.Name
	version := man.Package.Version
	ins.Logger.Debug("loaded manifest", "package", name, "version", version)

	exists := cache.EntryExists(ins.CacheRoot, name, version)
	if exists && !ins.Update {
		return nil, &issue.AlreadyInstalledNotice{Name: name, Version: version}
	}

	set, err := closure.NewCollector(packageRoot).Collect(man.EntrypointPath(packageRoot))
	if err != nil {
		return nil, err
	}
	ins.Logger.Debug("collected closure", "files", set.Len())

	set, err = closure.ApplyExcludes(set, packageRoot, man.Package.Exclude)
	if err != nil {
		return nil, err
	}

	// Auxiliary files come after exclusion: the manifest, readme, license,
	// assets and template entrypoint are not subject to exclude patterns.
	if err := closure.AddAuxiliary(set, packageRoot, man); err != nil {
		return nil, err
	}

	dest := cache.EntryDir(ins.CacheRoot, name, version)
	copied, err := cache.Materialize(set, packageRoot, dest)
	if err != nil {
		for _, rel := range copied {
			ins.Logger.Error("copied before failure", "file", rel)
		}
		return nil, issue.WrapWithContext(err, "materialize package", dest)
	}

	for _, rel := range copied {
		ins.Logger.Debug("copied", "file", rel)
	}

	return &Result{
		Name:    name,
		Version: version,
		Updated: exists,
		Copied:  copied,
	}, nil
}
