// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"fmt"
)

type (
	// NotAPackageError reports a directory that does not contain a typst.toml
	// manifest at its root.
	NotAPackageError struct {
		// Dir is the directory that was checked.
		Dir string
	}

	// InvalidManifestError reports a typst.toml that exists but is structurally
	// wrong: unparseable TOML, a missing [package] section, or a missing
	// required field.
	InvalidManifestError struct {
		// Path is the manifest file involved.
		Path string
		// Reason describes what is structurally wrong.
		Reason string
		// Cause is the underlying parse error, if any.
		Cause error
	}

	// MissingFileError reports an import reference that points to a file that
	// does not exist on disk. Asset references are exempt and never produce
	// this error.
	MissingFileError struct {
		// Path is the missing file, relative to the package root,
		// in forward-slash form.
		Path string
	}

	// AcquisitionError reports a failure to obtain the package source,
	// typically a failed or timed-out git clone.
	AcquisitionError struct {
		// Source is the requested source reference (path or clone URL).
		Source string
		// Cause is the underlying failure.
		Cause error
	}

	// AlreadyInstalledNotice signals that the requested name+version pair is
	// already present in the cache and --update was not given. It satisfies
	// the error interface so it can flow through the install pipeline, but
	// callers should treat it as a skip notice, not a failure.
	AlreadyInstalledNotice struct {
		Name    string
		Version string
	}
)

func (e *NotAPackageError) Error() string {
	return fmt.Sprintf("no typst.toml found in %s", e.Dir)
}

func (e *InvalidManifestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid manifest %s: %s: %v", e.Path, e.Reason, e.Cause)
	}
	return fmt.Sprintf("invalid manifest %s: %s", e.Path, e.Reason)
}

// Unwrap returns the underlying parse error for use with errors.Is/As.
func (e *InvalidManifestError) Unwrap() error { return e.Cause }

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing file: %s", e.Path)
}

func (e *AcquisitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to acquire package source %s: %v", e.Source, e.Cause)
	}
	return fmt.Sprintf("failed to acquire package source %s", e.Source)
}

// Unwrap returns the underlying failure for use with errors.Is/As.
func (e *AcquisitionError) Unwrap() error { return e.Cause }

func (e *AlreadyInstalledNotice) Error() string {
	return fmt.Sprintf("package '%s:%s' already installed", e.Name, e.Version)
}
