// SPDX-License-Identifier: MPL-2.0

package source

import (
	"context"
	"fmt"
	"os"
	"time"

	"typi-cli/internal/issue"
)

// DefaultCloneTimeout bounds how long a clone may run before it is aborted
// and reported as an acquisition failure.
const DefaultCloneTimeout = 120 * time.Second

type (
	// Fetcher clones a repository URL into a destination directory.
	Fetcher interface {
		Clone(ctx context.Context, url, dest string) error
	}

	// Acquirer turns source references into readable local directories.
	Acquirer struct {
		// Fetcher performs git clones (defaults to a go-git fetcher).
		Fetcher Fetcher
		// Timeout bounds each clone; zero means DefaultCloneTimeout.
		Timeout time.Duration
	}
)

// NewAcquirer returns an Acquirer with the default git fetcher and timeout.
func NewAcquirer() *Acquirer {
	return &Acquirer{
		Fetcher: NewGitFetcher(),
		Timeout: DefaultCloneTimeout,
	}
}

// Acquire resolves ref to a local directory containing the package source.
//
// Local references are used in place with a no-op cleanup. Git references are
// shallow-cloned into a fresh temporary directory; the returned cleanup
// removes it and must be called on every exit path, success or failure.
// Clone failures and timeouts surface as *issue.AcquisitionError.
func (a *Acquirer) Acquire(ctx context.Context, ref Ref) (dir string, cleanup func(), err error) {
	noop := func() {}

	if !ref.IsGit() {
		info, statErr := os.Stat(ref.LocalPath)
		if statErr != nil {
			return "", noop, &issue.AcquisitionError{Source: ref.Raw, Cause: statErr}
		}
		if !info.IsDir() {
			return "", noop, &issue.AcquisitionError{
				Source: ref.Raw,
				Cause:  fmt.Errorf("not a directory"),
			}
		}
		return ref.LocalPath, noop, nil
	}

	tempDir, err := os.MkdirTemp("", "typi-clone-*")
	if err != nil {
		return "", noop, fmt.Errorf("failed to create temporary clone directory: %w", err)
	}
	cleanup = func() { _ = os.RemoveAll(tempDir) }

	timeout := a.Timeout
	if timeout <= 0 {
		timeout = DefaultCloneTimeout
	}
	cloneCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := a.Fetcher.Clone(cloneCtx, ref.CloneURL, tempDir); err != nil {
		cleanup()
		return "", noop, &issue.AcquisitionError{Source: ref.CloneURL, Cause: err}
	}

	return tempDir, cleanup, nil
}
