// SPDX-License-Identifier: MPL-2.0

package source

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
)

// GitFetcher clones package sources with go-git.
type GitFetcher struct {
	// auth is the authentication method to use for clone operations.
	auth transport.AuthMethod
}

// NewGitFetcher creates a fetcher, probing SSH keys and token environment
// variables for credentials. Public HTTPS repositories need none.
func NewGitFetcher() *GitFetcher {
	f := &GitFetcher{}
	f.setupAuth()
	return f
}

// Clone performs a shallow depth-1, single-branch clone of url into dest.
// The history is omitted: one package version needs only the latest revision.
func (f *GitFetcher) Clone(ctx context.Context, url, dest string) error {
	_, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:          url,
		Auth:         f.auth,
		SingleBranch: true,
		Depth:        1,
		Progress:     nil,
	})
	return err
}

// setupAuth configures authentication based on available credentials.
func (f *GitFetcher) setupAuth() {
	if sshAuth := f.trySSHAuth(); sshAuth != nil {
		f.auth = sshAuth
		return
	}
	if httpAuth := f.tryHTTPAuth(); httpAuth != nil {
		f.auth = httpAuth
	}
	// No authentication configured - will work for public repos
}

// trySSHAuth attempts to configure SSH authentication from common key locations.
func (f *GitFetcher) trySSHAuth() transport.AuthMethod {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	keyPaths := []string{
		filepath.Join(homeDir, ".ssh", "id_ed25519"),
		filepath.Join(homeDir, ".ssh", "id_rsa"),
		filepath.Join(homeDir, ".ssh", "id_ecdsa"),
	}

	for _, keyPath := range keyPaths {
		if _, err := os.Stat(keyPath); err == nil {
			auth, err := ssh.NewPublicKeysFromFile("git", keyPath, "")
			if err == nil {
				return auth
			}
		}
	}

	return nil
}

// tryHTTPAuth attempts to configure HTTP authentication from environment tokens.
func (f *GitFetcher) tryHTTPAuth() transport.AuthMethod {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return &http.BasicAuth{
			Username: "x-access-token",
			Password: token,
		}
	}

	if token := os.Getenv("GIT_TOKEN"); token != "" {
		return &http.BasicAuth{
			Username: "git",
			Password: token,
		}
	}

	return nil
}
