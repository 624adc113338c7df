// SPDX-License-Identifier: MPL-2.0

package source

import "strings"

// GitRefPrefix marks a source reference to be satisfied by cloning.
const GitRefPrefix = "git+"

// Ref is a parsed package source reference.
type Ref struct {
	// Raw is the reference exactly as given on the command line.
	Raw string
	// CloneURL is the URL to clone, set only for git references.
	CloneURL string
	// LocalPath is the package directory, set only for filesystem references.
	LocalPath string
}

// IsGit reports whether the reference requires a clone.
func (r Ref) IsGit() bool {
	return r.CloneURL != ""
}

// ParseRef classifies a raw source argument. The "git+" prefix is trimmed
// exactly once; everything after it is the clone URL, taken literally.
func ParseRef(raw string) Ref {
	if url, found := strings.CutPrefix(raw, GitRefPrefix); found {
		return Ref{Raw: raw, CloneURL: url}
	}
	return Ref{Raw: raw, LocalPath: raw}
}
