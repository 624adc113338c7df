// SPDX-License-Identifier: MPL-2.0

package closure

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typi-cli/pkg/fspath"
)

func TestApplyExcludes_NoPatterns(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	set := NewFileSet()
	set.Add(filepath.Join(root, "main.typ"))

	got, err := ApplyExcludes(set, root, nil)
	require.NoError(t, err)
	assert.Equal(t, set, got)
}

func TestApplyExcludes_Patterns(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	files := []string{"main.typ", "out.pdf", "examples/demo.typ", "examples/deep/x.typ", "assets/logo.png"}

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "suffix wildcard",
			patterns: []string{"*.pdf"},
			want:     []string{"assets/logo.png", "examples/deep/x.typ", "examples/demo.typ", "main.typ"},
		},
		{
			name: "star crosses separators like fnmatch",
			// "examples/*" also matches examples/deep/x.typ
			patterns: []string{"examples/*"},
			want:     []string{"assets/logo.png", "main.typ", "out.pdf"},
		},
		{
			name:     "multiple patterns",
			patterns: []string{"*.pdf", "assets/*"},
			want:     []string{"examples/deep/x.typ", "examples/demo.typ", "main.typ"},
		},
		{
			name:     "no match keeps everything",
			patterns: []string{"*.zip"},
			want:     []string{"assets/logo.png", "examples/deep/x.typ", "examples/demo.typ", "main.typ", "out.pdf"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set := NewFileSet()
			for _, f := range files {
				set.Add(fspath.Resolve(filepath.Join(root, filepath.FromSlash(f))))
			}

			got, err := ApplyExcludes(set, root, tt.patterns)
			require.NoError(t, err)

			assert.Equal(t, tt.want, relFromRoot(t, got, root))
		})
	}
}

func TestApplyExcludes_InvalidPattern(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	set := NewFileSet()
	set.Add(filepath.Join(root, "main.typ"))

	_, err := ApplyExcludes(set, root, []string{"["})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

// Exclusion happens after the full closure: an excluded file's imports are
// still present unless they match a pattern themselves.
func TestApplyExcludes_AfterFullClosure(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "main.typ", `#import "internal.typ"`)
	writeFile(t, root, "internal.typ", `#import "kept.typ"`)
	writeFile(t, root, "kept.typ", "#let keep = true")

	set, err := NewCollector(root).Collect(filepath.Join(root, "main.typ"))
	require.NoError(t, err)

	pruned, err := ApplyExcludes(set, root, []string{"internal.typ"})
	require.NoError(t, err)

	assert.Equal(t, []string{"kept.typ", "main.typ"}, relFromRoot(t, pruned, root))
}

func relFromRoot(t *testing.T, set FileSet, root string) []string {
	t.Helper()
	resolved := fspath.Resolve(root)
	var rels []string
	for _, p := range set.Paths() {
		rel, err := filepath.Rel(resolved, p)
		require.NoError(t, err)
		rels = append(rels, filepath.ToSlash(rel))
	}
	return rels
}
