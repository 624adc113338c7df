// SPDX-License-Identifier: MPL-2.0

package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typi-cli/pkg/closure"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func setOf(paths ...string) closure.FileSet {
	set := closure.NewFileSet()
	for _, p := range paths {
		set.Add(p)
	}
	return set
}

func TestMaterialize_MirrorsRelativeLayout(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := t.TempDir()
	main := writeFile(t, src, "main.typ", "content")
	lib := writeFile(t, src, "sub/lib.typ", "lib content")

	copied, err := Materialize(setOf(main, lib), src, dst)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.typ", "sub/lib.typ"}, copied)

	data, err := os.ReadFile(filepath.Join(dst, "sub", "lib.typ"))
	require.NoError(t, err)
	assert.Equal(t, "lib content", string(data))
}

func TestMaterialize_PreservesModTime(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := t.TempDir()
	main := writeFile(t, src, "main.typ", "content")

	stamp := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(main, stamp, stamp))

	_, err := Materialize(setOf(main), src, dst)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dst, "main.typ"))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(stamp), "mod time %v, want %v", info.ModTime(), stamp)
}

func TestMaterialize_Idempotent(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := t.TempDir()
	main := writeFile(t, src, "main.typ", "content")

	first, err := Materialize(setOf(main), src, dst)
	require.NoError(t, err)
	second, err := Materialize(setOf(main), src, dst)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	data, err := os.ReadFile(filepath.Join(dst, "main.typ"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestMaterialize_RejectsFileOutsideRoot(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	other := t.TempDir()
	dst := t.TempDir()
	stray := writeFile(t, other, "stray.typ", "outside")

	_, err := Materialize(setOf(stray), src, dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside the package root")
}

func TestEntryDirAndExists(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := EntryDir(root, "example", "0.1.0")
	assert.Equal(t, filepath.Join(root, "example", "0.1.0"), dir)

	assert.False(t, EntryExists(root, "example", "0.1.0"))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	assert.True(t, EntryExists(root, "example", "0.1.0"))
}

func TestList(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "zeta", "0.1.0"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "alpha", "0.2.0"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "alpha", "0.1.0"), 0o755))
	// A stray file at the top level is ignored.
	writeFile(t, root, "notes.txt", "ignore me")

	packages, err := List(root)
	require.NoError(t, err)

	require.Len(t, packages, 2)
	assert.Equal(t, "alpha", packages[0].Name)
	assert.Equal(t, []string{"0.1.0", "0.2.0"}, packages[0].Versions)
	assert.Equal(t, "zeta", packages[1].Name)
	assert.Equal(t, []string{"0.1.0"}, packages[1].Versions)
}

func TestList_MissingRoot(t *testing.T) {
	t.Parallel()

	packages, err := List(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, packages)
}
