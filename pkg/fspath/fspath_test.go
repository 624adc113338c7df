// SPDX-License-Identifier: MPL-2.0

package fspath

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_NonexistentPathStaysAbsolute(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := filepath.Join(dir, "does", "not", "exist.typ")

	got := Resolve(p)
	if !filepath.IsAbs(got) {
		t.Errorf("Resolve(%q) = %q, want absolute", p, got)
	}
}

func TestResolve_CleansRelativeSegments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := filepath.Join(dir, "sub", "..", "file.typ")

	got := Resolve(p)
	want := Resolve(filepath.Join(dir, "file.typ"))
	if got != want {
		t.Errorf("Resolve(%q) = %q, want %q", p, got, want)
	}
}

func TestResolve_FollowsSymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "real.typ")
	if err := os.WriteFile(target, []byte("#let x = 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "alias.typ")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	if got, want := Resolve(link), Resolve(target); got != want {
		t.Errorf("Resolve(link) = %q, want %q", got, want)
	}
}

func TestRelTo(t *testing.T) {
	t.Parallel()

	sep := string(filepath.Separator)
	root := sep + filepath.Join("pkg", "root")

	tests := []struct {
		name    string
		path    string
		wantRel string
		wantOK  bool
	}{
		{
			name:    "direct child",
			path:    filepath.Join(root, "lib.typ"),
			wantRel: "lib.typ",
			wantOK:  true,
		},
		{
			name:    "nested child uses forward slashes",
			path:    filepath.Join(root, "src", "util.typ"),
			wantRel: "src/util.typ",
			wantOK:  true,
		},
		{
			name:   "parent directory rejected",
			path:   sep + filepath.Join("pkg", "other.typ"),
			wantOK: false,
		},
		{
			name:   "sibling with dotdot prefix rejected",
			path:   sep + filepath.Join("pkg", "rootish", "lib.typ"),
			wantOK: false,
		},
		{
			name:    "root itself",
			path:    root,
			wantRel: ".",
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rel, ok := RelTo(root, tt.path)
			if ok != tt.wantOK {
				t.Fatalf("RelTo(%q, %q) ok = %v, want %v", root, tt.path, ok, tt.wantOK)
			}
			if ok && rel != tt.wantRel {
				t.Errorf("RelTo(%q, %q) = %q, want %q", root, tt.path, rel, tt.wantRel)
			}
		})
	}
}
