// ABOUTME: Tests for upward project root resolution
// ABOUTME: Verifies nested directories resolve and rootless trees fail

package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pubpal/pubpal/internal/manifest"
)

func TestFindRoot_NestedDir(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, manifest.FileName), []byte("name: demo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "lib", "src")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindRoot(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// t.TempDir may sit behind a symlink on some platforms; compare resolved paths.
	wantReal, _ := filepath.EvalSymlinks(root)
	gotReal, _ := filepath.EvalSymlinks(got)
	if gotReal != wantReal {
		t.Errorf("got %q; want %q", gotReal, wantReal)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	t.Parallel()
	_, err := FindRoot(t.TempDir())
	if !errors.Is(err, ErrNoRoot) {
		t.Errorf("err = %v; want ErrNoRoot", err)
	}
}
