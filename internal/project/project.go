// ABOUTME: Project root resolution: nearest ancestor directory with a manifest
// ABOUTME: Walks up from a starting directory; no git or VCS involvement

package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pubpal/pubpal/internal/manifest"
)

// ErrNoRoot is returned when no ancestor directory contains a manifest.
var ErrNoRoot = errors.New("no project root: " + manifest.FileName + " not found in any parent directory")

// FindRoot walks up from dir to the filesystem root and returns the first
// directory containing the manifest file.
func FindRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(manifest.Path(abs)); err == nil {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", ErrNoRoot
		}
		abs = parent
	}
}

// FindRootFromWd resolves the project root from the current working
// directory.
func FindRootFromWd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRoot(wd)
}
