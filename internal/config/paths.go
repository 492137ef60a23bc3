// ABOUTME: Standard filesystem paths for pubpal configuration
// ABOUTME: Resolves ~/.pubpal/ for global and .pubpal/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".pubpal"
	projectDirName = ".pubpal"
)

// GlobalDir returns the user-global config directory (~/.pubpal/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory.
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.json")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.json")
}
