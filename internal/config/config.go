// ABOUTME: Settings loading with global + project config deep merge
// ABOUTME: JSON-based configuration using encoding/json; env overrides applied last

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Default values applied when neither config file sets a field.
const (
	DefaultTool        = "pub"
	DefaultRegistryURL = "https://pub.dev/api"
	DefaultDebounceMs  = 500
)

// Settings holds the merged configuration.
type Settings struct {
	// Suggestions gates the registry-backed enrichment path. Defaults on.
	Suggestions *bool `json:"enable_suggestions,omitempty"`
	// AutoResync triggers a debounced resync when the manifest is saved.
	AutoResync bool `json:"auto_resync,omitempty"`
	// Tool is the external package manager command.
	Tool string `json:"tool,omitempty"`
	// RegistryURL is the base URL of the package registry API.
	RegistryURL string `json:"registry_url,omitempty"`
	// StrictImports restricts import detection to actual import lines.
	StrictImports bool `json:"strict_imports,omitempty"`
	// DebounceMs is the suggestion session debounce window.
	DebounceMs int `json:"debounce_ms,omitempty"`
}

// SuggestionsEnabled reports the effective enable_suggestions value.
func (s *Settings) SuggestionsEnabled() bool {
	return s.Suggestions == nil || *s.Suggestions
}

// Load reads and merges global and project-local settings, fills defaults,
// and applies environment overrides. Project settings win over global.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	applyDefaults(merged)
	applyEnv(merged)
	return merged, nil
}

// loadFile reads Settings from a JSON file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge deep-merges project settings onto global settings.
// Set project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Suggestions != nil {
		result.Suggestions = project.Suggestions
	}
	if project.AutoResync {
		result.AutoResync = true
	}
	if project.Tool != "" {
		result.Tool = project.Tool
	}
	if project.RegistryURL != "" {
		result.RegistryURL = project.RegistryURL
	}
	if project.StrictImports {
		result.StrictImports = true
	}
	if project.DebounceMs != 0 {
		result.DebounceMs = project.DebounceMs
	}

	return &result
}

func applyDefaults(s *Settings) {
	if s.Tool == "" {
		s.Tool = DefaultTool
	}
	if s.RegistryURL == "" {
		s.RegistryURL = DefaultRegistryURL
	}
	if s.DebounceMs == 0 {
		s.DebounceMs = DefaultDebounceMs
	}
}

// applyEnv applies PUBPAL_* overrides and expands ${VAR} patterns in
// string fields.
func applyEnv(s *Settings) {
	if v := os.Getenv("PUBPAL_REGISTRY_URL"); v != "" {
		s.RegistryURL = v
	}
	if v := os.Getenv("PUBPAL_TOOL"); v != "" {
		s.Tool = v
	}
	s.Tool = expandEnv(s.Tool)
	s.RegistryURL = expandEnv(s.RegistryURL)
}
