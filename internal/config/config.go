// ABOUTME: Settings loading with global + project config deep merge
// ABOUTME: JSON-based configuration using encoding/json; no external libs

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings holds the merged configuration.
type Settings struct {
	Lang           string            `json:"lang,omitempty"`
	HistoryBound   int               `json:"history_bound,omitempty"`
	SuggestionsMax int               `json:"suggestions_max,omitempty"`
	NoSuggestions  bool              `json:"no_suggestions,omitempty"`
	AutoConfirm    bool              `json:"auto_confirm,omitempty"`
	Voice          bool              `json:"voice,omitempty"`
	Verbose        bool              `json:"verbose,omitempty"`
	Quiet          bool              `json:"quiet,omitempty"`
	Env            map[string]string `json:"env,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings; environment overrides both.
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
	ResolveEnvVars(merged)
	ApplyEnvOverrides(merged)
	return merged, nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if file
// does not exist.
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
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Lang != "" {
		result.Lang = project.Lang
	}
	if project.HistoryBound != 0 {
		result.HistoryBound = project.HistoryBound
	}
	if project.SuggestionsMax != 0 {
		result.SuggestionsMax = project.SuggestionsMax
	}
	if project.NoSuggestions {
		result.NoSuggestions = true
	}
	if project.AutoConfirm {
		result.AutoConfirm = true
	}
	if project.Voice {
		result.Voice = true
	}
	if project.Verbose {
		result.Verbose = true
	}
	if project.Quiet {
		result.Quiet = true
	}

	// Merge env maps
	if len(project.Env) > 0 {
		if result.Env == nil {
			result.Env = make(map[string]string)
		}
		for k, v := range project.Env {
			result.Env[k] = v
		}
	}

	return &result
}
