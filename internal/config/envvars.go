// ABOUTME: Environment handling for settings: ${VAR} expansion in string
// ABOUTME: fields and T2D_* variables overriding file-based values

package config

import (
	"os"
	"regexp"
	"strconv"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.Lang = expandEnv(s.Lang)
	for k, v := range s.Env {
		s.Env[k] = expandEnv(v)
	}
}

// ApplyEnvOverrides lets T2D_* environment variables override file values.
// Flags still override these; precedence is flags > env > project > global.
func ApplyEnvOverrides(s *Settings) {
	if v := os.Getenv("T2D_LANG"); v != "" {
		s.Lang = v
	}
	if v := os.Getenv("T2D_HISTORY_BOUND"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.HistoryBound = n
		}
	}
	if v := os.Getenv("T2D_SUGGESTIONS_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.SuggestionsMax = n
		}
	}
	if isTruthy(os.Getenv("T2D_NO_SUGGESTIONS")) {
		s.NoSuggestions = true
	}
	if isTruthy(os.Getenv("T2D_AUTO_CONFIRM")) {
		s.AutoConfirm = true
	}
	if isTruthy(os.Getenv("T2D_VOICE")) {
		s.Voice = true
	}
	if isTruthy(os.Getenv("T2D_VERBOSE")) {
		s.Verbose = true
	}
	if isTruthy(os.Getenv("T2D_QUIET")) {
		s.Quiet = true
	}
}

func isTruthy(v string) bool {
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
