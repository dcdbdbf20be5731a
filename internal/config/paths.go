// ABOUTME: Standard filesystem paths for t2d configuration and data
// ABOUTME: Resolves ~/.t2d/ for global and .t2d/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".t2d"
	projectDirName = ".t2d"
)

// GlobalDir returns the user-global config directory (~/.t2d/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.t2d/ in cwd).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// SessionsDir returns the transcript storage directory.
func SessionsDir() string {
	return filepath.Join(GlobalDir(), "sessions")
}

// PacksDir returns the directory for user phrase packs.
func PacksDir() string {
	return filepath.Join(GlobalDir(), "packs")
}

// ExportsDir returns the default destination for exported transcripts.
func ExportsDir() string {
	return filepath.Join(GlobalDir(), "exports")
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "settings.json")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "settings.json")
}

// EnsureDir creates a directory and all parents if they don't exist.
// Uses 0o700; transcripts can contain command output.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
