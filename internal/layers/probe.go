// ABOUTME: Project feature probing: which command categories apply to a
// ABOUTME: working directory (Makefile, git repo, Docker, Python project).

package layers

import (
	"os"
	"path/filepath"

	"github.com/mauromedda/text2dsl-go/internal/dsl"
)

// composeFiles are the docker compose manifests checked in order.
var composeFiles = []string{
	"docker-compose.yml",
	"docker-compose.yaml",
	"compose.yml",
	"compose.yaml",
}

// pythonMarkers identify a Python project root.
var pythonMarkers = []string{"pyproject.toml", "setup.py", "requirements.txt"}

func exists(dir string, names ...string) bool {
	for _, name := range names {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// Probe inspects dir and returns the command categories that apply.
// Shell is always available; Context never needs probing.
func Probe(dir string) []dsl.Category {
	cats := []dsl.Category{dsl.CategoryShell}
	if exists(dir, "Makefile", "makefile") {
		cats = append(cats, dsl.CategoryMake)
	}
	if exists(dir, ".git") {
		cats = append(cats, dsl.CategoryGit)
	}
	if exists(dir, "Dockerfile") || exists(dir, composeFiles...) {
		cats = append(cats, dsl.CategoryDocker)
	}
	if exists(dir, pythonMarkers...) {
		cats = append(cats, dsl.CategoryPython)
	}
	return cats
}
