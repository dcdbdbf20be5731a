// ABOUTME: Shell command adapter: raw argv execution, directory listing and
// ABOUTME: file preview with grapheme-safe truncation.

package layers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mauromedda/text2dsl-go/internal/dsl"
)

type shellLayer struct {
	dir string
}

func (s *shellLayer) Dispatch(ctx context.Context, intent dsl.Intent, param string) dsl.Outcome {
	switch intent {
	case dsl.IntentShellRun:
		argv := strings.Fields(param)
		if len(argv) == 0 {
			return dsl.Failed("nothing to run", 2)
		}
		return run(ctx, s.dir, argv...)
	case dsl.IntentShellList:
		return s.list()
	case dsl.IntentShellShow:
		if param == "" {
			return dsl.Failed("show needs a file name", 2)
		}
		return s.show(param)
	}
	return dsl.Failed(fmt.Sprintf("shell layer cannot handle %s", intent), 2)
}

// list renders the working directory, directories first, each sorted by
// name. Dotfiles are skipped.
func (s *shellLayer) list() dsl.Outcome {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return dsl.Failed(err.Error(), 1)
	}
	var dirs, files []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if e.IsDir() {
			dirs = append(dirs, name+"/")
		} else {
			files = append(files, name)
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)
	all := append(dirs, files...)
	if len(all) == 0 {
		return dsl.Succeeded("(empty)")
	}
	return dsl.Succeeded(strings.Join(all, "\n"))
}

// show previews a file, truncated to the preview limit. Paths escaping the
// working directory are rejected.
func (s *shellLayer) show(name string) dsl.Outcome {
	path := filepath.Join(s.dir, name)
	rel, err := filepath.Rel(s.dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return dsl.Failed("path escapes working directory", 2)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return dsl.Failed(err.Error(), 1)
	}
	return dsl.Succeeded(TruncatePreview(string(data), previewLimit))
}
