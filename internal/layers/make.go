// ABOUTME: Make command adapter: target discovery from the Makefile and
// ABOUTME: execution of build/test/clean/install intents via make.

package layers

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mauromedda/text2dsl-go/internal/dsl"
)

// makeLayer runs Makefile targets in a working directory.
type makeLayer struct {
	dir string
}

// Targets parses the Makefile and returns declared target names in file
// order. Pattern rules, special targets and variable assignments are
// skipped. A missing Makefile yields an empty list, not an error.
func (m *makeLayer) Targets() []string {
	path := filepath.Join(m.dir, "Makefile")
	f, err := os.Open(path)
	if err != nil {
		f, err = os.Open(filepath.Join(m.dir, "makefile"))
		if err != nil {
			return nil
		}
	}
	defer f.Close()

	var targets []string
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == '\t' || line[0] == '#' {
			continue
		}
		colon := strings.Index(line, ":")
		if colon <= 0 {
			continue
		}
		// := and = lines are assignments, not rules.
		if strings.ContainsAny(line[:colon], "=$ \t") {
			continue
		}
		name := strings.TrimSpace(line[:colon])
		if name == "" || strings.HasPrefix(name, ".") || strings.Contains(name, "%") {
			continue
		}
		if !seen[name] {
			seen[name] = true
			targets = append(targets, name)
		}
	}
	return targets
}

// hasTarget reports whether name is declared in the Makefile.
func (m *makeLayer) hasTarget(name string) bool {
	for _, t := range m.Targets() {
		if t == name {
			return true
		}
	}
	return false
}

// Dispatch executes a make intent. Build/test/clean/install map to the
// conventional target names; an explicit param selects a specific target.
func (m *makeLayer) Dispatch(ctx context.Context, intent dsl.Intent, param string) dsl.Outcome {
	switch intent {
	case dsl.IntentBuild, dsl.IntentTest, dsl.IntentClean, dsl.IntentInstall:
		target := map[dsl.Intent]string{
			dsl.IntentBuild:   "build",
			dsl.IntentTest:    "test",
			dsl.IntentClean:   "clean",
			dsl.IntentInstall: "install",
		}[intent]
		if !m.hasTarget(target) {
			return dsl.Failed(fmt.Sprintf("no %q target in Makefile", target), 2)
		}
		return run(ctx, m.dir, "make", target)
	case dsl.IntentMakeTarget:
		if param == "" {
			targets := m.Targets()
			if len(targets) == 0 {
				return dsl.Failed("no Makefile targets found", 2)
			}
			return dsl.Succeeded("targets: " + strings.Join(targets, ", "))
		}
		if !m.hasTarget(param) {
			return dsl.Failed(fmt.Sprintf("unknown target %q", param), 2)
		}
		return run(ctx, m.dir, "make", param)
	}
	return dsl.Failed(fmt.Sprintf("make layer cannot handle %s", intent), 2)
}
