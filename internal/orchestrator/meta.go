// ABOUTME: Meta intents handled inside the orchestrator: help, status,
// ABOUTME: options and transcript export.

package orchestrator

import (
	"fmt"
	"strings"

	"github.com/mauromedda/text2dsl-go/internal/conversation"
	"github.com/mauromedda/text2dsl-go/internal/dsl"
)

// metaTurn handles context-category intents that never reach the
// dispatcher. The turn is recorded like any other.
func (s *Session) metaTurn(input string, res dsl.ParseResult, r conversation.Resolution) (Response, error) {
	var outcome dsl.Outcome
	switch r.Intent {
	case dsl.IntentHelp:
		outcome = dsl.Succeeded(s.HelpMarkdown())
	case dsl.IntentStatus:
		outcome = dsl.Succeeded(s.statusText())
	case dsl.IntentOptions:
		outcome = dsl.Succeeded("here is what you can do next")
	case dsl.IntentExport:
		outcome = s.export(r.Param)
	default:
		outcome = dsl.Failed(fmt.Sprintf("cannot handle %s", r.Intent), 2)
	}
	return s.finish(input, res, r, outcome)
}

// HelpMarkdown renders the phrase reference for the active language as
// markdown, grouped by category. Modes decide how to display it.
func (s *Session) HelpMarkdown() string {
	lang := s.conv.Lang()
	var b strings.Builder
	fmt.Fprintf(&b, "# Commands (%s)\n", lang)

	byCat := make(map[dsl.Category][]dsl.Intent)
	for _, intent := range dsl.All() {
		byCat[intent.Category()] = append(byCat[intent.Category()], intent)
	}
	for _, cat := range []dsl.Category{
		dsl.CategoryMake, dsl.CategoryGit, dsl.CategoryDocker,
		dsl.CategoryShell, dsl.CategoryPython, dsl.CategoryContext,
	} {
		if s.info != nil && cat != dsl.CategoryContext && !categoryIn(s.info.Available(), cat) {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n", cat)
		for _, intent := range byCat[cat] {
			fmt.Fprintf(&b, "- **%s** — `%s`\n", s.label(intent), intent)
		}
	}
	return b.String()
}

func categoryIn(cats []dsl.Category, c dsl.Category) bool {
	for _, x := range cats {
		if x == c {
			return true
		}
	}
	return false
}

// statusText summarizes the session and the probed project.
func (s *Session) statusText() string {
	state := s.conv.Snapshot()
	var b strings.Builder
	if loc := s.Locale(); loc.DisplayName != "" {
		fmt.Fprintf(&b, "language: %s (%s)\n", state.Lang, loc.DisplayName)
	} else {
		fmt.Fprintf(&b, "language: %s\n", state.Lang)
	}
	fmt.Fprintf(&b, "turns: %d\n", len(state.History))
	if state.LastIntent != dsl.IntentNone {
		fmt.Fprintf(&b, "last: %s\n", state.LastIntent)
	}
	if state.Pending != nil {
		fmt.Fprintf(&b, "awaiting confirmation: %s\n", state.Pending.Intent)
	}
	if s.info != nil {
		var names []string
		for _, c := range s.info.Available() {
			names = append(names, c.String())
		}
		fmt.Fprintf(&b, "available: %s\n", strings.Join(names, ", "))
		if branch := s.info.GitBranch(); branch != "" {
			fmt.Fprintf(&b, "branch: %s\n", branch)
		}
		if targets := s.info.MakeTargets(); len(targets) > 0 {
			fmt.Fprintf(&b, "targets: %s\n", strings.Join(targets, ", "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// export delegates to the wired exporter.
func (s *Session) export(dest string) dsl.Outcome {
	if s.exporter == nil {
		return dsl.Failed("export is not available in this mode", 2)
	}
	path, err := s.exporter.Export(dest)
	if err != nil {
		return dsl.Failed(fmt.Sprintf("export failed: %v", err), 1)
	}
	return dsl.Succeeded("exported to " + path)
}
