// ABOUTME: Suggestion rendering: numbered list, lipgloss-bordered panel,
// ABOUTME: and fuzzy filtering of suggestions against partial input.

package suggest

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	rankStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// FormatList renders suggestions as a plain numbered list, one per line.
// Returns an empty string when there are no suggestions.
func FormatList(list []Suggestion) string {
	if len(list) == 0 {
		return ""
	}
	var b strings.Builder
	for i, s := range list {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, s.Label)
	}
	return b.String()
}

// FormatBox renders suggestions inside a rounded panel for the
// interactive loop. Labels are padded to a common display width.
func FormatBox(title string, list []Suggestion) string {
	if len(list) == 0 {
		return ""
	}

	width := 0
	for _, s := range list {
		if w := runewidth.StringWidth(s.Label); w > width {
			width = w
		}
	}

	lines := make([]string, 0, len(list)+1)
	lines = append(lines, titleStyle.Render(title))
	for i, s := range list {
		label := runewidth.FillRight(s.Label, width)
		lines = append(lines, fmt.Sprintf("%s %s", rankStyle.Render(fmt.Sprintf("[%d]", i+1)), label))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

// labelSource adapts a suggestion list for fuzzy matching.
type labelSource []Suggestion

func (l labelSource) String(i int) string { return l[i].Label }
func (l labelSource) Len() int            { return len(l) }

// Filter narrows a suggestion list to entries fuzzy-matching the partial
// input, best match first. An empty partial returns the list unchanged.
func Filter(list []Suggestion, partial string) []Suggestion {
	if strings.TrimSpace(partial) == "" {
		return list
	}
	results := fuzzy.FindFrom(strings.ToLower(partial), labelSource(list))
	out := make([]Suggestion, 0, len(results))
	for _, r := range results {
		out = append(out, list[r.Index])
	}
	return out
}
