// ABOUTME: Markdown exporter for command sessions
// ABOUTME: One section per turn with input, intent and fenced command output

package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/text2dsl-go/internal/transcript"
)

// ExportMarkdown renders transcript turns as a markdown document to w.
func ExportMarkdown(turns []transcript.TurnData, w io.Writer) error {
	var b strings.Builder
	b.WriteString("# Command Session\n")
	for i, t := range turns {
		fmt.Fprintf(&b, "\n## %d. %s\n\n", i+1, t.Input)
		fmt.Fprintf(&b, "- intent: `%s`\n", t.Intent)
		if t.Param != "" {
			fmt.Fprintf(&b, "- param: `%s`\n", t.Param)
		}
		fmt.Fprintf(&b, "- result: %s\n", markdownStatus(t))
		if t.Outcome.Message != "" {
			fmt.Fprintf(&b, "\n```\n%s\n```\n", strings.TrimRight(t.Outcome.Message, "\n"))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func markdownStatus(t transcript.TurnData) string {
	switch {
	case t.Outcome.Cancelled:
		return "cancelled"
	case t.Outcome.Success:
		return "ok"
	default:
		return fmt.Sprintf("failed (exit %d)", t.Outcome.ExitCode)
	}
}
