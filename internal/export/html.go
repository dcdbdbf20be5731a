// ABOUTME: HTML exporter for command sessions using Go html/template
// ABOUTME: Renders turns with intent badges and collapsible command output

package export

import (
	"html/template"
	"io"
	"strings"

	"github.com/mauromedda/text2dsl-go/internal/transcript"
)

// ExportHTML renders transcript turns as a styled HTML document to w.
// The output uses a dark theme with outcome-specific color indicators:
// success (green), failure (red), cancelled (gray).
// Command output is rendered inside collapsible <details> elements.
func ExportHTML(turns []transcript.TurnData, w io.Writer) error {
	return htmlTmpl.Execute(w, turns)
}

// outcomeClass maps a turn outcome to a CSS class name.
func outcomeClass(t transcript.TurnData) string {
	switch {
	case t.Outcome.Cancelled:
		return "cancelled"
	case t.Outcome.Success:
		return "success"
	default:
		return "failure"
	}
}

// outcomeLabel returns the badge text for a turn outcome.
func outcomeLabel(t transcript.TurnData) string {
	switch {
	case t.Outcome.Cancelled:
		return "cancelled"
	case t.Outcome.Success:
		return "ok"
	default:
		return "failed"
	}
}

// escapeNewlines converts newlines to <br> for HTML rendering.
func escapeNewlines(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>\n"))
}

var funcMap = template.FuncMap{
	"outcomeClass":   outcomeClass,
	"outcomeLabel":   outcomeLabel,
	"escapeNewlines": escapeNewlines,
}

var htmlTmpl = template.Must(template.New("session").Funcs(funcMap).Parse(htmlTemplate))

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Command Session Export</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    background: #1e1e2e;
    color: #cdd6f4;
    font-family: 'SF Mono', 'Cascadia Code', 'Fira Code', monospace;
    font-size: 14px;
    line-height: 1.6;
    padding: 24px;
    max-width: 900px;
    margin: 0 auto;
  }
  .turn {
    margin-bottom: 16px;
    padding: 12px 16px;
    border-radius: 8px;
    border-left: 4px solid;
  }
  .turn.success { border-left-color: #a6e3a1; background: #1e1e2e; }
  .turn.failure { border-left-color: #f38ba8; background: #1e1e2e; }
  .turn.cancelled { border-left-color: #9399b2; background: #1e1e2e; }
  .badge {
    display: inline-block;
    font-size: 11px;
    font-weight: 600;
    text-transform: uppercase;
    letter-spacing: 0.5px;
    padding: 2px 8px;
    border-radius: 4px;
    margin-right: 8px;
  }
  .success .badge { background: #a6e3a122; color: #a6e3a1; }
  .failure .badge { background: #f38ba822; color: #f38ba8; }
  .cancelled .badge { background: #9399b222; color: #9399b2; }
  .input { color: #89b4fa; margin-top: 4px; }
  .intent {
    color: #cba6f7;
    font-size: 12px;
    margin-top: 4px;
  }
  details {
    background: #313244;
    padding: 8px 12px;
    border-radius: 6px;
    margin-top: 8px;
  }
  details summary {
    cursor: pointer;
    color: #9399b2;
    font-size: 12px;
    font-weight: 600;
  }
  details .output {
    margin-top: 8px;
    color: #a6adc8;
    font-size: 12px;
    white-space: pre-wrap;
    word-break: break-all;
  }
  .failure details summary { color: #f38ba8; }
</style>
</head>
<body>
{{- range . }}
<div class="turn {{ outcomeClass . }}">
  <span class="badge">{{ outcomeLabel . }}</span>
  <span class="input">{{ .Input }}</span>
  <div class="intent">{{ .Intent }}{{ if .Param }} {{ .Param }}{{ end }}</div>
  {{- if .Outcome.Message }}
  <details>
    <summary>output</summary>
    <div class="output">{{ escapeNewlines .Outcome.Message }}</div>
  </details>
  {{- end }}
</div>
{{- end }}
</body>
</html>
`
