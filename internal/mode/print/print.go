// ABOUTME: Headless print mode with text and JSON formatters
// ABOUTME: Runs one or more phrases through a session and exits with the last outcome

package print

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mauromedda/text2dsl-go/internal/dsl"
	"github.com/mauromedda/text2dsl-go/internal/orchestrator"
	"github.com/mauromedda/text2dsl-go/internal/suggest"
)

// Config configures headless execution.
type Config struct {
	OutputFormat  string // "text" (default) or "json"
	NoSuggestions bool
}

// Run feeds the phrase through the session and prints the response. An
// empty phrase reads newline-separated phrases from stdin. The returned
// exit code follows the last dispatched outcome: 0 success, the command's
// code on failure, 130 on cancellation, 3 for unrecognized input.
func Run(ctx context.Context, cfg Config, session *orchestrator.Session, phrase string) (int, error) {
	var phrases []string
	if phrase == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return 1, fmt.Errorf("reading stdin: %w", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				phrases = append(phrases, line)
			}
		}
	} else {
		phrases = []string{phrase}
	}
	if len(phrases) == 0 {
		return 1, fmt.Errorf("no input phrase")
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "text"
	}
	f := newFormatter(cfg.OutputFormat)

	code := 0
	f.start()
	for _, p := range phrases {
		resp, err := session.Turn(ctx, p)
		if err != nil {
			f.err(err)
			f.end()
			return 1, nil
		}
		if cfg.NoSuggestions {
			resp.Suggestions = nil
		}
		f.turn(p, resp)
		code = exitCode(resp)
	}
	f.end()
	return code, nil
}

func exitCode(resp orchestrator.Response) int {
	if !resp.Result.Recognized() {
		return 3
	}
	if resp.Outcome == nil {
		return 0
	}
	switch {
	case resp.Outcome.Cancelled:
		return 130
	case resp.Outcome.Success:
		return 0
	case resp.Outcome.ExitCode != 0:
		return resp.Outcome.ExitCode
	default:
		return 1
	}
}

// formatter renders responses for one output format.
type formatter interface {
	start()
	turn(input string, resp orchestrator.Response)
	err(e error)
	end()
}

func newFormatter(format string) formatter {
	switch format {
	case "json":
		return &jsonFormatter{}
	default:
		return &textFormatter{}
	}
}

// textFormatter outputs plain text to stdout.
type textFormatter struct{}

func (f *textFormatter) start() {}

func (f *textFormatter) turn(_ string, resp orchestrator.Response) {
	if resp.Message != "" {
		fmt.Println(resp.Message)
	}
	if len(resp.Suggestions) > 0 {
		fmt.Fprint(os.Stderr, suggest.FormatList(resp.Suggestions))
	}
}

func (f *textFormatter) err(e error) { fmt.Fprintf(os.Stderr, "error: %v\n", e) }
func (f *textFormatter) end()        {}

// jsonFormatter collects all turns and writes a single JSON object at the end.
type jsonFormatter struct {
	turns  []jsonTurn
	errors []string
}

type jsonTurn struct {
	Input       string       `json:"input"`
	Intent      dsl.Intent   `json:"intent"`
	Param       string       `json:"param,omitempty"`
	Recognized  bool         `json:"recognized"`
	FellBack    bool         `json:"fell_back,omitempty"`
	Message     string       `json:"message,omitempty"`
	Outcome     *dsl.Outcome `json:"outcome,omitempty"`
	Suggestions []string     `json:"suggestions,omitempty"`
	NeedsYes    bool         `json:"needs_confirmation,omitempty"`
}

type jsonOutput struct {
	Turns  []jsonTurn `json:"turns"`
	Errors []string   `json:"errors,omitempty"`
}

func (f *jsonFormatter) start() {}

func (f *jsonFormatter) turn(input string, resp orchestrator.Response) {
	t := jsonTurn{
		Input:      input,
		Intent:     resp.Result.Intent,
		Param:      resp.Result.Param,
		Recognized: resp.Result.Recognized(),
		FellBack:   resp.Result.FellBack,
		Message:    resp.Message,
		Outcome:    resp.Outcome,
		NeedsYes:   resp.NeedsConfirmation,
	}
	for _, s := range resp.Suggestions {
		t.Suggestions = append(t.Suggestions, s.Label)
	}
	f.turns = append(f.turns, t)
}

func (f *jsonFormatter) err(e error) { f.errors = append(f.errors, e.Error()) }

func (f *jsonFormatter) end() {
	data, _ := json.Marshal(jsonOutput{Turns: f.turns, Errors: f.errors})
	fmt.Println(string(data))
}
