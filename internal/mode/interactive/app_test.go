// ABOUTME: Tests for the REPL model: key handling, turn rendering,
// ABOUTME: confirmation prompts and suggestion picking

package interactive

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/text2dsl-go/internal/catalog"
	"github.com/mauromedda/text2dsl-go/internal/dsl"
	"github.com/mauromedda/text2dsl-go/internal/orchestrator"
)

type scriptedDispatcher struct {
	outcomes map[dsl.Intent]dsl.Outcome
	calls    []dsl.Intent
}

func (d *scriptedDispatcher) Dispatch(ctx context.Context, intent dsl.Intent, param string) dsl.Outcome {
	d.calls = append(d.calls, intent)
	if out, ok := d.outcomes[intent]; ok {
		return out
	}
	return dsl.Succeeded("done")
}

func newTestModel(t *testing.T, d orchestrator.Dispatcher) *model {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	s, err := orchestrator.New(c, "en", d)
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}
	return newModel(Deps{Session: s, Version: "test"})
}

// runTurn submits a line and feeds the resulting message back into Update.
func runTurn(t *testing.T, m *model, line string) {
	t.Helper()
	_, cmd := m.submit(line)
	if cmd == nil {
		t.Fatalf("submit(%q) returned no command", line)
	}
	msg, ok := cmd().(turnDoneMsg)
	if !ok {
		t.Fatalf("submit(%q) command did not produce a turn result", line)
	}
	m.Update(msg)
}

func TestWelcomeAndInitialSuggestions(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &scriptedDispatcher{})
	view := m.View()
	if !strings.Contains(view, "talk to your tools") {
		t.Errorf("view missing welcome line:\n%s", view)
	}
	if !strings.Contains(view, "next") {
		t.Errorf("view missing suggestion box:\n%s", view)
	}
}

func TestLanguageFallbackNotice(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	s, err := orchestrator.New(c, "fr", &scriptedDispatcher{})
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}

	m := newModel(Deps{Session: s, Version: "test"})
	view := m.View()
	if !strings.Contains(view, "fr is not available") {
		t.Errorf("view missing fallback notice:\n%s", view)
	}
	if !strings.Contains(view, "English") {
		t.Errorf("view missing fallback language name:\n%s", view)
	}
}

func TestTurnRendersOutcome(t *testing.T) {
	t.Parallel()

	d := &scriptedDispatcher{outcomes: map[dsl.Intent]dsl.Outcome{
		dsl.IntentTest: dsl.Succeeded("all green"),
	}}
	m := newTestModel(t, d)

	runTurn(t, m, "run tests")

	if m.running {
		t.Error("model still marked running after turn completed")
	}
	if !strings.Contains(m.View(), "all green") {
		t.Errorf("view missing dispatch output:\n%s", m.View())
	}
	if len(d.calls) != 1 || d.calls[0] != dsl.IntentTest {
		t.Errorf("dispatched %v, want [test]", d.calls)
	}
}

func TestConfirmationPromptAndEscDeclines(t *testing.T) {
	t.Parallel()

	d := &scriptedDispatcher{}
	m := newTestModel(t, d)

	runTurn(t, m, "push")
	if !m.awaitingConfirm {
		t.Fatal("destructive phrase did not raise a confirmation prompt")
	}
	if !strings.Contains(m.View(), "confirm with yes / no") {
		t.Errorf("view missing confirmation hint:\n%s", m.View())
	}

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc during confirmation produced no command")
	}
	m.Update(cmd().(turnDoneMsg))

	if m.awaitingConfirm {
		t.Error("confirmation still pending after esc")
	}
	if len(d.calls) != 0 {
		t.Errorf("declined command was dispatched: %v", d.calls)
	}
	if !strings.Contains(m.View(), "not running") {
		t.Errorf("view missing decline notice:\n%s", m.View())
	}
}

func TestDigitPicksSuggestion(t *testing.T) {
	t.Parallel()

	d := &scriptedDispatcher{}
	m := newTestModel(t, d)
	if len(m.suggestions) == 0 {
		t.Fatal("fresh model has no suggestions")
	}

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	if cmd == nil {
		t.Fatal("digit key produced no command")
	}
	m.Update(cmd().(turnDoneMsg))

	if len(d.calls) != 1 {
		t.Fatalf("dispatched %v, want exactly one intent", d.calls)
	}
}

func TestCtrlCQuitsWhenIdle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &scriptedDispatcher{})
	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c produced no command")
	}
	if !m.quitting {
		t.Error("ctrl+c did not mark the model quitting")
	}
	if m.View() != "" {
		t.Errorf("quitting view not empty: %q", m.View())
	}
}

func TestEnterIgnoresEmptyInput(t *testing.T) {
	t.Parallel()

	d := &scriptedDispatcher{}
	m := newTestModel(t, d)
	m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if len(d.calls) != 0 {
		t.Errorf("empty enter dispatched %v", d.calls)
	}
}
