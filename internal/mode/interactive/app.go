// ABOUTME: Bubble Tea model for the phrase REPL: text input, output blocks,
// ABOUTME: live-filtered suggestion panel, confirmation prompts, cancel keys

package interactive

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/text2dsl-go/internal/dsl"
	"github.com/mauromedda/text2dsl-go/internal/orchestrator"
	"github.com/mauromedda/text2dsl-go/internal/suggest"
)

var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	welcomeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
)

// turnDoneMsg carries one processed turn back into the update loop.
type turnDoneMsg struct {
	input string
	resp  orchestrator.Response
	err   error
}

type model struct {
	deps  Deps
	input textinput.Model

	blocks      []string
	suggestions []suggest.Suggestion

	awaitingConfirm bool
	running         bool
	cancel          context.CancelFunc
	quitting        bool
}

func newModel(deps Deps) *model {
	ti := textinput.New()
	ti.Placeholder = "say what to do"
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.Focus()

	m := &model{deps: deps, input: ti}
	m.blocks = append(m.blocks,
		welcomeStyle.Render(fmt.Sprintf("t2d %s — talk to your tools (%s)", deps.Version, langName(deps.Session))))
	if from := deps.Session.LangFallback(); from != "" {
		m.blocks = append(m.blocks,
			noticeStyle.Render(fmt.Sprintf("%s is not available, answering in %s", from, langName(deps.Session))))
	}
	m.suggestions = deps.Session.Suggestions()
	return m
}

// langName prefers the locale display name over the bare language code.
func langName(s *orchestrator.Session) string {
	if name := s.Locale().DisplayName; name != "" {
		return name
	}
	return s.Lang()
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case turnDoneMsg:
		m.running = false
		m.cancel = nil
		return m, m.absorb(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		if m.running && m.cancel != nil {
			m.cancel()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case "esc":
		if m.awaitingConfirm {
			// Esc declines instead of quitting mid-confirmation.
			return m.submit("no")
		}
		m.quitting = true
		return m, tea.Quit

	case "enter":
		line := strings.TrimSpace(m.input.Value())
		if line == "" || m.running {
			return m, nil
		}
		m.input.SetValue("")
		return m.submit(line)
	}

	// A bare digit picks the numbered suggestion.
	if !m.running && !m.awaitingConfirm && m.input.Value() == "" {
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.suggestions) {
			return m.submit(m.suggestions[n-1].Label)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts one turn off the update loop.
func (m *model) submit(line string) (tea.Model, tea.Cmd) {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.running = true
	m.blocks = append(m.blocks, promptStyle.Render("> ")+line)

	session := m.deps.Session
	return m, func() tea.Msg {
		defer cancel()
		resp, err := session.Turn(ctx, line)
		return turnDoneMsg{input: line, resp: resp, err: err}
	}
}

// absorb renders a finished turn into the block history.
func (m *model) absorb(msg turnDoneMsg) tea.Cmd {
	if msg.err != nil {
		m.blocks = append(m.blocks, errStyle.Render("error: "+msg.err.Error()))
		return nil
	}
	resp := msg.resp

	m.awaitingConfirm = resp.NeedsConfirmation
	if resp.NeedsConfirmation {
		m.blocks = append(m.blocks, noticeStyle.Render(resp.Message))
		return nil
	}

	switch {
	case resp.Result.Intent == dsl.IntentHelp && resp.Outcome != nil && resp.Outcome.Success:
		m.blocks = append(m.blocks, renderMarkdown(resp.Outcome.Message))
	case resp.Outcome != nil && resp.Outcome.Cancelled:
		m.blocks = append(m.blocks, faintStyle.Render("cancelled"))
	case resp.Outcome != nil && !resp.Outcome.Success:
		m.blocks = append(m.blocks, errStyle.Render(resp.Message))
	case resp.Message != "":
		style := okStyle
		if !resp.Result.Recognized() {
			style = noticeStyle
		}
		m.blocks = append(m.blocks, style.Render(resp.Message))
	}

	if resp.Result.FellBack {
		m.blocks = append(m.blocks, faintStyle.Render("(answered in "+langName(m.deps.Session)+")"))
	}
	if len(resp.Suggestions) > 0 {
		m.suggestions = resp.Suggestions
	}
	return nil
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	for _, block := range m.blocks {
		b.WriteString(block)
		b.WriteString("\n")
	}

	if m.awaitingConfirm {
		b.WriteString(noticeStyle.Render("confirm with yes / no"))
		b.WriteString("\n")
	} else if len(m.suggestions) > 0 && !m.running {
		list := m.suggestions
		if partial := strings.TrimSpace(m.input.Value()); partial != "" {
			list = suggest.Filter(list, partial)
		}
		if len(list) > 0 {
			b.WriteString(suggest.FormatBox("next", list))
			b.WriteString("\n")
		}
	}

	if m.running {
		b.WriteString(faintStyle.Render("running… (ctrl+c cancels)"))
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("enter runs · 1-9 picks a suggestion · esc quits"))
	}
	return b.String()
}

// renderMarkdown pretty-prints help text, falling back to the raw source
// when the terminal renderer fails.
func renderMarkdown(md string) string {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
