// ABOUTME: Entry point for the Bubble Tea interactive REPL
// ABOUTME: Creates the tea.Program and blocks until exit

package interactive

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/text2dsl-go/internal/orchestrator"
)

// Deps provides the external dependencies for the REPL.
type Deps struct {
	Session *orchestrator.Session
	Version string
}

// Run starts the interactive REPL. Blocks until the user exits.
func Run(deps Deps) error {
	m := newModel(deps)

	p := tea.NewProgram(
		m,
		tea.WithOutput(os.Stderr),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
