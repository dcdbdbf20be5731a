// ABOUTME: Mock transducer for tests and the --voice demo path
// ABOUTME: Replays scripted utterances and records spoken replies

package voice

import (
	"context"
	"io"
	"sync"
)

// Mock replays scripted utterances and captures everything spoken.
type Mock struct {
	mu     sync.Mutex
	script []string
	next   int
	Spoken []string
}

// NewMock creates a transducer that replays script and then returns io.EOF.
func NewMock(script ...string) *Mock {
	return &Mock{script: script}
}

func (m *Mock) Listen(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.next >= len(m.script) {
		return "", io.EOF
	}
	text := m.script[m.next]
	m.next++
	return text, nil
}

func (m *Mock) Speak(ctx context.Context, text, voice string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.Spoken = append(m.Spoken, text)
	m.mu.Unlock()
	return nil
}
