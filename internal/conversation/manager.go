// ABOUTME: Context manager: rewrites contextual intents (next/repeat/back,
// ABOUTME: yes/no) against session state and records dispatched turns.

package conversation

import (
	"errors"
	"sync"
	"time"

	"github.com/mauromedda/text2dsl-go/internal/dsl"
)

var (
	// ErrNoHistory is returned when a contextual reference needs a prior
	// turn and the history is empty.
	ErrNoHistory = errors.New("nothing to repeat")
	// ErrNoSuggestions is returned when nav.next finds no offered
	// suggestions to continue with.
	ErrNoSuggestions = errors.New("no suggestion to continue with")
	// ErrNothingPending is returned for yes/no with no confirmation
	// pending; callers treat the input as unrecognized.
	ErrNothingPending = errors.New("no pending confirmation")
)

// Resolution is the concrete intent a parse result resolved to.
type Resolution struct {
	Intent dsl.Intent
	Param  string

	// Gated is set when the intent is destructive: it has been stored as
	// pending and must not be dispatched until a confirm.yes turn.
	Gated bool
	// Confirmed marks a confirm.yes that released the pending intent.
	Confirmed bool
	// Declined marks a confirm.no; Intent holds the cancelled intent.
	Declined bool
}

// Manager owns one session's State. Resolve and Record are each atomic
// with respect to the session; a concurrent Snapshot never observes a
// partial update. Turn processing itself is serialized by the caller.
type Manager struct {
	mu    sync.Mutex
	state State
	bound int
}

// NewManager creates a session manager with the given active language.
func NewManager(lang string) *Manager {
	return &Manager{
		state: State{Lang: lang},
		bound: DefaultHistoryBound,
	}
}

// SetHistoryBound overrides the default history cap. Values below 1 are
// ignored.
func (m *Manager) SetHistoryBound(n int) {
	if n < 1 {
		return
	}
	m.mu.Lock()
	m.bound = n
	m.mu.Unlock()
}

// Snapshot returns a copy of the session state. Slices are copied so the
// caller can hold the snapshot across later mutations.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.state
	s.History = append([]Turn(nil), m.state.History...)
	s.LastSuggestions = append([]dsl.Intent(nil), m.state.LastSuggestions...)
	if m.state.Pending != nil {
		p := *m.state.Pending
		s.Pending = &p
	}
	return s
}

// Resolve rewrites a parse result into a concrete resolution using the
// session state. Deterministic: same state snapshot, same answer.
func (m *Manager) Resolve(res dsl.ParseResult) (Resolution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !res.Recognized() {
		return Resolution{}, errors.New("cannot resolve unrecognized input")
	}

	switch res.Intent {
	case dsl.IntentNavRepeat:
		if m.state.LastIntent == dsl.IntentNone {
			return Resolution{}, ErrNoHistory
		}
		return m.gate(m.state.LastIntent, m.state.LastParam), nil

	case dsl.IntentNavNext:
		if len(m.state.LastSuggestions) == 0 {
			return Resolution{}, ErrNoSuggestions
		}
		// The top suggestion after a failure is the retry referent, which
		// is itself contextual; follow it to the real command.
		next := m.state.LastSuggestions[0]
		if next == dsl.IntentNavRepeat {
			if m.state.LastIntent == dsl.IntentNone {
				return Resolution{}, ErrNoHistory
			}
			return m.gate(m.state.LastIntent, m.state.LastParam), nil
		}
		return m.gate(next, ""), nil

	case dsl.IntentNavBack:
		if len(m.state.History) < 2 {
			return Resolution{}, ErrNoHistory
		}
		// Pop the latest turn; the turn before it becomes active again.
		m.state.History = m.state.History[:len(m.state.History)-1]
		prev := m.state.History[len(m.state.History)-1]
		m.state.LastIntent = prev.Intent
		m.state.LastParam = prev.Param
		return m.gate(prev.Intent, prev.Param), nil

	case dsl.IntentYes:
		if m.state.Pending == nil {
			return Resolution{}, ErrNothingPending
		}
		p := *m.state.Pending
		m.state.Pending = nil
		return Resolution{Intent: p.Intent, Param: p.Param, Confirmed: true}, nil

	case dsl.IntentNo:
		if m.state.Pending == nil {
			return Resolution{}, ErrNothingPending
		}
		p := *m.state.Pending
		m.state.Pending = nil
		return Resolution{Intent: p.Intent, Param: p.Param, Declined: true}, nil
	}

	// Any other intent abandons a pending confirmation without dispatch.
	m.state.Pending = nil
	return m.gate(res.Intent, res.Param), nil
}

// gate stores destructive intents as pending instead of releasing them.
// Callers hold m.mu.
func (m *Manager) gate(intent dsl.Intent, param string) Resolution {
	if intent.Destructive() {
		m.state.Pending = &Pending{Intent: intent, Param: param}
		return Resolution{Intent: intent, Param: param, Gated: true}
	}
	return Resolution{Intent: intent, Param: param}
}

// Record appends a dispatched turn to the history and updates the last
// intent. Failed outcomes are recorded too; retry resolution depends on
// them. Oldest turns evict first once the bound is reached.
func (m *Manager) Record(input string, intent dsl.Intent, param string, outcome dsl.Outcome) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.History = append(m.state.History, Turn{
		Input:   input,
		Intent:  intent,
		Param:   param,
		Outcome: outcome,
		At:      time.Now(),
	})
	if len(m.state.History) > m.bound {
		m.state.History = m.state.History[len(m.state.History)-m.bound:]
	}
	// A navigational intent must never become the repeat target; it would
	// make nav.repeat resolve to itself.
	if !intent.Navigational() {
		m.state.LastIntent = intent
		m.state.LastParam = param
	}
}

// SetLastSuggestions stores the ranked suggestion intents last offered to
// the user, consumed by nav.next.
func (m *Manager) SetLastSuggestions(intents []dsl.Intent) {
	m.mu.Lock()
	m.state.LastSuggestions = append([]dsl.Intent(nil), intents...)
	m.mu.Unlock()
}

// PendingIntent returns the gated intent awaiting confirmation, if any.
func (m *Manager) PendingIntent() (dsl.Intent, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Pending == nil {
		return dsl.IntentNone, false
	}
	return m.state.Pending.Intent, true
}

// ClearPending drops a pending confirmation, e.g. on caller timeout.
func (m *Manager) ClearPending() {
	m.mu.Lock()
	m.state.Pending = nil
	m.mu.Unlock()
}

// Lang returns the session's active language.
func (m *Manager) Lang() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Lang
}
