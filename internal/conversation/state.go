// ABOUTME: Per-session conversation state: history ring, last intent,
// ABOUTME: last offered suggestions, and the pending-confirmation slot.

package conversation

import (
	"time"

	"github.com/mauromedda/text2dsl-go/internal/dsl"
)

// DefaultHistoryBound caps the turn history; oldest turns evict first.
const DefaultHistoryBound = 50

// Turn is one completed exchange: what was said, what it resolved to, and
// how the dispatch went.
type Turn struct {
	Input   string
	Intent  dsl.Intent
	Param   string
	Outcome dsl.Outcome
	At      time.Time // recorded for transcripts only, never consulted by resolution
}

// Pending is a destructive intent held back until the user confirms.
type Pending struct {
	Intent dsl.Intent
	Param  string
}

// State is the mutable record of one session. It is owned exclusively by
// that session's Manager; callers read it via Snapshot copies.
type State struct {
	Lang            string
	LastIntent      dsl.Intent
	LastParam       string
	LastSuggestions []dsl.Intent // ranked, as last offered
	History         []Turn
	Pending         *Pending
}

// LastOutcome returns the most recent turn's outcome.
// The second value is false when the history is empty.
func (s State) LastOutcome() (dsl.Outcome, bool) {
	if len(s.History) == 0 {
		return dsl.Outcome{}, false
	}
	return s.History[len(s.History)-1].Outcome, true
}
