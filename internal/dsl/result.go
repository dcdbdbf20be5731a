// ABOUTME: Transient per-turn value types: ParseResult and dispatch Outcome.
// ABOUTME: Both carry no identity beyond a single turn of a session.

package dsl

// ParseResult is the output of the DSL parser for one input line.
// An empty Intent marks unrecognized input; Raw then preserves the
// original text verbatim for logging and suggestion purposes.
type ParseResult struct {
	Intent Intent
	Raw    string  // original input, untouched
	Param  string  // trailing parameter payload, when the intent takes one
	Score  float64 // match specificity score, 0 for unrecognized
	Lang   string  // language the match was resolved in

	// FellBack is set when the requested language was absent from the
	// catalog and the configured default was used instead.
	FellBack bool
}

// Recognized reports whether the parser resolved a known intent.
func (r ParseResult) Recognized() bool {
	return r.Intent != IntentNone
}

// Outcome is the result a command layer reports back after dispatch.
type Outcome struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	ExitCode  int    `json:"exit_code,omitempty"`
	Cancelled bool   `json:"cancelled,omitempty"`
}

// Succeeded builds a successful outcome.
func Succeeded(message string) Outcome {
	return Outcome{Success: true, Message: message}
}

// Failed builds a failed outcome with the layer's exit code.
func Failed(message string, exitCode int) Outcome {
	return Outcome{Success: false, Message: message, ExitCode: exitCode}
}

// CancelledOutcome marks a dispatch abandoned by the caller. The session
// still records the turn so the state machine returns to idle.
func CancelledOutcome() Outcome {
	return Outcome{Success: false, Message: "cancelled", Cancelled: true}
}
