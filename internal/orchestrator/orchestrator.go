// ABOUTME: Session orchestrator: parses a line, resolves it against the
// ABOUTME: conversation state, gates confirmations, dispatches and records.

package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/mauromedda/text2dsl-go/internal/catalog"
	"github.com/mauromedda/text2dsl-go/internal/conversation"
	"github.com/mauromedda/text2dsl-go/internal/dsl"
	"github.com/mauromedda/text2dsl-go/internal/log"
	"github.com/mauromedda/text2dsl-go/internal/parser"
	"github.com/mauromedda/text2dsl-go/internal/suggest"
)

// Dispatcher executes a resolved command intent. The category switch lives
// behind this boundary; the orchestrator never builds shell strings.
type Dispatcher interface {
	Dispatch(ctx context.Context, intent dsl.Intent, param string) dsl.Outcome
}

// ProjectInfo exposes probed project facts for status output. Optional.
type ProjectInfo interface {
	Available() []dsl.Category
	MakeTargets() []string
	GitBranch() string
}

// Exporter writes the session transcript somewhere and returns its path.
// Wired by the caller; nil disables meta.export.
type Exporter interface {
	Export(dest string) (string, error)
}

// Recorder receives every recorded turn, e.g. a JSONL transcript writer.
type Recorder interface {
	RecordTurn(t conversation.Turn) error
}

// Response is the outcome of one processed input line.
type Response struct {
	// Message is user-facing text: command output, a prompt, or a notice.
	Message string
	// Outcome is set when a command actually ran.
	Outcome *dsl.Outcome
	// Result is the raw parse; Result.Recognized() distinguishes the
	// unrecognized short-circuit.
	Result dsl.ParseResult
	// Suggestions ranked for the next turn.
	Suggestions []suggest.Suggestion
	// NeedsConfirmation is set when a destructive intent was gated;
	// Message then holds the confirmation prompt.
	NeedsConfirmation bool
}

// Option configures a Session.
type Option func(*Session)

// WithProjectInfo wires probed project facts into status output.
func WithProjectInfo(info ProjectInfo) Option {
	return func(s *Session) { s.info = info }
}

// WithExporter enables the export intent.
func WithExporter(e Exporter) Option {
	return func(s *Session) { s.exporter = e }
}

// WithRecorder attaches a transcript sink.
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithAutoConfirm dispatches destructive intents without prompting.
func WithAutoConfirm() Option {
	return func(s *Session) { s.autoConfirm = true }
}

// WithoutSuggestions suppresses suggestion computation.
func WithoutSuggestions() Option {
	return func(s *Session) { s.noSuggest = true }
}

// WithSuggestionsMax caps the suggestion list length.
func WithSuggestionsMax(n int) Option {
	return func(s *Session) { s.suggestMax = n }
}

// WithHistoryBound overrides the conversation history cap.
func WithHistoryBound(n int) Option {
	return func(s *Session) { s.historyBound = n }
}

// Session drives one conversation: Idle, parse, resolve, dispatch, record,
// back to Idle. Turn is not safe for concurrent use; callers serialize.
type Session struct {
	catalog  *catalog.Catalog
	parser   *parser.Parser
	conv     *conversation.Manager
	engine   *suggest.Engine
	dispatch Dispatcher

	info        ProjectInfo
	exporter    Exporter
	recorder    Recorder
	autoConfirm  bool
	noSuggest    bool
	suggestMax   int
	historyBound int
	fellBackFrom string
}

// DefaultLang is the session language used when the requested tag matches
// no phrase pack. The fallback is recoverable and reported, never silent.
const DefaultLang = "en"

// New builds a session for lang. The dispatcher is required; everything
// else is optional. An unsupported language falls back to DefaultLang;
// LangFallback reports the original request.
func New(c *catalog.Catalog, lang string, d Dispatcher, opts ...Option) (*Session, error) {
	var fellBackFrom string
	if !c.Supported(lang) {
		resolved, err := c.ResolveTag(lang)
		if err != nil {
			log.Warn("language %q is not available, answering in %s", lang, DefaultLang)
			fellBackFrom = lang
			resolved = DefaultLang
		}
		lang = resolved
	}
	s := &Session{
		catalog:      c,
		parser:       parser.New(c, lang),
		conv:         conversation.NewManager(lang),
		dispatch:     d,
		fellBackFrom: fellBackFrom,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.historyBound > 0 {
		s.conv.SetHistoryBound(s.historyBound)
	}
	engineOpts := []suggest.Option{}
	if s.info != nil {
		engineOpts = append(engineOpts, suggest.WithAvailable(s.info.Available()))
	}
	if s.suggestMax > 0 {
		engineOpts = append(engineOpts, suggest.WithMax(s.suggestMax))
	}
	s.engine = suggest.NewEngine(c, engineOpts...)
	return s, nil
}

// Lang returns the session's active language code.
func (s *Session) Lang() string { return s.conv.Lang() }

// LangFallback returns the originally requested language when it matched
// no pack and the session fell back to DefaultLang, "" otherwise.
func (s *Session) LangFallback() string { return s.fellBackFrom }

// Locale returns the display metadata of the session language.
func (s *Session) Locale() catalog.Locale {
	loc, err := s.catalog.Locale(s.conv.Lang())
	if err != nil {
		return catalog.Locale{Code: s.conv.Lang()}
	}
	return loc
}

// Suggestions ranks next steps for the current state without processing a
// turn. Used for the initial prompt of interactive sessions.
func (s *Session) Suggestions() []suggest.Suggestion {
	if s.noSuggest {
		return nil
	}
	list := s.engine.Suggest(s.conv.Snapshot())
	for i := range list {
		list[i].Label = s.label(list[i].Intent)
	}
	s.conv.SetLastSuggestions(suggest.Intents(list))
	return list
}

// State returns a copy of the conversation state.
func (s *Session) State() conversation.State { return s.conv.Snapshot() }

// Turn processes one input line end to end. Expected conditions such as
// unrecognized input or a missing referent come back inside the Response,
// not as errors; the error return is for transcript write failures only.
func (s *Session) Turn(ctx context.Context, input string) (Response, error) {
	res := s.parser.Parse(input, s.conv.Lang())
	log.Debug("parse input=%q intent=%s score=%.2f fellback=%v", input, res.Intent, res.Score, res.FellBack)

	if !res.Recognized() {
		resp := Response{
			Result:  res,
			Message: "I did not understand that. Try one of the suggestions below.",
		}
		s.attachSuggestions(&resp)
		return resp, nil
	}

	resolution, err := s.conv.Resolve(res)
	if err != nil {
		resp := Response{Result: res, Message: referentMessage(err)}
		s.attachSuggestions(&resp)
		return resp, nil
	}

	if resolution.Declined {
		resp := Response{
			Result:  res,
			Message: fmt.Sprintf("ok, not running %s", s.label(resolution.Intent)),
		}
		s.attachSuggestions(&resp)
		return resp, nil
	}

	if resolution.Gated && !s.autoConfirm {
		return Response{
			Result:            res,
			NeedsConfirmation: true,
			Message:           fmt.Sprintf("%s is destructive. Run it? (yes/no)", s.label(resolution.Intent)),
		}, nil
	}
	if resolution.Gated {
		// Auto-confirm consumes the pending entry it just created.
		s.conv.ClearPending()
	}

	if resolution.Intent.Category() == dsl.CategoryContext {
		return s.metaTurn(input, res, resolution)
	}

	outcome := s.dispatch.Dispatch(ctx, resolution.Intent, resolution.Param)
	return s.finish(input, res, resolution, outcome)
}

// finish records a dispatched turn and assembles the response.
func (s *Session) finish(input string, res dsl.ParseResult, r conversation.Resolution, outcome dsl.Outcome) (Response, error) {
	s.conv.Record(input, r.Intent, r.Param, outcome)
	if s.recorder != nil {
		turns := s.conv.Snapshot().History
		if err := s.recorder.RecordTurn(turns[len(turns)-1]); err != nil {
			return Response{}, fmt.Errorf("record turn: %w", err)
		}
	}
	if outcome.Cancelled {
		log.Debug("turn cancelled intent=%s", r.Intent)
	}
	resp := Response{Result: res, Outcome: &outcome, Message: outcome.Message}
	s.attachSuggestions(&resp)
	return resp, nil
}

// attachSuggestions computes and stores the next-turn suggestions unless
// disabled.
func (s *Session) attachSuggestions(resp *Response) {
	if s.noSuggest {
		return
	}
	list := s.engine.Suggest(s.conv.Snapshot())
	for i := range list {
		list[i].Label = s.label(list[i].Intent)
	}
	resp.Suggestions = list
	s.conv.SetLastSuggestions(suggest.Intents(list))
}

func (s *Session) label(i dsl.Intent) string {
	return s.catalog.Label(s.conv.Lang(), i)
}

// referentMessage maps resolution sentinels to user-facing notices.
func referentMessage(err error) string {
	switch {
	case errors.Is(err, conversation.ErrNoHistory):
		return "there is no previous command to go back to"
	case errors.Is(err, conversation.ErrNoSuggestions):
		return "there is no suggestion to continue with"
	case errors.Is(err, conversation.ErrNothingPending):
		return "nothing is waiting for confirmation"
	default:
		return "I could not resolve that here"
	}
}
