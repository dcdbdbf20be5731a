// ABOUTME: Suggestion engine: static adjacency ranking with locality boost
// ABOUTME: and retry/help prepended after failures; pure function of state.

package suggest

import (
	"sort"

	"github.com/mauromedda/text2dsl-go/internal/catalog"
	"github.com/mauromedda/text2dsl-go/internal/conversation"
	"github.com/mauromedda/text2dsl-go/internal/dsl"
)

// DefaultMax bounds a ranked suggestion list.
const DefaultMax = 5

// localityBoost favors candidates in the same category as the last intent.
const localityBoost = 0.15

// Suggestion is a ranked candidate next intent with a label rendered in
// the session's active language.
type Suggestion struct {
	Intent dsl.Intent
	Label  string
	Score  float64
}

// weighted is one adjacency edge.
type weighted struct {
	intent dsl.Intent
	weight float64
}

// adjacency maps each intent to its typical successors with fixed
// weights. Edge order within a slice is not significant; ranking ties are
// broken by intent declaration order.
var adjacency = map[dsl.Intent][]weighted{
	dsl.IntentBuild:      {{dsl.IntentTest, 0.9}, {dsl.IntentClean, 0.6}, {dsl.IntentGitCommit, 0.5}},
	dsl.IntentTest:       {{dsl.IntentGitCommit, 0.8}, {dsl.IntentBuild, 0.5}},
	dsl.IntentClean:      {{dsl.IntentBuild, 0.9}},
	dsl.IntentInstall:    {{dsl.IntentTest, 0.6}, {dsl.IntentBuild, 0.5}},
	dsl.IntentMakeTarget: {{dsl.IntentTest, 0.5}, {dsl.IntentBuild, 0.4}},

	dsl.IntentGitStatus:   {{dsl.IntentGitCommit, 0.8}, {dsl.IntentGitPull, 0.6}},
	dsl.IntentGitCommit:   {{dsl.IntentGitPush, 0.9}, {dsl.IntentGitStatus, 0.6}},
	dsl.IntentGitPush:     {{dsl.IntentGitStatus, 0.7}},
	dsl.IntentGitPull:     {{dsl.IntentBuild, 0.6}, {dsl.IntentGitStatus, 0.5}},
	dsl.IntentGitCheckout: {{dsl.IntentGitPull, 0.7}, {dsl.IntentBuild, 0.5}},

	dsl.IntentDockerBuild:   {{dsl.IntentDockerRun, 0.9}, {dsl.IntentDockerPS, 0.5}},
	dsl.IntentDockerRun:     {{dsl.IntentDockerPS, 0.8}, {dsl.IntentDockerStop, 0.5}},
	dsl.IntentDockerStop:    {{dsl.IntentDockerPS, 0.6}},
	dsl.IntentDockerPS:      {{dsl.IntentDockerRun, 0.4}},
	dsl.IntentDockerCompose: {{dsl.IntentDockerPS, 0.7}},

	dsl.IntentShellList: {{dsl.IntentShellShow, 0.6}},
	dsl.IntentShellShow: {{dsl.IntentShellList, 0.4}},

	dsl.IntentPyTest: {{dsl.IntentGitCommit, 0.6}, {dsl.IntentPyRun, 0.4}},
	dsl.IntentPyRun:  {{dsl.IntentPyTest, 0.5}},
	dsl.IntentPyPip:  {{dsl.IntentPyTest, 0.7}},
}

// seeds are offered on a fresh session, filtered by probed categories.
var seeds = []weighted{
	{dsl.IntentBuild, 0.9},
	{dsl.IntentGitStatus, 0.85},
	{dsl.IntentDockerPS, 0.7},
	{dsl.IntentPyTest, 0.65},
	{dsl.IntentShellList, 0.5},
	{dsl.IntentHelp, 0.3},
}

// Engine ranks follow-up intents from a state snapshot. It is immutable
// after construction and shared across sessions.
type Engine struct {
	catalog   *catalog.Catalog
	max       int
	available map[dsl.Category]bool // nil means every category
}

// Option configures an Engine.
type Option func(*Engine)

// WithMax bounds the ranked list length.
func WithMax(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.max = n
		}
	}
}

// WithAvailable restricts seed suggestions to probed project categories.
// Context intents are always available.
func WithAvailable(cats []dsl.Category) Option {
	return func(e *Engine) {
		e.available = make(map[dsl.Category]bool, len(cats))
		for _, c := range cats {
			e.available[c] = true
		}
	}
}

// NewEngine creates a suggestion engine rendering labels from the catalog.
func NewEngine(c *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{catalog: c, max: DefaultMax}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Suggest produces the ranked suggestion list for a state snapshot.
// Deterministic and restartable: identical state yields identical output,
// and no intent appears twice.
func (e *Engine) Suggest(state conversation.State) []Suggestion {
	var ranked []weighted

	if state.LastIntent == dsl.IntentNone {
		for _, s := range seeds {
			if e.categoryAvailable(s.intent.Category()) {
				ranked = append(ranked, s)
			}
		}
	} else {
		lastCat := state.LastIntent.Category()
		for _, w := range adjacency[state.LastIntent] {
			if w.intent.Category() == lastCat {
				w.weight += localityBoost
			}
			ranked = append(ranked, w)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].weight != ranked[j].weight {
			return ranked[i].weight > ranked[j].weight
		}
		return dsl.DeclOrder(ranked[i].intent) < dsl.DeclOrder(ranked[j].intent)
	})

	// After a failed dispatch, retry and help jump the queue.
	if out, ok := state.LastOutcome(); ok && !out.Success {
		ranked = append([]weighted{
			{dsl.IntentNavRepeat, 2.0},
			{dsl.IntentHelp, 1.9},
		}, ranked...)
	}

	seen := make(map[dsl.Intent]bool, len(ranked))
	suggestions := make([]Suggestion, 0, e.max)
	for _, w := range ranked {
		if seen[w.intent] {
			continue
		}
		seen[w.intent] = true
		suggestions = append(suggestions, Suggestion{
			Intent: w.intent,
			Label:  e.catalog.Label(state.Lang, w.intent),
			Score:  w.weight,
		})
		if len(suggestions) == e.max {
			break
		}
	}
	return suggestions
}

func (e *Engine) categoryAvailable(c dsl.Category) bool {
	if e.available == nil || c == dsl.CategoryContext {
		return true
	}
	return e.available[c]
}

// Intents projects a suggestion list onto its ranked intents, the shape
// the context manager stores for nav.next.
func Intents(list []Suggestion) []dsl.Intent {
	out := make([]dsl.Intent, len(list))
	for i, s := range list {
		out[i] = s.Intent
	}
	return out
}
