// ABOUTME: Tests for the suggestion engine
// ABOUTME: Determinism, seeds, locality boost, failure prepend, filtering

package suggest

import (
	"reflect"
	"testing"

	"github.com/mauromedda/text2dsl-go/internal/catalog"
	"github.com/mauromedda/text2dsl-go/internal/conversation"
	"github.com/mauromedda/text2dsl-go/internal/dsl"
)

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	return NewEngine(c, opts...)
}

func stateAfter(intent dsl.Intent, outcome dsl.Outcome) conversation.State {
	m := conversation.NewManager("en")
	m.Record("x", intent, "", outcome)
	return m.Snapshot()
}

func TestSuggestDeterministic(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	state := stateAfter(dsl.IntentBuild, dsl.Succeeded("ok"))

	first := e.Suggest(state)
	for i := 0; i < 5; i++ {
		if got := e.Suggest(state); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestSuggestAfterBuild(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	got := e.Suggest(stateAfter(dsl.IntentBuild, dsl.Succeeded("ok")))
	if len(got) == 0 {
		t.Fatal("no suggestions")
	}
	// test (0.9) gains the locality boost over clean (0.6) and commit (0.5).
	if got[0].Intent != dsl.IntentTest {
		t.Errorf("top suggestion = %s, want test", got[0].Intent)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("scores not descending at %d: %+v", i, got)
		}
	}
}

func TestLocalityBoost(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	got := e.Suggest(stateAfter(dsl.IntentGitStatus, dsl.Succeeded("ok")))
	if len(got) < 2 {
		t.Fatalf("suggestions = %+v", got)
	}
	// Both successors share git.status's category, each boosted equally.
	if got[0].Intent != dsl.IntentGitCommit || got[1].Intent != dsl.IntentGitPull {
		t.Errorf("order = %s, %s", got[0].Intent, got[1].Intent)
	}
	if want := 0.8 + 0.15; got[0].Score != want {
		t.Errorf("boosted score = %v, want %v", got[0].Score, want)
	}
}

func TestSeedsOnFreshSession(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	state := conversation.NewManager("en").Snapshot()
	got := e.Suggest(state)
	if len(got) == 0 {
		t.Fatal("fresh session must get seed suggestions")
	}
	if got[0].Intent != dsl.IntentBuild {
		t.Errorf("top seed = %s, want build", got[0].Intent)
	}
}

func TestSeedsFilteredByAvailability(t *testing.T) {
	t.Parallel()

	e := newEngine(t, WithAvailable([]dsl.Category{dsl.CategoryGit, dsl.CategoryShell}))
	got := e.Suggest(conversation.NewManager("en").Snapshot())
	for _, s := range got {
		cat := s.Intent.Category()
		if cat != dsl.CategoryGit && cat != dsl.CategoryShell && cat != dsl.CategoryContext {
			t.Errorf("suggestion %s has unavailable category %v", s.Intent, cat)
		}
	}
}

func TestFailurePrependsRetryAndHelp(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	got := e.Suggest(stateAfter(dsl.IntentBuild, dsl.Failed("boom", 2)))
	if len(got) < 2 {
		t.Fatalf("suggestions = %+v", got)
	}
	if got[0].Intent != dsl.IntentNavRepeat {
		t.Errorf("first = %s, want nav.repeat", got[0].Intent)
	}
	if got[1].Intent != dsl.IntentHelp {
		t.Errorf("second = %s, want meta.help", got[1].Intent)
	}
}

func TestSuggestCapAndNoDuplicates(t *testing.T) {
	t.Parallel()

	e := newEngine(t, WithMax(3))
	got := e.Suggest(stateAfter(dsl.IntentBuild, dsl.Failed("boom", 2)))
	if len(got) > 3 {
		t.Fatalf("cap exceeded: %d", len(got))
	}
	seen := make(map[dsl.Intent]bool)
	for _, s := range got {
		if seen[s.Intent] {
			t.Errorf("duplicate suggestion %s", s.Intent)
		}
		seen[s.Intent] = true
	}
}

func TestLabelsUseSessionLanguage(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	m := conversation.NewManager("pl")
	m.Record("zbuduj", dsl.IntentBuild, "", dsl.Succeeded("ok"))
	got := e.Suggest(m.Snapshot())
	if len(got) == 0 {
		t.Fatal("no suggestions")
	}
	if got[0].Label != "testy" {
		t.Errorf("label = %q, want Polish phrase %q", got[0].Label, "testy")
	}
}

func TestIntentsProjection(t *testing.T) {
	t.Parallel()

	list := []Suggestion{{Intent: dsl.IntentTest}, {Intent: dsl.IntentClean}}
	got := Intents(list)
	want := []dsl.Intent{dsl.IntentTest, dsl.IntentClean}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Intents = %v, want %v", got, want)
	}
}
