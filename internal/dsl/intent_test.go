// ABOUTME: Tests for intent registry metadata
// ABOUTME: Validates categories, flags, declaration order and outcome helpers

package dsl

import "testing"

func TestIntentMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		intent      Intent
		category    Category
		takesParam  bool
		destructive bool
	}{
		{IntentBuild, CategoryMake, false, false},
		{IntentMakeTarget, CategoryMake, true, false},
		{IntentGitCommit, CategoryGit, true, false},
		{IntentGitPush, CategoryGit, false, true},
		{IntentDockerStop, CategoryDocker, true, true},
		{IntentShellRun, CategoryShell, true, true},
		{IntentPyPip, CategoryPython, true, false},
		{IntentNavRepeat, CategoryContext, false, false},
		{IntentExport, CategoryContext, true, false},
	}

	for _, tt := range tests {
		if got := tt.intent.Category(); got != tt.category {
			t.Errorf("%s: category = %v, want %v", tt.intent, got, tt.category)
		}
		if got := tt.intent.TakesParam(); got != tt.takesParam {
			t.Errorf("%s: takesParam = %v, want %v", tt.intent, got, tt.takesParam)
		}
		if got := tt.intent.Destructive(); got != tt.destructive {
			t.Errorf("%s: destructive = %v, want %v", tt.intent, got, tt.destructive)
		}
	}
}

func TestUnknownIntent(t *testing.T) {
	t.Parallel()

	bogus := Intent("no.such")
	if bogus.Known() {
		t.Error("expected unknown intent")
	}
	if got := bogus.Category(); got != CategoryUnknown {
		t.Errorf("category = %v, want CategoryUnknown", got)
	}
	if DeclOrder(bogus) <= DeclOrder(IntentExport) {
		t.Error("unknown intents must sort after all registered intents")
	}
}

func TestDeclOrderFollowsRegistry(t *testing.T) {
	t.Parallel()

	all := All()
	if len(all) == 0 {
		t.Fatal("empty registry")
	}
	for i := 1; i < len(all); i++ {
		if DeclOrder(all[i-1]) >= DeclOrder(all[i]) {
			t.Errorf("DeclOrder(%s) >= DeclOrder(%s)", all[i-1], all[i])
		}
	}
}

func TestOutcomeConstructors(t *testing.T) {
	t.Parallel()

	if o := Succeeded("done"); !o.Success || o.Message != "done" || o.ExitCode != 0 {
		t.Errorf("Succeeded = %+v", o)
	}
	if o := Failed("boom", 2); o.Success || o.ExitCode != 2 {
		t.Errorf("Failed = %+v", o)
	}
	if o := CancelledOutcome(); !o.Cancelled || o.Success {
		t.Errorf("CancelledOutcome = %+v", o)
	}
}

func TestParseResultRecognized(t *testing.T) {
	t.Parallel()

	if (ParseResult{}).Recognized() {
		t.Error("zero ParseResult must not be recognized")
	}
	if !(ParseResult{Intent: IntentBuild}).Recognized() {
		t.Error("build result must be recognized")
	}
}
