// ABOUTME: Tests for the phrase parser across languages
// ABOUTME: Covers specificity, params, fallback and unrecognized input

package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mauromedda/text2dsl-go/internal/catalog"
	"github.com/mauromedda/text2dsl-go/internal/dsl"
)

func newParser(t *testing.T) *Parser {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	return New(c, "en")
}

func TestParseAcrossLanguages(t *testing.T) {
	t.Parallel()

	p := newParser(t)
	tests := []struct {
		lang  string
		input string
		want  dsl.Intent
		param string
	}{
		{"pl", "zbuduj projekt", dsl.IntentBuild, ""},
		{"pl", "Zbuduj obraz api:v2", dsl.IntentDockerBuild, "api:v2"},
		{"pl", "status", dsl.IntentGitStatus, ""},
		{"pl", "pokaż pliki", dsl.IntentShellList, ""},
		{"pl", "uruchom testy", dsl.IntentTest, ""},
		{"pl", "zatwierdź poprawka parsera", dsl.IntentGitCommit, "poprawka parsera"},
		{"de", "bauen", dsl.IntentBuild, ""},
		{"de", "container stoppen web", dsl.IntentDockerStop, "web"},
		{"de", "wechsle zu main", dsl.IntentGitCheckout, "main"},
		{"de", "hilfe", dsl.IntentHelp, ""},
		{"en", "run tests", dsl.IntentTest, ""},
		{"en", "commit Fix parser bug", dsl.IntentGitCommit, "Fix parser bug"},
		{"en", "run container nginx", dsl.IntentDockerRun, "nginx"},
		{"en", "run echo hi", dsl.IntentShellRun, "echo hi"},
		{"en", "push", dsl.IntentGitPush, ""},
	}
	for _, tt := range tests {
		res := p.Parse(tt.input, tt.lang)
		if res.Intent != tt.want {
			t.Errorf("Parse(%q, %s) intent = %s, want %s", tt.input, tt.lang, res.Intent, tt.want)
		}
		if res.Param != tt.param {
			t.Errorf("Parse(%q, %s) param = %q, want %q", tt.input, tt.lang, res.Param, tt.param)
		}
	}
}

func TestParseScores(t *testing.T) {
	t.Parallel()

	p := newParser(t)
	tests := []struct {
		input string
		want  float64
	}{
		{"status", 1.0},         // exact
		{"commit msg", 0.8},     // prefix
		{"please compile it", 0.5}, // contains
	}
	for _, tt := range tests {
		res := p.Parse(tt.input, "en")
		if res.Score != tt.want {
			t.Errorf("Parse(%q) score = %v, want %v", tt.input, res.Score, tt.want)
		}
	}
}

func TestParseUnrecognized(t *testing.T) {
	t.Parallel()

	p := newParser(t)
	for _, input := range []string{"frobnicate the widget", "", "   ", "???"} {
		res := p.Parse(input, "en")
		if res.Recognized() {
			t.Errorf("Parse(%q) unexpectedly recognized as %s", input, res.Intent)
		}
		if res.Raw != input {
			t.Errorf("Parse(%q) raw = %q, want verbatim", input, res.Raw)
		}
	}
}

func TestParseRegionalTagResolves(t *testing.T) {
	t.Parallel()

	p := newParser(t)
	res := p.Parse("bauen", "de-AT")
	if res.Intent != dsl.IntentBuild {
		t.Fatalf("intent = %s, want build", res.Intent)
	}
	if res.FellBack {
		t.Error("regional tag must resolve, not fall back")
	}
	if res.Lang != "de" {
		t.Errorf("lang = %q, want de", res.Lang)
	}
}

func TestParseUnknownLanguageFallsBack(t *testing.T) {
	t.Parallel()

	p := newParser(t)
	res := p.Parse("build", "fr")
	if res.Intent != dsl.IntentBuild {
		t.Fatalf("intent = %s, want build", res.Intent)
	}
	if !res.FellBack {
		t.Error("fallback must be reported")
	}
	if res.Lang != "en" {
		t.Errorf("lang = %q, want default en", res.Lang)
	}
}

func TestParseContainsMatch(t *testing.T) {
	t.Parallel()

	p := newParser(t)
	res := p.Parse("any possibilities here", "en")
	if res.Intent != dsl.IntentOptions {
		t.Fatalf("intent = %s, want %s", res.Intent, dsl.IntentOptions)
	}
}

func TestParseContainsTakesNoParam(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pack := `
language: en
phrases:
  - intent: git.commit
    mode: contains
    phrases: ["deliver"]
`
	if err := os.WriteFile(filepath.Join(dir, "extra.yaml"), []byte(pack), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := catalog.LoadWithUserPacks(dir)
	if err != nil {
		t.Fatalf("LoadWithUserPacks: %v", err)
	}
	p := New(c, "en")

	// A contains match never yields a parameter even for intents that
	// accept one; the surrounding words are not the payload.
	res := p.Parse("please deliver everything now", "en")
	if res.Intent != dsl.IntentGitCommit {
		t.Fatalf("intent = %s, want %s", res.Intent, dsl.IntentGitCommit)
	}
	if res.Param != "" {
		t.Errorf("param = %q, want empty for contains match", res.Param)
	}
}
