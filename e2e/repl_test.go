// ABOUTME: End-to-end tests driving the interactive t2d REPL through a PTY
// ABOUTME: covering startup, phrase turns, confirmation gating and exit

package e2e

import (
	"testing"
	"time"
)

func TestStartupShowsWelcomeAndSuggestions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	s := startT2D(t)
	defer s.close()

	s.expectStringTimeout(t, "talk to your tools", 5*time.Second)
	s.expectStringTimeout(t, "next", 5*time.Second)

	s.sendCtrl(t, 'c')
	s.waitExit(t, 5*time.Second)
}

func TestHelpTurn(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	s := startT2D(t)
	defer s.close()

	s.expectStringTimeout(t, "talk to your tools", 5*time.Second)
	s.submit(t, "help")
	s.expectStringTimeout(t, "meta.help", 5*time.Second)

	s.sendCtrl(t, 'c')
	s.waitExit(t, 5*time.Second)
}

func TestUnrecognizedPhrase(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	s := startT2D(t)
	defer s.close()

	s.expectStringTimeout(t, "talk to your tools", 5*time.Second)
	s.submit(t, "frobnicate the widgets")
	s.expectStringTimeout(t, "did not understand", 5*time.Second)

	s.sendCtrl(t, 'c')
	s.waitExit(t, 5*time.Second)
}

func TestConfirmationDecline(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	s := startT2D(t)
	defer s.close()

	s.expectStringTimeout(t, "talk to your tools", 5*time.Second)
	s.submit(t, "run ls")
	s.expectStringTimeout(t, "destructive", 5*time.Second)
	s.submit(t, "no")
	s.expectStringTimeout(t, "not running", 5*time.Second)

	s.sendCtrl(t, 'c')
	s.waitExit(t, 5*time.Second)
}

func TestPolishSession(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	s := startT2D(t, "--lang", "pl")
	defer s.close()

	s.expectStringTimeout(t, "talk to your tools", 5*time.Second)
	s.submit(t, "pomoc")
	s.expectStringTimeout(t, "meta.help", 5*time.Second)

	s.sendCtrl(t, 'c')
	s.waitExit(t, 5*time.Second)
}
