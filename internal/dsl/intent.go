// ABOUTME: Canonical language-independent intent identifiers and their metadata.
// ABOUTME: Defines Category enum, the intent registry, and per-intent flags.

package dsl

import "fmt"

// Category is the closed set of command families an intent dispatches to.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryMake
	CategoryGit
	CategoryDocker
	CategoryShell
	CategoryPython
	CategoryContext
)

// String returns the category display name.
func (c Category) String() string {
	switch c {
	case CategoryMake:
		return "make"
	case CategoryGit:
		return "git"
	case CategoryDocker:
		return "docker"
	case CategoryShell:
		return "shell"
	case CategoryPython:
		return "python"
	case CategoryContext:
		return "context"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// Intent is the canonical identifier of an action, shared across languages.
// The empty Intent marks unrecognized input.
type Intent string

const (
	IntentNone Intent = ""

	IntentBuild      Intent = "build"
	IntentTest       Intent = "test"
	IntentClean      Intent = "clean"
	IntentInstall    Intent = "install"
	IntentMakeTarget Intent = "make.target"

	IntentGitStatus   Intent = "git.status"
	IntentGitCommit   Intent = "git.commit"
	IntentGitPush     Intent = "git.push"
	IntentGitPull     Intent = "git.pull"
	IntentGitCheckout Intent = "git.checkout"

	IntentDockerBuild   Intent = "docker.build"
	IntentDockerRun     Intent = "docker.run"
	IntentDockerStop    Intent = "docker.stop"
	IntentDockerPS      Intent = "docker.ps"
	IntentDockerCompose Intent = "docker.compose"

	IntentShellRun  Intent = "shell.run"
	IntentShellList Intent = "shell.list"
	IntentShellShow Intent = "shell.show"

	IntentPyTest Intent = "py.test"
	IntentPyRun  Intent = "py.run"
	IntentPyPip  Intent = "py.pip"

	IntentNavNext   Intent = "nav.next"
	IntentNavRepeat Intent = "nav.repeat"
	IntentNavBack   Intent = "nav.back"
	IntentYes       Intent = "confirm.yes"
	IntentNo        Intent = "confirm.no"

	IntentHelp    Intent = "meta.help"
	IntentStatus  Intent = "meta.status"
	IntentOptions Intent = "meta.options"
	IntentExport  Intent = "meta.export"
)

// Spec holds the language-independent metadata of an intent.
type Spec struct {
	Category    Category
	TakesParam  bool // trailing text after the matched phrase is a parameter
	Destructive bool // dispatch requires an explicit confirmation first
}

// specs lists every known intent in declaration order. The order is load-
// bearing: the suggestion engine breaks ranking ties by it.
var specs = []struct {
	Intent Intent
	Spec   Spec
}{
	{IntentBuild, Spec{Category: CategoryMake}},
	{IntentTest, Spec{Category: CategoryMake}},
	{IntentClean, Spec{Category: CategoryMake}},
	{IntentInstall, Spec{Category: CategoryMake}},
	{IntentMakeTarget, Spec{Category: CategoryMake, TakesParam: true}},

	{IntentGitStatus, Spec{Category: CategoryGit}},
	{IntentGitCommit, Spec{Category: CategoryGit, TakesParam: true}},
	{IntentGitPush, Spec{Category: CategoryGit, Destructive: true}},
	{IntentGitPull, Spec{Category: CategoryGit}},
	{IntentGitCheckout, Spec{Category: CategoryGit, TakesParam: true}},

	{IntentDockerBuild, Spec{Category: CategoryDocker, TakesParam: true}},
	{IntentDockerRun, Spec{Category: CategoryDocker, TakesParam: true}},
	{IntentDockerStop, Spec{Category: CategoryDocker, TakesParam: true, Destructive: true}},
	{IntentDockerPS, Spec{Category: CategoryDocker}},
	{IntentDockerCompose, Spec{Category: CategoryDocker, TakesParam: true}},

	{IntentShellRun, Spec{Category: CategoryShell, TakesParam: true, Destructive: true}},
	{IntentShellList, Spec{Category: CategoryShell}},
	{IntentShellShow, Spec{Category: CategoryShell, TakesParam: true}},

	{IntentPyTest, Spec{Category: CategoryPython}},
	{IntentPyRun, Spec{Category: CategoryPython, TakesParam: true}},
	{IntentPyPip, Spec{Category: CategoryPython, TakesParam: true}},

	{IntentNavNext, Spec{Category: CategoryContext}},
	{IntentNavRepeat, Spec{Category: CategoryContext}},
	{IntentNavBack, Spec{Category: CategoryContext}},
	{IntentYes, Spec{Category: CategoryContext}},
	{IntentNo, Spec{Category: CategoryContext}},

	{IntentHelp, Spec{Category: CategoryContext}},
	{IntentStatus, Spec{Category: CategoryContext}},
	{IntentOptions, Spec{Category: CategoryContext}},
	{IntentExport, Spec{Category: CategoryContext, TakesParam: true}},
}

var (
	registry  map[Intent]Spec
	declOrder map[Intent]int
)

func init() {
	registry = make(map[Intent]Spec, len(specs))
	declOrder = make(map[Intent]int, len(specs))
	for i, s := range specs {
		registry[s.Intent] = s.Spec
		declOrder[s.Intent] = i
	}
}

// Known reports whether the intent is in the registry.
func (i Intent) Known() bool {
	_, ok := registry[i]
	return ok
}

// Category returns the intent's command family, CategoryUnknown for
// unregistered intents.
func (i Intent) Category() Category {
	return registry[i].Category
}

// TakesParam reports whether trailing input text is a parameter payload.
func (i Intent) TakesParam() bool {
	return registry[i].TakesParam
}

// Destructive reports whether dispatch must be confirmation-gated.
func (i Intent) Destructive() bool {
	return registry[i].Destructive
}

// Navigational reports whether the intent only references other turns
// (next/repeat/back, yes/no). Navigational intents always resolve to a
// concrete referent and never become a repeat target themselves.
func (i Intent) Navigational() bool {
	switch i {
	case IntentNavNext, IntentNavRepeat, IntentNavBack, IntentYes, IntentNo:
		return true
	}
	return false
}

// DeclOrder returns the stable declaration index used as a ranking
// tie-breaker. Unregistered intents sort last.
func DeclOrder(i Intent) int {
	if n, ok := declOrder[i]; ok {
		return n
	}
	return len(specs)
}

// All returns every registered intent in declaration order.
func All() []Intent {
	out := make([]Intent, len(specs))
	for i, s := range specs {
		out[i] = s.Intent
	}
	return out
}
