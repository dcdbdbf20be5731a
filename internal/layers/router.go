// ABOUTME: Router fans intents out to the per-category command adapters and
// ABOUTME: rejects categories the probed project does not support.

package layers

import (
	"context"
	"fmt"

	"github.com/mauromedda/text2dsl-go/internal/dsl"
	"github.com/mauromedda/text2dsl-go/internal/log"
)

// Router dispatches command intents to category adapters for one working
// directory. Context intents never reach the router.
type Router struct {
	dir       string
	available map[dsl.Category]bool

	make   *makeLayer
	git    *gitLayer
	docker *dockerLayer
	shell  *shellLayer
	python *pythonLayer
}

// NewRouter probes dir and wires the adapters for it.
func NewRouter(dir string) *Router {
	r := &Router{
		dir:       dir,
		available: make(map[dsl.Category]bool),
		make:      &makeLayer{dir: dir},
		git:       &gitLayer{dir: dir},
		docker:    &dockerLayer{dir: dir},
		shell:     &shellLayer{dir: dir},
		python:    &pythonLayer{dir: dir},
	}
	for _, c := range Probe(dir) {
		r.available[c] = true
	}
	return r
}

// Available returns the probed categories in enum order.
func (r *Router) Available() []dsl.Category {
	var cats []dsl.Category
	for _, c := range []dsl.Category{
		dsl.CategoryMake, dsl.CategoryGit, dsl.CategoryDocker,
		dsl.CategoryShell, dsl.CategoryPython,
	} {
		if r.available[c] {
			cats = append(cats, c)
		}
	}
	return cats
}

// Supports reports whether the category applies to the working directory.
func (r *Router) Supports(c dsl.Category) bool {
	return r.available[c]
}

// MakeTargets exposes the Makefile targets for status and help output.
func (r *Router) MakeTargets() []string {
	return r.make.Targets()
}

// GitBranch exposes the current branch, "" outside a repository.
func (r *Router) GitBranch() string {
	return r.git.Branch()
}

// Dispatch routes intent to its category adapter. Intents whose category
// the project lacks fail without executing anything.
func (r *Router) Dispatch(ctx context.Context, intent dsl.Intent, param string) dsl.Outcome {
	cat := intent.Category()
	log.Debug("dispatch intent=%s category=%s param=%q", intent, cat, param)
	if !r.available[cat] {
		return dsl.Failed(fmt.Sprintf("%s commands are not available here", cat), 2)
	}
	switch cat {
	case dsl.CategoryMake:
		return r.make.Dispatch(ctx, intent, param)
	case dsl.CategoryGit:
		return r.git.Dispatch(ctx, intent, param)
	case dsl.CategoryDocker:
		return r.docker.Dispatch(ctx, intent, param)
	case dsl.CategoryShell:
		return r.shell.Dispatch(ctx, intent, param)
	case dsl.CategoryPython:
		return r.python.Dispatch(ctx, intent, param)
	}
	return dsl.Failed(fmt.Sprintf("no adapter for %s", intent), 2)
}
