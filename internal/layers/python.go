// ABOUTME: Python command adapter: pytest, script execution and pip installs
// ABOUTME: against the project's interpreter.

package layers

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mauromedda/text2dsl-go/internal/dsl"
)

type pythonLayer struct {
	dir string
}

// interpreter picks python3 when present, falling back to python.
func (p *pythonLayer) interpreter() string {
	if _, err := exec.LookPath("python3"); err == nil {
		return "python3"
	}
	return "python"
}

func (p *pythonLayer) Dispatch(ctx context.Context, intent dsl.Intent, param string) dsl.Outcome {
	py := p.interpreter()
	switch intent {
	case dsl.IntentPyTest:
		return run(ctx, p.dir, py, "-m", "pytest")
	case dsl.IntentPyRun:
		if param == "" {
			return dsl.Failed("run needs a script name", 2)
		}
		argv := append([]string{py}, strings.Fields(param)...)
		return run(ctx, p.dir, argv...)
	case dsl.IntentPyPip:
		if param == "" {
			return dsl.Failed("pip needs a package name", 2)
		}
		argv := append([]string{py, "-m", "pip", "install"}, strings.Fields(param)...)
		return run(ctx, p.dir, argv...)
	}
	return dsl.Failed(fmt.Sprintf("python layer cannot handle %s", intent), 2)
}
