// ABOUTME: Shared subprocess runner for all command layers.
// ABOUTME: Argv-only execution, capped combined output, outcome conversion.

package layers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/mauromedda/text2dsl-go/internal/dsl"
	"github.com/mauromedda/text2dsl-go/internal/log"
)

// maxOutput caps combined stdout+stderr captured from a dispatch.
const maxOutput = 1 << 20 // 1MB

var errOutputLimitExceeded = errors.New("output limit exceeded")

// limitedWriter stops accepting data after limit bytes so a chatty
// subprocess cannot balloon the turn outcome.
type limitedWriter struct {
	w        io.Writer
	limit    int
	written  int
	exceeded bool
}

func (lw *limitedWriter) Write(p []byte) (int, error) {
	remaining := lw.limit - lw.written
	if remaining <= 0 {
		lw.exceeded = true
		return 0, errOutputLimitExceeded
	}
	if len(p) > remaining {
		n, err := lw.w.Write(p[:remaining])
		lw.written += n
		lw.exceeded = true
		if err != nil {
			return n, err
		}
		return n, errOutputLimitExceeded
	}
	n, err := lw.w.Write(p)
	lw.written += n
	return n, err
}

// run executes an argv in dir and converts the result to an Outcome.
// Command layers never interpret shell syntax; arguments pass through
// verbatim. A cancelled context yields a cancelled outcome.
func run(ctx context.Context, dir string, argv ...string) dsl.Outcome {
	if len(argv) == 0 {
		return dsl.Failed("empty command", -1)
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return dsl.Failed(fmt.Sprintf("%s not found on PATH", argv[0]), -1)
	}

	log.Debug("exec: dir=%s argv=%v", dir, argv)

	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	cmd.Dir = dir

	var buf bytes.Buffer
	lw := &limitedWriter{w: &buf, limit: maxOutput}
	cmd.Stdout = lw
	cmd.Stderr = lw

	err = cmd.Run()
	output := TruncatePreview(buf.String(), previewLimit)
	if lw.exceeded {
		output += "\n[output truncated]"
	}

	if ctx.Err() != nil {
		return dsl.CancelledOutcome()
	}
	if err != nil && lw.exceeded {
		// Hitting the cap aborts the output copy and can tear down the
		// pipe under the subprocess. That is expected for chatty commands;
		// only a real non-zero exit still counts as a failure.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || exitErr.ExitCode() < 0 {
			err = nil
		}
	}
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		if output == "" {
			output = err.Error()
		}
		return dsl.Failed(output, exitCode)
	}
	if output == "" {
		output = "OK"
	}
	return dsl.Succeeded(output)
}
