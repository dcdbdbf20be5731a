// ABOUTME: Git command adapter: status/commit/push/pull/checkout plus a
// ABOUTME: cheap branch read from .git/HEAD for status lines.

package layers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mauromedda/text2dsl-go/internal/dsl"
)

type gitLayer struct {
	dir string
}

// Branch reads the current branch name from .git/HEAD without invoking
// git. It returns "" outside a repository or on a detached HEAD.
func (g *gitLayer) Branch() string {
	data, err := os.ReadFile(filepath.Join(g.dir, ".git", "HEAD"))
	if err != nil {
		return ""
	}
	head := strings.TrimSpace(string(data))
	const prefix = "ref: refs/heads/"
	if !strings.HasPrefix(head, prefix) {
		return ""
	}
	return strings.TrimPrefix(head, prefix)
}

func (g *gitLayer) Dispatch(ctx context.Context, intent dsl.Intent, param string) dsl.Outcome {
	switch intent {
	case dsl.IntentGitStatus:
		out := run(ctx, g.dir, "git", "status", "--short", "--branch")
		if out.Success && g.Branch() != "" {
			out.Message = "on " + g.Branch() + "\n" + out.Message
		}
		return out
	case dsl.IntentGitCommit:
		if param == "" {
			return dsl.Failed("commit needs a message", 2)
		}
		return run(ctx, g.dir, "git", "commit", "-am", param)
	case dsl.IntentGitPush:
		return run(ctx, g.dir, "git", "push")
	case dsl.IntentGitPull:
		return run(ctx, g.dir, "git", "pull", "--ff-only")
	case dsl.IntentGitCheckout:
		if param == "" {
			return dsl.Failed("checkout needs a branch name", 2)
		}
		return run(ctx, g.dir, "git", "checkout", param)
	}
	return dsl.Failed(fmt.Sprintf("git layer cannot handle %s", intent), 2)
}
