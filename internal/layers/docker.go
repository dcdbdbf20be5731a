// ABOUTME: Docker command adapter: image build/run/stop, container listing
// ABOUTME: and compose orchestration against the local docker CLI.

package layers

import (
	"context"
	"fmt"
	"strings"

	"github.com/mauromedda/text2dsl-go/internal/dsl"
)

type dockerLayer struct {
	dir string
}

// composeFile returns the first compose manifest present in the working
// directory, "" when none exists.
func (d *dockerLayer) composeFile() string {
	for _, name := range composeFiles {
		if exists(d.dir, name) {
			return name
		}
	}
	return ""
}

func (d *dockerLayer) Dispatch(ctx context.Context, intent dsl.Intent, param string) dsl.Outcome {
	switch intent {
	case dsl.IntentDockerBuild:
		tag := param
		if tag == "" {
			tag = "app:latest"
		}
		return run(ctx, d.dir, "docker", "build", "-t", tag, ".")
	case dsl.IntentDockerRun:
		if param == "" {
			return dsl.Failed("run needs an image name", 2)
		}
		argv := append([]string{"docker", "run", "--rm"}, strings.Fields(param)...)
		return run(ctx, d.dir, argv...)
	case dsl.IntentDockerStop:
		if param == "" {
			return dsl.Failed("stop needs a container name", 2)
		}
		return run(ctx, d.dir, "docker", "stop", param)
	case dsl.IntentDockerPS:
		return run(ctx, d.dir, "docker", "ps", "--format", "table {{.Names}}\t{{.Image}}\t{{.Status}}")
	case dsl.IntentDockerCompose:
		file := d.composeFile()
		if file == "" {
			return dsl.Failed("no compose file found", 2)
		}
		action := param
		if action == "" {
			action = "up -d"
		}
		argv := append([]string{"docker", "compose", "-f", file}, strings.Fields(action)...)
		return run(ctx, d.dir, argv...)
	}
	return dsl.Failed(fmt.Sprintf("docker layer cannot handle %s", intent), 2)
}
