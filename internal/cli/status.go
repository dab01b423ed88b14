package cli

import (
	"errors"

	"github.com/MythicDrops/semantic-release-sonatype/internal/gradle"
)

// TaskStatus tells whether one publish task exists in the project.
type TaskStatus struct {
	Name    string
	Present bool
}

// Status summarises what the hooks would find in a project.
type Status struct {
	Command     string
	UsesWrapper bool
	Version     string
	Tasks       []TaskStatus
}

// CollectStatus inspects the project without changing anything. Failing
// Gradle invocations are returned as errors.
func CollectStatus(ctx *HookContext) (*Status, error) {
	client := newClient(ctx)
	dir := ctx.Release.Cwd

	command, err := client.Command(dir)
	if err != nil {
		return nil, err
	}
	status := &Status{Command: command, UsesWrapper: gradle.UsesWrapper(command)}

	missing := map[string]bool{}
	if err := client.VerifyPublishTasks(dir); err != nil {
		var missingErr *gradle.MissingTasksError
		if !errors.As(err, &missingErr) {
			return nil, err
		}
		for _, task := range missingErr.Tasks {
			missing[task] = true
		}
	}
	for _, task := range client.PublishTasks() {
		status.Tasks = append(status.Tasks, TaskStatus{Name: task, Present: !missing[task]})
	}

	version, err := client.Version(dir)
	if err != nil {
		return nil, err
	}
	status.Version = version

	return status, nil
}

// Ready reports whether every publish task is present.
func (s *Status) Ready() bool {
	for _, task := range s.Tasks {
		if !task.Present {
			return false
		}
	}
	return true
}

// CurrentVersion returns the version Gradle reports for the project.
func CurrentVersion(ctx *HookContext) (string, error) {
	return newClient(ctx).Version(ctx.Release.Cwd)
}

func newClient(ctx *HookContext) *gradle.Client {
	return gradle.NewClient(ctx.Runner, gradle.Options{
		ExtraTasks: ctx.Config.ExtraPublishTasks,
		Env:        ctx.Release.Env,
	})
}
