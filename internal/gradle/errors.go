package gradle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ErrEmptyOutput is matched by EmptyOutputError. It means Gradle printed
// nothing on stdout, which points at a tooling problem rather than a
// negative answer.
var ErrEmptyOutput = errors.New("gradle produced no output")

// SpawnError is returned when the Gradle command could not be started at all.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// EmptyOutputError reports an invocation whose stdout was empty.
type EmptyOutputError struct {
	Args []string
}

func (e *EmptyOutputError) Error() string {
	if len(e.Args) == 0 {
		return ErrEmptyOutput.Error()
	}
	return fmt.Sprintf("%s (args: %s)", ErrEmptyOutput, shellquote.Join(e.Args...))
}

func (e *EmptyOutputError) Is(target error) bool { return target == ErrEmptyOutput }

// ExitError reports a Gradle invocation that ran but exited non-zero.
type ExitError struct {
	Command  string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("gradle failed with status code %d: %s", e.ExitCode, commandLine(e.Command, e.Args))
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += "\n" + stderr
	}
	return msg
}

// MissingTasksError lists every required task absent from `gradle tasks`.
type MissingTasksError struct {
	Tasks []string
}

func (e *MissingTasksError) Error() string {
	lines := make([]string, 0, len(e.Tasks))
	for _, task := range e.Tasks {
		lines = append(lines, "Could not find task in Gradle project: "+task)
	}
	return strings.Join(lines, "\n")
}

func commandLine(command string, args []string) string {
	return shellquote.Join(append([]string{command}, args...)...)
}
