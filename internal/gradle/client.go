package gradle

import (
	"errors"
)

// DefaultPublishTasks must exist in every project published by this plugin.
var DefaultPublishTasks = []string{"publishToSonatype", "closeAndReleaseRepository"}

// Logger receives a line for each Gradle invocation.
type Logger interface {
	Infof(format string, args ...interface{})
}

// Options configures a Client.
type Options struct {
	// RequiredTasks defaults to DefaultPublishTasks when empty.
	RequiredTasks []string
	// ExtraTasks are required and run in addition to RequiredTasks.
	ExtraTasks []string
	// Env is passed to Gradle unmodified. Nil inherits the process environment.
	Env map[string]string
}

// Client answers release questions about a Gradle project.
type Client struct {
	runner  Runner
	options Options
	logger  Logger
}

// NewClient creates a Client that runs Gradle through runner.
func NewClient(runner Runner, options Options) *Client {
	if runner == nil {
		runner = NewRunner()
	}
	if len(options.RequiredTasks) == 0 {
		options.RequiredTasks = DefaultPublishTasks
	}
	return &Client{runner: runner, options: options}
}

// SetLogger attaches a logger that is told about every invocation.
func (c *Client) SetLogger(logger Logger) {
	c.logger = logger
}

// PublishTasks returns the tasks run by Publish, extra tasks first.
func (c *Client) PublishTasks() []string {
	tasks := make([]string, 0, len(c.options.ExtraTasks)+len(c.options.RequiredTasks))
	tasks = append(tasks, c.options.ExtraTasks...)
	tasks = append(tasks, c.options.RequiredTasks...)
	return DedupeArgs(tasks)
}

// Command returns the command that would be used to run Gradle in dir.
func (c *Client) Command(dir string) (string, error) {
	return ResolveCommand(dir)
}

// VerifyPublishTasks fails with a *MissingTasksError naming every publish
// task absent from `gradle tasks`. A failing task listing is returned as is
// and is never mistaken for missing tasks.
func (c *Client) VerifyPublishTasks(dir string) error {
	result, err := c.run(dir, "tasks", "-q")
	if err != nil {
		return err
	}

	missing, err := MissingTasks(result.Stdout, c.PublishTasks())
	if err != nil {
		return withArgs(err, result.Args)
	}
	if len(missing) > 0 {
		return &MissingTasksError{Tasks: missing}
	}
	return nil
}

// Version returns the project version reported by `gradle properties`, or
// "" when the report has no version line.
func (c *Client) Version(dir string) (string, error) {
	result, err := c.run(dir, "properties", "-q")
	if err != nil {
		return "", err
	}

	version, err := ExtractVersion(result.Stdout)
	if err != nil {
		return "", withArgs(err, result.Args)
	}
	return version, nil
}

// Publish runs the publish tasks.
func (c *Client) Publish(dir string) error {
	args := append(c.PublishTasks(), "-q")
	_, err := c.run(dir, args...)
	return err
}

// run invokes Gradle and turns a non-zero exit status into an *ExitError.
func (c *Client) run(dir string, args ...string) (*Result, error) {
	runner := c.runner
	if c.logger != nil {
		runner = &loggingRunner{Runner: runner, logger: c.logger}
	}

	result, err := RunTasks(runner, dir, args, c.options.Env)
	if err != nil {
		return nil, err
	}
	if result.ExitCode != 0 {
		return nil, &ExitError{
			Command:  result.Command,
			Args:     result.Args,
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
		}
	}
	return result, nil
}

// loggingRunner reports each command line before running it.
type loggingRunner struct {
	Runner
	logger Logger
}

func (r *loggingRunner) Run(command, dir string, args []string, env map[string]string) (*Result, error) {
	r.logger.Infof("Running %s", commandLine(command, args))
	return r.Runner.Run(command, dir, args, env)
}

func withArgs(err error, args []string) error {
	var empty *EmptyOutputError
	if errors.As(err, &empty) {
		empty.Args = args
	}
	return err
}
