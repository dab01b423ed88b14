package gradle

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"sort"
	"strings"
)

// Result is the captured outcome of a single Gradle invocation.
type Result struct {
	Command  string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner runs a command in a directory with the given environment.
// A non-zero exit status is reported in Result, not as an error.
type Runner interface {
	Run(command, dir string, args []string, env map[string]string) (*Result, error)
}

// ExecRunner runs commands as local subprocesses.
type ExecRunner struct{}

// NewRunner returns the default Runner implementation.
func NewRunner() Runner {
	return &ExecRunner{}
}

// Run starts command, waits for it and returns its buffered output.
func (r *ExecRunner) Run(command, dir string, args []string, env map[string]string) (*Result, error) {
	cmd := exec.Command(command, args...)
	cmd.Dir = dir
	if env != nil {
		cmd.Env = EnvList(env)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &Result{
		Command: command,
		Args:    args,
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, &SpawnError{Command: command, Err: err}
	}

	return result, nil
}

// RunTasks resolves the Gradle command for dir and runs it with args.
// Repeated arguments are dropped, keeping the first occurrence.
func RunTasks(runner Runner, dir string, args []string, env map[string]string) (*Result, error) {
	command, err := ResolveCommand(dir)
	if err != nil {
		return nil, err
	}
	return runner.Run(command, dir, DedupeArgs(args), env)
}

// DedupeArgs returns args without repeated values, preserving order.
func DedupeArgs(args []string) []string {
	seen := make(map[string]bool, len(args))
	result := make([]string, 0, len(args))
	for _, arg := range args {
		if seen[arg] {
			continue
		}
		seen[arg] = true
		result = append(result, arg)
	}
	return result
}

// EnvList renders an environment map as sorted KEY=VALUE pairs.
func EnvList(env map[string]string) []string {
	list := make([]string, 0, len(env))
	for key, value := range env {
		list = append(list, key+"="+value)
	}
	sort.Strings(list)
	return list
}

// EnvMap converts KEY=VALUE pairs, such as os.Environ(), into a map.
func EnvMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, pair := range environ {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// ProcessEnv returns the current process environment as a map.
func ProcessEnv() map[string]string {
	return EnvMap(os.Environ())
}
