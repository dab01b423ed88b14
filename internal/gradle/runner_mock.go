package gradle

import "sync"

// Invocation records one call made through MockRunner.
type Invocation struct {
	Command string
	Dir     string
	Args    []string
	Env     map[string]string
}

// MockRunner is a Runner for tests. Responses are keyed by the first
// argument of the invocation; Default answers anything else.
type MockRunner struct {
	mu          sync.Mutex
	Responses   map[string]*Result
	Default     *Result
	Err         error
	Invocations []Invocation
}

// NewMockRunner creates an empty MockRunner.
func NewMockRunner() *MockRunner {
	return &MockRunner{Responses: make(map[string]*Result)}
}

// Respond registers the output and exit code returned when args[0] == first.
func (m *MockRunner) Respond(first, stdout string, exitCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[first] = &Result{Stdout: stdout, ExitCode: exitCode}
}

// Run records the invocation and returns the registered response.
func (m *MockRunner) Run(command, dir string, args []string, env map[string]string) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Invocations = append(m.Invocations, Invocation{Command: command, Dir: dir, Args: args, Env: env})
	if m.Err != nil {
		return nil, m.Err
	}

	response := m.Default
	if len(args) > 0 {
		if r, ok := m.Responses[args[0]]; ok {
			response = r
		}
	}
	if response == nil {
		response = &Result{}
	}

	result := *response
	result.Command = command
	result.Args = args
	return &result, nil
}

// LastInvocation returns the most recent invocation, or false if none.
func (m *MockRunner) LastInvocation() (Invocation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Invocations) == 0 {
		return Invocation{}, false
	}
	return m.Invocations[len(m.Invocations)-1], true
}
