package shipflow

import (
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner executes external commands. The pipeline uses it to
// invoke the style checker; tests substitute MockRunner.
type CommandRunner interface {
	// Run executes the command in dir and returns its combined output.
	Run(dir string, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner creates a runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements CommandRunner.
func (r *ExecRunner) Run(dir string, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(out))
	if err != nil {
		return output, &CommandError{
			Command: name,
			Args:    args,
			Output:  output,
			Err:     err,
		}
	}
	return output, nil
}

// CommandError wraps a failed command with its captured output so the
// diagnostic text reaches the process log.
type CommandError struct {
	Command string
	Args    []string
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Output != "" {
		return e.Output
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("command %s failed", e.Command)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// MockCall records one MockRunner invocation.
type MockCall struct {
	Dir  string
	Name string
	Args []string
}

// MockRunner is a mock CommandRunner for testing. It records every
// invocation so tests can assert which commands ran.
type MockRunner struct {
	RunFunc func(dir string, name string, args ...string) (string, error)
	Calls   []MockCall
}

// Run implements CommandRunner.
func (m *MockRunner) Run(dir string, name string, args ...string) (string, error) {
	m.Calls = append(m.Calls, MockCall{Dir: dir, Name: name, Args: args})
	if m.RunFunc != nil {
		return m.RunFunc(dir, name, args...)
	}
	return "", nil
}
