// Package mocks provides test doubles for the ports interfaces.
package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rigup/rigup/internal/ports"
)

// CommandRunner is a scripted test double for ports.CommandRunner.
// Register expected commands with AddResult/AddError; unexpected commands
// fail loudly so tests catch unintended invocations.
type CommandRunner struct {
	mu      sync.Mutex
	results map[string]ports.CommandResult
	errors  map[string]error
	calls   []ports.CommandCall
}

// NewCommandRunner creates an empty CommandRunner double.
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{
		results: make(map[string]ports.CommandResult),
		errors:  make(map[string]error),
	}
}

// AddResult scripts the result for a command invocation.
func (m *CommandRunner) AddResult(command string, args []string, result ports.CommandResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[callKey(command, args)] = result
}

// AddError scripts a runner-level error for a command invocation.
func (m *CommandRunner) AddError(command string, args []string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[callKey(command, args)] = err
}

// Run returns the scripted result and records the call.
func (m *CommandRunner) Run(_ context.Context, command string, args ...string) (ports.CommandResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, ports.CommandCall{Command: command, Args: args})

	key := callKey(command, args)
	if err, ok := m.errors[key]; ok {
		return ports.CommandResult{}, err
	}
	if result, ok := m.results[key]; ok {
		return result, nil
	}
	return ports.CommandResult{}, fmt.Errorf("unexpected command: %s %v", command, args)
}

// Calls returns a copy of all recorded invocations in order.
func (m *CommandRunner) Calls() []ports.CommandCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]ports.CommandCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// CallCount returns how many times the exact invocation was made.
func (m *CommandRunner) CallCount(command string, args ...string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	want := callKey(command, args)
	for _, call := range m.calls {
		if callKey(call.Command, call.Args) == want {
			count++
		}
	}
	return count
}

func callKey(command string, args []string) string {
	return command + "\x00" + strings.Join(args, "\x00")
}

var _ ports.CommandRunner = (*CommandRunner)(nil)
