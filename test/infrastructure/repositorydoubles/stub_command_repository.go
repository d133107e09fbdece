//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
	"github.com/rios0rios0/bumpit/internal/domain/repositories"
)

// StubCommandRepository implements repositories.CommandRepository without
// spawning processes. Responses are keyed by the full command line
// ("bundle outdated --parseable").
type StubCommandRepository struct {
	// --- LookPath ---
	Executables map[string]bool // name -> on PATH

	// --- Output ---
	Results   map[string]entities.CommandResult // command line -> result
	OutputErr map[string]error                  // command line -> start failure
	// spy: command lines in call order, with the directory they ran in
	OutputCalls []CommandCall
	// OnOutput, when set, runs before a result is returned (e.g. to touch files).
	OnOutput func(commandLine string)

	// --- Run ---
	RunExitCode int
	RunErr      error
	// spy: command lines passed to Run
	RunCalls []CommandCall
}

// CommandCall records a single command invocation.
type CommandCall struct {
	Dir         string
	CommandLine string
}

var _ repositories.CommandRepository = (*StubCommandRepository)(nil)

func (s *StubCommandRepository) LookPath(name string) bool {
	return s.Executables[name]
}

func (s *StubCommandRepository) Output(
	_ context.Context,
	dir, name string,
	args ...string,
) (*entities.CommandResult, error) {
	commandLine := strings.TrimSpace(name + " " + strings.Join(args, " "))
	s.OutputCalls = append(s.OutputCalls, CommandCall{Dir: dir, CommandLine: commandLine})

	if err, ok := s.OutputErr[commandLine]; ok {
		return nil, err
	}
	if s.OnOutput != nil {
		s.OnOutput(commandLine)
	}

	result := s.Results[commandLine]
	return &result, nil
}

func (s *StubCommandRepository) Run(_ context.Context, dir, commandLine string) (int, error) {
	s.RunCalls = append(s.RunCalls, CommandCall{Dir: dir, CommandLine: commandLine})
	return s.RunExitCode, s.RunErr
}

// CommandLines returns the command lines passed to Output, in order.
func (s *StubCommandRepository) CommandLines() []string {
	lines := make([]string, 0, len(s.OutputCalls))
	for _, call := range s.OutputCalls {
		lines = append(lines, call.CommandLine)
	}
	return lines
}

// Ran reports whether commandLine was passed to Output.
func (s *StubCommandRepository) Ran(commandLine string) bool {
	for _, call := range s.OutputCalls {
		if call.CommandLine == commandLine {
			return true
		}
	}
	return false
}
