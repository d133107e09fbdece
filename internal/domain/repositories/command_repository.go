package repositories

import (
	"context"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
)

// CommandRepository is the narrow capability managers and the driver use to
// reach external tools. It never interprets exit codes: a non-zero exit is
// reported in the result, and only a failure to start the process is an error.
type CommandRepository interface {
	// LookPath reports whether the executable is resolvable on the PATH.
	LookPath(name string) bool

	// Output runs name with args in dir and captures its stdout and stderr.
	Output(ctx context.Context, dir, name string, args ...string) (*entities.CommandResult, error)

	// Run executes a shell command line in dir with the caller's standard
	// streams attached and returns its exit code.
	Run(ctx context.Context, dir, commandLine string) (int, error)
}
