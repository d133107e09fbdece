package repositories

import (
	"context"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
)

// ManagerRepository abstracts a dependency ecosystem (Bundler, Yarn, etc.).
// Each implementation owns the full bump cycle for its ecosystem: detecting
// whether it applies, finding outdated dependencies, rewriting the manifest,
// and regenerating the lock file. Implementations memoize their outdated
// query so that Bump and Message observe the same snapshot.
type ManagerRepository interface {
	// Name returns the manager identifier (e.g. "bundler", "yarn").
	Name() string

	// Label returns the ecosystem name used in messages (e.g. "Ruby").
	Label() string

	// Valid returns true when every required executable is on the PATH
	// and every required marker file exists in the project directory.
	Valid() bool

	// Bump applies the latest versions of all outdated dependencies. It is a
	// no-op, with no filesystem writes, when nothing is outdated.
	Bump(ctx context.Context) error

	// Message summarizes what Bump changed, or returns "" when nothing was bumped.
	Message(ctx context.Context) (string, error)
}

// ManagerFactory builds a manager bound to a project directory.
type ManagerFactory func(dir string, settings *entities.Settings) ManagerRepository
