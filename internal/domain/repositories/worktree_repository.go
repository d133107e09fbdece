package repositories

import "context"

// WorktreeRepository inspects the version-control state of a project.
type WorktreeRepository interface {
	// IsPristine returns true when the working tree has no uncommitted changes.
	IsPristine(ctx context.Context, dir string) (bool, error)
}
