//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/bumpit/internal/domain/repositories"
)

// StubWorktreeRepository implements repositories.WorktreeRepository with a
// fixed answer.
type StubWorktreeRepository struct {
	Pristine bool
	Err      error
	// spy: directories checked
	CheckedDirs []string
}

var _ repositories.WorktreeRepository = (*StubWorktreeRepository)(nil)

func (s *StubWorktreeRepository) IsPristine(_ context.Context, dir string) (bool, error) {
	s.CheckedDirs = append(s.CheckedDirs, dir)
	return s.Pristine, s.Err
}
