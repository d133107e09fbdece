//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/bumpit/internal/domain/commands"
	"github.com/rios0rios0/bumpit/internal/domain/entities"
)

// StubBumpCommand is a stub implementation of commands.Bump.
type StubBumpCommand struct {
	ExecuteCallCount int
	Result           *entities.BumpResult
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         entities.BumpOptions
}

var _ commands.Bump = (*StubBumpCommand)(nil)

func (s *StubBumpCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts entities.BumpOptions,
) (*entities.BumpResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if s.Result == nil {
		return &entities.BumpResult{}, nil
	}
	return s.Result, nil
}
