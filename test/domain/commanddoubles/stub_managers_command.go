//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/bumpit/internal/domain/commands"
	"github.com/rios0rios0/bumpit/internal/domain/entities"
)

// StubManagersCommand is a stub implementation of commands.Managers.
type StubManagersCommand struct {
	Statuses     []commands.ManagerStatus
	LastSettings *entities.Settings
	LastDir      string
}

var _ commands.Managers = (*StubManagersCommand)(nil)

func (s *StubManagersCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	dir string,
) []commands.ManagerStatus {
	s.LastSettings = settings
	s.LastDir = dir
	return s.Statuses
}
