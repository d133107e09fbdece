package commands

import (
	"context"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
	infraRepos "github.com/rios0rios0/bumpit/internal/infrastructure/repositories"
)

// ManagerStatus describes a registered manager relative to a project.
type ManagerStatus struct {
	Name    string
	Label   string
	Enabled bool
	Valid   bool
}

// Managers is the interface for the managers command.
type Managers interface {
	Execute(ctx context.Context, settings *entities.Settings, dir string) []ManagerStatus
}

// ManagersCommand reports which managers would take part in a bump.
type ManagersCommand struct {
	managerRegistry *infraRepos.ManagerRegistry
}

// NewManagersCommand creates a new ManagersCommand.
func NewManagersCommand(managerRegistry *infraRepos.ManagerRegistry) *ManagersCommand {
	return &ManagersCommand{managerRegistry: managerRegistry}
}

// Execute returns the status of every registered manager, in registry order.
func (it *ManagersCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	dir string,
) []ManagerStatus {
	managers := it.managerRegistry.All(dir, settings)
	statuses := make([]ManagerStatus, 0, len(managers))
	for _, manager := range managers {
		statuses = append(statuses, ManagerStatus{
			Name:    manager.Name(),
			Label:   manager.Label(),
			Enabled: settings.IsManagerEnabled(manager.Name()),
			Valid:   manager.Valid(),
		})
	}
	return statuses
}
