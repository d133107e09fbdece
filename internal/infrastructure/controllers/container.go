package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewBumpController); err != nil {
		return err
	}
	if err := container.Provide(NewManagersController); err != nil {
		return err
	}
	if err := container.Provide(NewVersionController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers for the AppInternal.
// The bump controller is mounted on the root command instead.
func NewControllers(
	managersController *ManagersController,
	versionController *VersionController,
) *[]entities.Controller {
	return &[]entities.Controller{
		managersController,
		versionController,
	}
}
