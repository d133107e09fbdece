package internal

import (
	"github.com/rios0rios0/bumpit/internal/domain/entities"
	"github.com/rios0rios0/bumpit/internal/infrastructure/controllers"
)

// AppInternal is the assembled application: the root bump controller plus
// the subcommand controllers.
type AppInternal struct {
	bumpController *controllers.BumpController
	controllers    []entities.Controller
}

// NewAppInternal creates the AppInternal from its controllers.
func NewAppInternal(
	bumpController *controllers.BumpController,
	subcommands *[]entities.Controller,
) *AppInternal {
	return &AppInternal{
		bumpController: bumpController,
		controllers:    *subcommands,
	}
}

// GetBumpController returns the controller mounted on the root command.
func (it *AppInternal) GetBumpController() *controllers.BumpController {
	return it.bumpController
}

// GetControllers returns the subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
