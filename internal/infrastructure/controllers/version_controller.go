package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
)

// Version is overridden at build time with -ldflags "-X ...controllers.Version=x.y.z".
var Version = "dev" //nolint:gochecknoglobals // set by the linker

// VersionController handles the "version" subcommand.
type VersionController struct{}

// NewVersionController creates a new VersionController.
func NewVersionController() *VersionController {
	return &VersionController{}
}

// GetBind returns the Cobra command metadata for the version controller.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "version",
		Short: "Print the bumpit version",
	}
}

// Execute prints the version.
func (it *VersionController) Execute(cmd *cobra.Command, _ []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "bumpit %s\n", Version)
}
