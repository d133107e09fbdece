package controllers

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/bumpit/internal/domain/commands"
	"github.com/rios0rios0/bumpit/internal/domain/entities"
)

// ManagersController handles the "managers" subcommand.
type ManagersController struct {
	command commands.Managers
	exit    func(code int)
}

// NewManagersController creates a new ManagersController.
func NewManagersController(command commands.Managers) *ManagersController {
	return &ManagersController{command: command, exit: os.Exit}
}

// GetBind returns the Cobra command metadata for the managers controller.
func (it *ManagersController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "managers",
		Short: "List dependency managers and whether they apply",
		Long: `List every supported dependency manager and whether it would run
in the project directory: it must be enabled in the settings, its
executables must be on the PATH, and its manifest and lock file must exist.`,
	}
}

// Execute prints one row per registered manager.
func (it *ManagersController) Execute(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Error(err)
		it.exit(1)
		return
	}

	statuses := it.command.Execute(context.Background(), settings, directory(cmd))

	//nolint:mnd // column padding
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tECOSYSTEM\tENABLED\tVALID")
	for _, status := range statuses {
		fmt.Fprintf(writer, "%s\t%s\t%t\t%t\n", status.Name, status.Label, status.Enabled, status.Valid)
	}
	_ = writer.Flush()
}
