package controllers

import (
	"context"
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/bumpit/internal/domain/commands"
	"github.com/rios0rios0/bumpit/internal/domain/entities"
)

// BumpController handles the root command: bump every detected ecosystem.
type BumpController struct {
	command commands.Bump
	exit    func(code int)
}

// NewBumpController creates a new BumpController.
func NewBumpController(command commands.Bump) *BumpController {
	return &BumpController{command: command, exit: os.Exit}
}

// GetBind returns the Cobra command metadata for the bump controller.
func (it *BumpController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "bumpit",
		Short: "Bump dependency versions across package managers",
		Long: `Detect the dependency managers used by a project (Bundler, Yarn),
pin every outdated top-level dependency to its latest version,
regenerate the lock files, and optionally verify the result and
print a commit message describing what changed.`,
	}
}

// Execute runs a bump with the flags of cmd, falling back to the settings
// file for any flag that was not set explicitly.
func (it *BumpController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Error(err)
		it.exit(1)
		return
	}

	result, err := it.command.Execute(ctx, settings, bumpOptions(cmd, settings))
	if err != nil {
		var exitErr *entities.ExitError
		if errors.As(err, &exitErr) {
			it.exit(exitErr.Code)
			return
		}
		logger.Errorf("Bump failed: %v", err)
		it.exit(1)
		return
	}

	if result.CommitMessage != "" {
		fmt.Fprint(cmd.OutOrStdout(), result.CommitMessage)
	}
}

// AddFlags adds the bump-specific flags to the given Cobra command.
func (it *BumpController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("commit", false, "Print a commit message describing the bumps")
	cmd.Flags().Bool("pristine", false, "Require a working tree without uncommitted changes")
	cmd.Flags().String("verify", "", "Command to verify the bumps (e.g. \"make test\")")
}

// bumpOptions merges explicitly set flags over the settings file.
func bumpOptions(cmd *cobra.Command, settings *entities.Settings) entities.BumpOptions {
	opts := entities.BumpOptions{
		Directory: directory(cmd),
		Commit:    settings.Commit,
		Pristine:  settings.Pristine,
		Verify:    settings.Verify,
	}

	flags := cmd.Flags()
	if flags.Changed("commit") {
		opts.Commit, _ = flags.GetBool("commit")
	}
	if flags.Changed("pristine") {
		opts.Pristine, _ = flags.GetBool("pristine")
	}
	if flags.Changed("verify") {
		opts.Verify, _ = flags.GetString("verify")
	}
	return opts
}

func directory(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("directory")
	if dir == "" {
		return "."
	}
	return dir
}
