package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/bumpit/internal"
)

func buildRootCommand(appContext *internal.AppInternal) *cobra.Command {
	bumpController := appContext.GetBumpController()
	bind := bumpController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   bind.Use,
		Short: bind.Short,
		Long: bind.Long + `

Usage:
  bumpit                          Bump every detected ecosystem in the current directory
  bumpit --commit                 Also print a commit message for the bumps
  bumpit --pristine --verify "make test"
                                  Refuse a dirty tree, then verify after bumping`,
		Args: cobra.NoArgs,
		Run: func(command *cobra.Command, arguments []string) {
			bumpController.Execute(command, arguments)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP("directory", "C", ".",
		"Project directory to operate in")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	bumpController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext)
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'bumpit': %s", err)
	}
}
