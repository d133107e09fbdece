package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
)

// loadSettings reads the settings file named by --config, or the first one
// found from the project directory. Running without any settings file is fine.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if configPath == "" {
		found, err := entities.FindConfigFile(directory(cmd))
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return entities.NewDefaultSettings(), nil
		}
		configPath = found
	}

	logger.Debugf("Using config file: %s", configPath)

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}
