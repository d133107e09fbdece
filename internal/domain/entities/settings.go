package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is the optional on-disk configuration for bumpit.
type Settings struct {
	Commit   bool                     `yaml:"commit"   toml:"commit"`
	Pristine bool                     `yaml:"pristine" toml:"pristine"`
	Verify   string                   `yaml:"verify"   toml:"verify"`
	Managers map[string]ManagerConfig `yaml:"managers" toml:"managers"`
}

// ManagerConfig holds per-manager settings.
type ManagerConfig struct {
	Enabled    *bool `yaml:"enabled"     toml:"enabled"`
	SelfUpdate *bool `yaml:"self_update" toml:"self_update"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no file is found.
func NewDefaultSettings() *Settings {
	return &Settings{Managers: make(map[string]ManagerConfig)}
}

// NewSettings reads a YAML or TOML settings file, picked by extension.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := NewDefaultSettings()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, settings)
	default:
		err = yaml.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if settings.Managers == nil {
		settings.Managers = make(map[string]ManagerConfig)
	}
	settings.Verify = expandEnv(settings.Verify)

	return settings, nil
}

// IsManagerEnabled reports whether the named manager should run.
// Managers are enabled unless explicitly turned off.
func (s *Settings) IsManagerEnabled(name string) bool {
	cfg, ok := s.Managers[name]
	if !ok || cfg.Enabled == nil {
		return true
	}
	return *cfg.Enabled
}

// IsSelfUpdateEnabled reports whether the named manager may update its own
// pinned version. Enabled unless explicitly turned off.
func (s *Settings) IsSelfUpdateEnabled(name string) bool {
	cfg, ok := s.Managers[name]
	if !ok || cfg.SelfUpdate == nil {
		return true
	}
	return *cfg.SelfUpdate
}

// FindConfigFile searches for a settings file in the project directory, its
// .config directory, then the home directory, and returns the first one found.
func FindConfigFile(dir string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	if dir == "" {
		dir = "."
	}
	locations := []string{
		dir,
		filepath.Join(dir, ".config"),
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".bumpit.yaml",
		".bumpit.yml",
		"bumpit.yaml",
		"bumpit.yml",
		".bumpit.toml",
		"bumpit.toml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv expands ${ENV_VAR} references.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
