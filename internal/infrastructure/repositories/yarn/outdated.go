package yarn

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
)

// outdatedEntry is one value of the `npm outdated --json` object.
type outdatedEntry struct {
	Current string `json:"current"`
	Wanted  string `json:"wanted"` // unused: bumps always target latest
	Latest  string `json:"latest"`
}

// ParseOutdated decodes the output of `npm outdated --json`, an object keyed
// by package name. Empty output means nothing is outdated.
func ParseOutdated(output string) (entities.Outdated, error) {
	outdated := make(entities.Outdated)
	if strings.TrimSpace(output) == "" {
		return outdated, nil
	}

	var entries map[string]outdatedEntry
	if err := json.Unmarshal([]byte(output), &entries); err != nil {
		return nil, fmt.Errorf("failed to parse npm outdated output: %w", err)
	}

	for name, entry := range entries {
		outdated.Add(entities.OutdatedDependency{
			Name:           name,
			CurrentVersion: entry.Current,
			LatestVersion:  entry.Latest,
		})
	}
	return outdated, nil
}
