package bundler

import (
	"regexp"
	"strings"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
)

// outdatedPattern matches one line of `bundle outdated --parseable`, e.g.
// "sqlite3 (newest 2.6.0, installed 2.5.0, requested = 2.5.0)".
var outdatedPattern = regexp.MustCompile(`^(.+) \(newest (.+), installed (.+), requested = (.+)\)$`)

// ParseOutdated extracts the outdated dependencies from the output of
// `bundle outdated --parseable`. Lines that do not match (progress noise,
// blank lines) are skipped. The requested version is the one pinned in the
// Gemfile, so it is what gets replaced.
func ParseOutdated(output string) entities.Outdated {
	outdated := make(entities.Outdated)
	for _, line := range strings.Split(output, "\n") {
		match := outdatedPattern.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if match == nil {
			continue
		}
		outdated.Add(entities.OutdatedDependency{
			Name:           match[1],
			LatestVersion:  match[2],
			CurrentVersion: match[4],
		})
	}
	return outdated
}
