package bundler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
	"github.com/rios0rios0/bumpit/internal/domain/repositories"
	"github.com/rios0rios0/bumpit/internal/infrastructure/repositories/command"
)

const (
	managerName  = "bundler"
	managerLabel = "Ruby"

	executable   = "bundle"
	gemfileName  = "Gemfile"
	lockfileName = "Gemfile.lock"
)

// External commands, as argv slices.
//
//nolint:gochecknoglobals // command table
var (
	outdatedCommand       = []string{"bundle", "outdated", "--only-explicit", "--parseable"}
	updateCommand         = []string{"bundle", "update", "--all"}
	bundlerVersionCommand = []string{"bundle", "info", "bundler", "--version"}
	bundlerUpdateCommand  = []string{"bundle", "update", "--bundler"}
	gemInfoCommand        = []string{"gem", "info", "--exact", "--remote", "--no-prerelease", "--no-verbose", "bundler"}
)

// gemInfoPattern extracts the version from `gem info` output, e.g. "bundler (2.7.1)".
var gemInfoPattern = regexp.MustCompile(`bundler \(([^)]+)\)`)

// ManagerRepository bumps the explicit gems of a Gemfile. The outdated query,
// the Gemfile contents, and the Bundler self-update check are each computed
// at most once per instance.
type ManagerRepository struct {
	dir        string
	runner     repositories.CommandRepository
	selfUpdate bool

	outdated      entities.Outdated
	contents      *string
	updateBundler *bool
}

var _ repositories.ManagerRepository = (*ManagerRepository)(nil)

// NewManagerRepository creates a Bundler manager for the project in dir.
func NewManagerRepository(
	dir string,
	runner repositories.CommandRepository,
	selfUpdate bool,
) *ManagerRepository {
	return &ManagerRepository{
		dir:        dir,
		runner:     runner,
		selfUpdate: selfUpdate,
	}
}

func (it *ManagerRepository) Name() string { return managerName }

func (it *ManagerRepository) Label() string { return managerLabel }

// Valid returns true if `bundle` is on the PATH and both Gemfile and
// Gemfile.lock exist.
func (it *ManagerRepository) Valid() bool {
	if !it.runner.LookPath(executable) {
		return false
	}
	for _, name := range []string{gemfileName, lockfileName} {
		if _, err := os.Stat(filepath.Join(it.dir, name)); err != nil {
			return false
		}
	}
	return true
}

// Bump updates Bundler itself when a newer release exists, then pins every
// outdated gem to its newest version and regenerates Gemfile.lock.
func (it *ManagerRepository) Bump(ctx context.Context) error {
	if err := it.bumpBundler(ctx); err != nil {
		return err
	}

	outdated, err := it.findOutdated(ctx)
	if err != nil {
		return err
	}
	if len(outdated) == 0 {
		logger.Infof("[%s] All gems are up to date", managerName)
		return nil
	}

	logger.Infof("[%s] Bumping %s", managerName, entities.ToSentence(outdated.Names()))

	if err = it.writeGemfile(outdated); err != nil {
		return err
	}
	return it.bundleUpdate(ctx)
}

// Message lists the bumped gems, plus "bundler" when it was updated.
func (it *ManagerRepository) Message(ctx context.Context) (string, error) {
	outdated, err := it.findOutdated(ctx)
	if err != nil {
		return "", err
	}

	names := outdated.Names()
	updateBundler, err := it.shouldUpdateBundler(ctx)
	if err != nil {
		return "", err
	}
	if updateBundler {
		names = append(names, managerName)
	}

	if len(names) == 0 {
		return "", nil
	}
	slices.Sort(names)
	return fmt.Sprintf("Updates %s in %s.", entities.ToSentence(names), managerLabel), nil
}

func (it *ManagerRepository) findOutdated(ctx context.Context) (entities.Outdated, error) {
	if it.outdated != nil {
		return it.outdated, nil
	}

	result, err := it.output(ctx, outdatedCommand)
	if err != nil {
		return nil, err
	}

	it.outdated = ParseOutdated(result.Stdout)
	logger.Debugf("[%s] Found %d outdated gems", managerName, len(it.outdated))
	return it.outdated, nil
}

func (it *ManagerRepository) readGemfile() (string, error) {
	if it.contents != nil {
		return *it.contents, nil
	}

	data, err := os.ReadFile(filepath.Join(it.dir, gemfileName))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", gemfileName, err)
	}

	contents := string(data)
	it.contents = &contents
	return contents, nil
}

func (it *ManagerRepository) writeGemfile(outdated entities.Outdated) error {
	contents, err := it.readGemfile()
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(it.dir, gemfileName), PatchGemfile(contents, outdated))
}

// bundleUpdate regenerates Gemfile.lock. Each run is a fresh `bundle`
// process, so no resolution state from the outdated query carries over.
func (it *ManagerRepository) bundleUpdate(ctx context.Context) error {
	return command.Silence(func() error {
		_, err := it.output(ctx, updateCommand)
		return err
	})
}

func (it *ManagerRepository) bumpBundler(ctx context.Context) error {
	updateBundler, err := it.shouldUpdateBundler(ctx)
	if err != nil || !updateBundler {
		return err
	}

	logger.Infof("[%s] Updating Bundler in %s", managerName, lockfileName)
	_, err = it.output(ctx, bundlerUpdateCommand)
	return err
}

// shouldUpdateBundler compares the newest published Bundler against the one
// the project runs with.
func (it *ManagerRepository) shouldUpdateBundler(ctx context.Context) (bool, error) {
	if !it.selfUpdate {
		return false, nil
	}
	if it.updateBundler != nil {
		return *it.updateBundler, nil
	}

	info, err := it.output(ctx, gemInfoCommand)
	if err != nil {
		return false, err
	}
	current, err := it.output(ctx, bundlerVersionCommand)
	if err != nil {
		return false, err
	}

	latest := ""
	if match := gemInfoPattern.FindStringSubmatch(info.Stdout); match != nil {
		latest = match[1]
	}

	updateBundler := IsNewerVersion(strings.TrimSpace(current.Stdout), latest)
	logger.Debugf(
		"[%s] Bundler installed %q, latest %q (update needed: %v)",
		managerName, strings.TrimSpace(current.Stdout), latest, updateBundler,
	)

	it.updateBundler = &updateBundler
	return updateBundler, nil
}

func (it *ManagerRepository) output(ctx context.Context, argv []string) (*entities.CommandResult, error) {
	return it.runner.Output(ctx, it.dir, argv[0], argv[1:]...)
}

// IsNewerVersion returns true if latest is strictly greater than current.
// An empty version counts as 0; anything that is not a version never wins.
func IsNewerVersion(current, latest string) bool {
	currentVer := normalizeVersion(current)
	latestVer := normalizeVersion(latest)

	if !semver.IsValid(currentVer) || !semver.IsValid(latestVer) {
		return false
	}
	return semver.Compare(latestVer, currentVer) > 0
}

// normalizeVersion ensures version has a 'v' prefix for semver compatibility.
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return "v0"
	}
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
