package yarn

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
	"github.com/rios0rios0/bumpit/internal/domain/repositories"
)

const (
	managerName  = "yarn"
	managerLabel = "JavaScript"

	manifestName = "package.json"
	lockfileName = "yarn.lock"
)

// External commands, as argv slices.
//
//nolint:gochecknoglobals // command table
var (
	executables     = []string{"npm", "yarn"}
	outdatedCommand = []string{"npm", "outdated", "--json"}
	upgradeCommand  = []string{"yarn", "up", "--exact", "*"}
	installCommand  = []string{"yarn"}
)

// ManagerRepository bumps package.json dependencies with Yarn. `yarn up`
// rewrites package.json itself, so there is no manual manifest patching.
type ManagerRepository struct {
	dir    string
	runner repositories.CommandRepository

	outdated entities.Outdated
}

var _ repositories.ManagerRepository = (*ManagerRepository)(nil)

// NewManagerRepository creates a Yarn manager for the project in dir.
func NewManagerRepository(dir string, runner repositories.CommandRepository) *ManagerRepository {
	return &ManagerRepository{dir: dir, runner: runner}
}

func (it *ManagerRepository) Name() string { return managerName }

func (it *ManagerRepository) Label() string { return managerLabel }

// Valid returns true if npm and yarn are on the PATH and both package.json
// and yarn.lock exist.
func (it *ManagerRepository) Valid() bool {
	for _, name := range executables {
		if !it.runner.LookPath(name) {
			return false
		}
	}
	for _, name := range []string{manifestName, lockfileName} {
		if _, err := os.Stat(filepath.Join(it.dir, name)); err != nil {
			return false
		}
	}
	return true
}

// Bump upgrades every dependency to its exact latest version, then
// regenerates yarn.lock from scratch.
func (it *ManagerRepository) Bump(ctx context.Context) error {
	outdated, err := it.findOutdated(ctx)
	if err != nil {
		return err
	}
	if len(outdated) == 0 {
		logger.Infof("[%s] All packages are up to date", managerName)
		return nil
	}

	logger.Infof("[%s] Bumping %s", managerName, entities.ToSentence(outdated.Names()))

	if _, err = it.output(ctx, upgradeCommand); err != nil {
		return err
	}

	lockfile := filepath.Join(it.dir, lockfileName)
	if err = os.Remove(lockfile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", lockfileName, err)
	}

	_, err = it.output(ctx, installCommand)
	return err
}

// Message lists the bumped packages.
func (it *ManagerRepository) Message(ctx context.Context) (string, error) {
	outdated, err := it.findOutdated(ctx)
	if err != nil {
		return "", err
	}
	if len(outdated) == 0 {
		return "", nil
	}
	return fmt.Sprintf("Updates %s in %s.", entities.ToSentence(outdated.Names()), managerLabel), nil
}

func (it *ManagerRepository) findOutdated(ctx context.Context) (entities.Outdated, error) {
	if it.outdated != nil {
		return it.outdated, nil
	}

	result, err := it.output(ctx, outdatedCommand)
	if err != nil {
		return nil, err
	}

	outdated, err := ParseOutdated(result.Stdout)
	if err != nil {
		return nil, err
	}

	it.outdated = outdated
	logger.Debugf("[%s] Found %d outdated packages", managerName, len(it.outdated))
	return it.outdated, nil
}

func (it *ManagerRepository) output(ctx context.Context, argv []string) (*entities.CommandResult, error) {
	return it.runner.Output(ctx, it.dir, argv[0], argv[1:]...)
}
