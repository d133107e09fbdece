package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
	"github.com/rios0rios0/bumpit/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/bumpit/internal/infrastructure/repositories"
)

const (
	pristineWarning = "Working directory must be pristine to run."
	verifyWarning   = "The `%s` verification command failed."
)

// Bump is the interface for the bump command.
type Bump interface {
	Execute(ctx context.Context, settings *entities.Settings, opts entities.BumpOptions) (*entities.BumpResult, error)
}

// BumpCommand drives a bump run through four stages, each a precondition
// of the next: pristine check -> bump -> verify -> commit message.
type BumpCommand struct {
	managerRegistry *infraRepos.ManagerRegistry
	worktree        repositories.WorktreeRepository
	runner          repositories.CommandRepository
}

// NewBumpCommand creates a new BumpCommand.
func NewBumpCommand(
	managerRegistry *infraRepos.ManagerRegistry,
	worktree repositories.WorktreeRepository,
	runner repositories.CommandRepository,
) *BumpCommand {
	return &BumpCommand{
		managerRegistry: managerRegistry,
		worktree:        worktree,
		runner:          runner,
	}
}

// Execute runs the bump. Fatal outcomes that must end the process with a
// specific exit code are returned as *entities.ExitError.
func (it *BumpCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts entities.BumpOptions,
) (*entities.BumpResult, error) {
	if err := it.ensurePristine(ctx, opts); err != nil {
		return nil, err
	}

	// Resolved once: bump and message must see the same manager instances.
	managers := it.managerRegistry.Valid(opts.Directory, settings)

	result := &entities.BumpResult{}
	for _, manager := range managers {
		result.Managers = append(result.Managers, manager.Name())
	}
	if len(managers) == 0 {
		logger.Info("No supported dependency manager found, nothing to bump.")
	}

	if err := bumpAll(ctx, managers); err != nil {
		return nil, err
	}

	if err := it.verify(ctx, opts); err != nil {
		return nil, err
	}

	if opts.Commit {
		message, err := commitMessage(ctx, managers)
		if err != nil {
			return nil, err
		}
		result.CommitMessage = message
	}

	return result, nil
}

// ensurePristine refuses to continue on a dirty working tree, if requested.
func (it *BumpCommand) ensurePristine(ctx context.Context, opts entities.BumpOptions) error {
	if !opts.Pristine {
		return nil
	}

	pristine, err := it.worktree.IsPristine(ctx, opts.Directory)
	if err != nil {
		return fmt.Errorf("failed to check working tree: %w", err)
	}
	if !pristine {
		logger.Warn(pristineWarning)
		return &entities.ExitError{Code: entities.ExitCodeDirtyWorktree, Message: pristineWarning}
	}
	return nil
}

// bumpAll bumps every manager in order. There is no isolation: the first
// failure aborts the run, leaving earlier managers' changes in place.
func bumpAll(ctx context.Context, managers []repositories.ManagerRepository) error {
	for _, manager := range managers {
		logger.Infof("[%s] Bumping %s dependencies...", manager.Name(), manager.Label())
		if err := manager.Bump(ctx); err != nil {
			return fmt.Errorf("[%s] bump failed: %w", manager.Name(), err)
		}
	}
	return nil
}

// verify runs the verification command, if requested. The bump has already
// been applied and is not rolled back on failure.
func (it *BumpCommand) verify(ctx context.Context, opts entities.BumpOptions) error {
	if opts.Verify == "" {
		return nil
	}

	logger.Infof("Verifying with `%s`...", opts.Verify)
	exitCode, err := it.runner.Run(ctx, opts.Directory, opts.Verify)
	if err == nil && exitCode == 0 {
		return nil
	}

	message := fmt.Sprintf(verifyWarning, opts.Verify)
	logger.Warn(message)
	if err != nil {
		logger.Debugf("Verification command could not run: %v", err)
	}
	if exitCode <= 0 {
		exitCode = 1
	}
	return &entities.ExitError{Code: exitCode, Message: message}
}

// commitMessage collects every manager's message into a commit message.
func commitMessage(ctx context.Context, managers []repositories.ManagerRepository) (string, error) {
	messages := make([]string, 0, len(managers))
	for _, manager := range managers {
		message, err := manager.Message(ctx)
		if err != nil {
			return "", fmt.Errorf("[%s] message failed: %w", manager.Name(), err)
		}
		messages = append(messages, message)
	}
	return entities.FormatCommitMessage(messages), nil
}
