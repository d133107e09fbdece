package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
	domainRepos "github.com/rios0rios0/bumpit/internal/domain/repositories"
	bundlerRepo "github.com/rios0rios0/bumpit/internal/infrastructure/repositories/bundler"
	"github.com/rios0rios0/bumpit/internal/infrastructure/repositories/command"
	gitRepo "github.com/rios0rios0/bumpit/internal/infrastructure/repositories/git"
	yarnRepo "github.com/rios0rios0/bumpit/internal/infrastructure/repositories/yarn"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() domainRepos.CommandRepository {
		return command.NewExecCommandRepository()
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.WorktreeRepository {
		return gitRepo.NewWorktreeRepository()
	}); err != nil {
		return err
	}

	// Register manager registry with all manager implementations, in the
	// order their messages are aggregated
	if err := container.Provide(NewDefaultManagerRegistry); err != nil {
		return err
	}

	return nil
}

// NewDefaultManagerRegistry returns a registry holding every supported
// ecosystem, wired to runner.
func NewDefaultManagerRegistry(runner domainRepos.CommandRepository) *ManagerRegistry {
	reg := NewManagerRegistry()
	reg.Register("bundler", func(dir string, settings *entities.Settings) domainRepos.ManagerRepository {
		return bundlerRepo.NewManagerRepository(dir, runner, settings.IsSelfUpdateEnabled("bundler"))
	})
	reg.Register("yarn", func(dir string, _ *entities.Settings) domainRepos.ManagerRepository {
		return yarnRepo.NewManagerRepository(dir, runner)
	})
	return reg
}
