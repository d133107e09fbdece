//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bumpit/internal/domain/commands"
	"github.com/rios0rios0/bumpit/internal/domain/entities"
	infraRepos "github.com/rios0rios0/bumpit/internal/infrastructure/repositories"
	"github.com/rios0rios0/bumpit/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/bumpit/test/infrastructure/repositorydoubles"
)

type fixture struct {
	registry *infraRepos.ManagerRegistry
	worktree *doubles.StubWorktreeRepository
	runner   *doubles.StubCommandRepository
}

func newFixture(managers ...*doubles.SpyManagerRepository) *fixture {
	registry := infraRepos.NewManagerRegistry()
	for _, manager := range managers {
		registry.Register(manager.ManagerName, manager.Factory())
	}
	return &fixture{
		registry: registry,
		worktree: &doubles.StubWorktreeRepository{Pristine: true},
		runner:   &doubles.StubCommandRepository{},
	}
}

func (f *fixture) command() *commands.BumpCommand {
	return commands.NewBumpCommand(f.registry, f.worktree, f.runner)
}

func validManager(name, message string) *doubles.SpyManagerRepository {
	return &doubles.SpyManagerRepository{
		ManagerName:   name,
		ManagerLabel:  strings.ToUpper(name),
		ValidResult:   true,
		MessageResult: message,
	}
}

func defaultSettings() *entities.Settings {
	return entitybuilders.NewSettingsBuilder().BuildSettings()
}

func TestBumpCommandPristine(t *testing.T) {
	t.Parallel()

	t.Run("should refuse a dirty working tree before bumping anything", func(t *testing.T) {
		t.Parallel()

		// given
		manager := validManager("bundler", "Updates rake in Ruby.")
		f := newFixture(manager)
		f.worktree.Pristine = false
		opts := entities.BumpOptions{Directory: "/srv/app", Pristine: true, Commit: true}

		// when
		result, err := f.command().Execute(context.Background(), defaultSettings(), opts)

		// then
		var exitErr *entities.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Nil(t, result)
		assert.Equal(t, entities.ExitCodeDirtyWorktree, exitErr.Code)
		assert.Equal(t, "Working directory must be pristine to run.", exitErr.Message)
		assert.Equal(t, []string{"/srv/app"}, f.worktree.CheckedDirs)
		assert.Zero(t, manager.BumpCallCount)
	})

	t.Run("should not inspect the working tree unless asked", func(t *testing.T) {
		t.Parallel()

		// given
		manager := validManager("bundler", "")
		f := newFixture(manager)
		f.worktree.Pristine = false

		// when
		_, err := f.command().Execute(context.Background(), defaultSettings(), entities.BumpOptions{Directory: "."})

		// then
		require.NoError(t, err)
		assert.Empty(t, f.worktree.CheckedDirs)
		assert.Equal(t, 1, manager.BumpCallCount)
	})

	t.Run("should propagate a failure to read the working tree", func(t *testing.T) {
		t.Parallel()

		// given
		manager := validManager("bundler", "")
		f := newFixture(manager)
		f.worktree.Err = errors.New("repository does not exist")

		// when
		_, err := f.command().Execute(
			context.Background(), defaultSettings(), entities.BumpOptions{Directory: ".", Pristine: true},
		)

		// then
		require.Error(t, err)
		var exitErr *entities.ExitError
		assert.False(t, errors.As(err, &exitErr))
		assert.Zero(t, manager.BumpCallCount)
	})
}

func TestBumpCommandBump(t *testing.T) {
	t.Parallel()

	t.Run("should bump every valid manager in registry order", func(t *testing.T) {
		t.Parallel()

		// given
		var order []string
		bundler := validManager("bundler", "")
		bundler.OnBump = func() { order = append(order, "bundler") }
		yarn := validManager("yarn", "")
		yarn.OnBump = func() { order = append(order, "yarn") }
		f := newFixture(bundler, yarn)

		// when
		result, err := f.command().Execute(context.Background(), defaultSettings(), entities.BumpOptions{Directory: "."})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"bundler", "yarn"}, order)
		assert.Equal(t, []string{"bundler", "yarn"}, result.Managers)
	})

	t.Run("should skip invalid and disabled managers", func(t *testing.T) {
		t.Parallel()

		// given
		bundler := validManager("bundler", "")
		yarn := validManager("yarn", "")
		yarn.ValidResult = false
		other := validManager("cargo", "")
		f := newFixture(bundler, yarn, other)
		settings := entitybuilders.NewSettingsBuilder().WithManagerEnabled("cargo", false).BuildSettings()

		// when
		result, err := f.command().Execute(context.Background(), settings, entities.BumpOptions{Directory: "."})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"bundler"}, result.Managers)
		assert.Equal(t, 1, bundler.BumpCallCount)
		assert.Zero(t, yarn.BumpCallCount)
		assert.Zero(t, other.BumpCallCount)
	})

	t.Run("should succeed with nothing to bump", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture()

		// when
		result, err := f.command().Execute(
			context.Background(), defaultSettings(), entities.BumpOptions{Directory: ".", Commit: true},
		)

		// then
		require.NoError(t, err)
		assert.Empty(t, result.Managers)
		assert.Empty(t, result.CommitMessage)
	})

	t.Run("should abort on the first failing manager", func(t *testing.T) {
		t.Parallel()

		// given
		bundler := validManager("bundler", "")
		bundler.BumpErr = errors.New("bundle update exploded")
		yarn := validManager("yarn", "")
		f := newFixture(bundler, yarn)
		opts := entities.BumpOptions{Directory: ".", Verify: "make test", Commit: true}

		// when
		result, err := f.command().Execute(context.Background(), defaultSettings(), opts)

		// then
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "bundle update exploded")
		assert.Zero(t, yarn.BumpCallCount)
		assert.Empty(t, f.runner.RunCalls)
		assert.Zero(t, bundler.MessageCallCount)
	})
}

func TestBumpCommandVerify(t *testing.T) {
	t.Parallel()

	t.Run("should run the verification after bumping", func(t *testing.T) {
		t.Parallel()

		// given
		manager := validManager("bundler", "")
		f := newFixture(manager)
		var bumpedBeforeVerify bool
		f.runner.RunExitCode = 0
		manager.OnBump = func() { bumpedBeforeVerify = len(f.runner.RunCalls) == 0 }
		opts := entities.BumpOptions{Directory: "/srv/app", Verify: "bundle exec rake"}

		// when
		_, err := f.command().Execute(context.Background(), defaultSettings(), opts)

		// then
		require.NoError(t, err)
		assert.True(t, bumpedBeforeVerify)
		require.Len(t, f.runner.RunCalls, 1)
		assert.Equal(t, doubles.CommandCall{Dir: "/srv/app", CommandLine: "bundle exec rake"}, f.runner.RunCalls[0])
	})

	t.Run("should exit with the code of a failed verification", func(t *testing.T) {
		t.Parallel()

		// given
		manager := validManager("bundler", "Updates rake in Ruby.")
		f := newFixture(manager)
		f.runner.RunExitCode = 3
		opts := entities.BumpOptions{Directory: ".", Verify: "make test", Commit: true}

		// when
		result, err := f.command().Execute(context.Background(), defaultSettings(), opts)

		// then
		var exitErr *entities.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Nil(t, result)
		assert.Equal(t, 3, exitErr.Code)
		assert.Equal(t, "The `make test` verification command failed.", exitErr.Message)
		assert.Equal(t, 1, manager.BumpCallCount)
		assert.Zero(t, manager.MessageCallCount)
	})

	t.Run("should exit with 1 when verification cannot start", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(validManager("bundler", ""))
		f.runner.RunExitCode = -1
		f.runner.RunErr = errors.New("fork/exec /bin/sh: no such file or directory")
		opts := entities.BumpOptions{Directory: ".", Verify: "make test"}

		// when
		_, err := f.command().Execute(context.Background(), defaultSettings(), opts)

		// then
		var exitErr *entities.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.Code)
	})
}

func TestBumpCommandCommitMessage(t *testing.T) {
	t.Parallel()

	t.Run("should aggregate manager messages in order", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(
			validManager("bundler", "Updates rake in Ruby."),
			validManager("yarn", "Updates react in JavaScript."),
		)
		opts := entities.BumpOptions{Directory: ".", Commit: true}

		// when
		result, err := f.command().Execute(context.Background(), defaultSettings(), opts)

		// then
		require.NoError(t, err)
		assert.Equal(
			t,
			"Update dependencies.\n\n* Updates rake in Ruby.\n* Updates react in JavaScript.\n",
			result.CommitMessage,
		)
	})

	t.Run("should skip managers with nothing to report", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(validManager("bundler", ""), validManager("yarn", "Updates react in JavaScript."))
		opts := entities.BumpOptions{Directory: ".", Commit: true}

		// when
		result, err := f.command().Execute(context.Background(), defaultSettings(), opts)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Update dependencies.\n\n* Updates react in JavaScript.\n", result.CommitMessage)
	})

	t.Run("should produce no message when nothing changed", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(validManager("bundler", ""), validManager("yarn", ""))
		opts := entities.BumpOptions{Directory: ".", Commit: true}

		// when
		result, err := f.command().Execute(context.Background(), defaultSettings(), opts)

		// then
		require.NoError(t, err)
		assert.Empty(t, result.CommitMessage)
	})

	t.Run("should not ask for messages without commit", func(t *testing.T) {
		t.Parallel()

		// given
		manager := validManager("bundler", "Updates rake in Ruby.")
		f := newFixture(manager)

		// when
		result, err := f.command().Execute(context.Background(), defaultSettings(), entities.BumpOptions{Directory: "."})

		// then
		require.NoError(t, err)
		assert.Empty(t, result.CommitMessage)
		assert.Zero(t, manager.MessageCallCount)
	})

	t.Run("should propagate a message failure", func(t *testing.T) {
		t.Parallel()

		// given
		manager := validManager("bundler", "")
		manager.MessageErr = errors.New("npm outdated returned garbage")
		f := newFixture(manager)

		// when
		_, err := f.command().Execute(
			context.Background(), defaultSettings(), entities.BumpOptions{Directory: ".", Commit: true},
		)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "npm outdated returned garbage")
	})
}
