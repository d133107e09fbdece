//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
	domainRepos "github.com/rios0rios0/bumpit/internal/domain/repositories"
	"github.com/rios0rios0/bumpit/internal/infrastructure/repositories"
	"github.com/rios0rios0/bumpit/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/bumpit/test/infrastructure/repositorydoubles"
)

func names(managers []domainRepos.ManagerRepository) []string {
	result := make([]string, 0, len(managers))
	for _, manager := range managers {
		result = append(result, manager.Name())
	}
	return result
}

func TestManagerRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should keep declaration order", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewManagerRegistry()
		registry.Register("zeta", (&doubles.SpyManagerRepository{ManagerName: "zeta"}).Factory())
		registry.Register("alpha", (&doubles.SpyManagerRepository{ManagerName: "alpha"}).Factory())

		// when
		all := registry.All(".", entitybuilders.NewSettingsBuilder().BuildSettings())

		// then
		assert.Equal(t, []string{"zeta", "alpha"}, registry.Names())
		assert.Equal(t, []string{"zeta", "alpha"}, names(all))
	})

	t.Run("should replace a factory in place when registered twice", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewManagerRegistry()
		first := &doubles.SpyManagerRepository{ManagerName: "bundler", ManagerLabel: "first"}
		second := &doubles.SpyManagerRepository{ManagerName: "bundler", ManagerLabel: "second"}
		registry.Register("bundler", first.Factory())
		registry.Register("yarn", (&doubles.SpyManagerRepository{ManagerName: "yarn"}).Factory())
		registry.Register("bundler", second.Factory())

		// when
		all := registry.All(".", entitybuilders.NewSettingsBuilder().BuildSettings())

		// then
		assert.Equal(t, []string{"bundler", "yarn"}, registry.Names())
		require.Len(t, all, 2)
		assert.Equal(t, "second", all[0].Label())
	})

	t.Run("should only return valid managers", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewManagerRegistry()
		registry.Register("bundler", (&doubles.SpyManagerRepository{ManagerName: "bundler"}).Factory())
		registry.Register("yarn", (&doubles.SpyManagerRepository{ManagerName: "yarn", ValidResult: true}).Factory())

		// when
		valid := registry.Valid(".", entitybuilders.NewSettingsBuilder().BuildSettings())

		// then
		assert.Equal(t, []string{"yarn"}, names(valid))
	})

	t.Run("should skip managers disabled in settings", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewManagerRegistry()
		registry.Register("bundler", (&doubles.SpyManagerRepository{ManagerName: "bundler", ValidResult: true}).Factory())
		registry.Register("yarn", (&doubles.SpyManagerRepository{ManagerName: "yarn", ValidResult: true}).Factory())
		settings := entitybuilders.NewSettingsBuilder().WithManagerEnabled("bundler", false).BuildSettings()

		// when
		valid := registry.Valid(".", settings)

		// then
		assert.Equal(t, []string{"yarn"}, names(valid))
	})

	t.Run("should pass the directory to every factory", func(t *testing.T) {
		t.Parallel()

		// given
		var dirs []string
		registry := repositories.NewManagerRegistry()
		registry.Register("bundler", func(dir string, _ *entities.Settings) domainRepos.ManagerRepository {
			dirs = append(dirs, dir)
			return &doubles.DummyManagerRepository{}
		})

		// when
		_ = registry.All("/srv/app", entitybuilders.NewSettingsBuilder().BuildSettings())

		// then
		assert.Equal(t, []string{"/srv/app"}, dirs)
	})
}

func TestNewDefaultManagerRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should register bundler before yarn", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &doubles.StubCommandRepository{}

		// when
		registry := repositories.NewDefaultManagerRegistry(runner)

		// then
		assert.Equal(t, []string{"bundler", "yarn"}, registry.Names())
	})

	t.Run("should find no valid manager in an empty directory", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &doubles.StubCommandRepository{
			Executables: map[string]bool{"bundle": true, "npm": true, "yarn": true},
		}
		registry := repositories.NewDefaultManagerRegistry(runner)

		// when
		valid := registry.Valid(t.TempDir(), entitybuilders.NewSettingsBuilder().BuildSettings())

		// then
		assert.Empty(t, valid)
	})
}
