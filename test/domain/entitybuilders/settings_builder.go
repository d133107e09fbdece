//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	commit   bool
	pristine bool
	verify   string
	managers map[string]entities.ManagerConfig
}

// NewSettingsBuilder creates a new settings builder with every manager enabled.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		managers:    make(map[string]entities.ManagerConfig),
	}
}

// WithCommit sets the default for --commit.
func (b *SettingsBuilder) WithCommit(commit bool) *SettingsBuilder {
	b.commit = commit
	return b
}

// WithPristine sets the default for --pristine.
func (b *SettingsBuilder) WithPristine(pristine bool) *SettingsBuilder {
	b.pristine = pristine
	return b
}

// WithVerify sets the default for --verify.
func (b *SettingsBuilder) WithVerify(verify string) *SettingsBuilder {
	b.verify = verify
	return b
}

// WithManagerEnabled turns a manager on or off.
func (b *SettingsBuilder) WithManagerEnabled(name string, enabled bool) *SettingsBuilder {
	cfg := b.managers[name]
	cfg.Enabled = &enabled
	b.managers[name] = cfg
	return b
}

// WithSelfUpdate turns a manager's self-update on or off.
func (b *SettingsBuilder) WithSelfUpdate(name string, selfUpdate bool) *SettingsBuilder {
	cfg := b.managers[name]
	cfg.SelfUpdate = &selfUpdate
	b.managers[name] = cfg
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	managers := make(map[string]entities.ManagerConfig, len(b.managers))
	for name, cfg := range b.managers {
		managers[name] = cfg
	}
	return &entities.Settings{
		Commit:   b.commit,
		Pristine: b.pristine,
		Verify:   b.verify,
		Managers: managers,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.commit = false
	b.pristine = false
	b.verify = ""
	b.managers = make(map[string]entities.ManagerConfig)
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	managers := make(map[string]entities.ManagerConfig, len(b.managers))
	for name, cfg := range b.managers {
		managers[name] = cfg
	}
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		commit:      b.commit,
		pristine:    b.pristine,
		verify:      b.verify,
		managers:    managers,
	}
}
