//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
)

// OutdatedDependencyBuilder helps create test outdated dependencies with a fluent interface.
type OutdatedDependencyBuilder struct {
	*testkit.BaseBuilder
	name           string
	currentVersion string
	latestVersion  string
}

// NewOutdatedDependencyBuilder creates a new builder with sensible defaults.
func NewOutdatedDependencyBuilder() *OutdatedDependencyBuilder {
	return &OutdatedDependencyBuilder{
		BaseBuilder:    testkit.NewBaseBuilder(),
		name:           "test-dependency",
		currentVersion: "1.0.0",
		latestVersion:  "2.0.0",
	}
}

// WithName sets the dependency name.
func (b *OutdatedDependencyBuilder) WithName(name string) *OutdatedDependencyBuilder {
	b.name = name
	return b
}

// WithCurrentVersion sets the version pinned in the manifest.
func (b *OutdatedDependencyBuilder) WithCurrentVersion(version string) *OutdatedDependencyBuilder {
	b.currentVersion = version
	return b
}

// WithLatestVersion sets the newest published version.
func (b *OutdatedDependencyBuilder) WithLatestVersion(version string) *OutdatedDependencyBuilder {
	b.latestVersion = version
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *OutdatedDependencyBuilder) Build() interface{} {
	return b.BuildOutdatedDependency()
}

// BuildOutdatedDependency creates the dependency with a concrete return type.
func (b *OutdatedDependencyBuilder) BuildOutdatedDependency() entities.OutdatedDependency {
	return entities.OutdatedDependency{
		Name:           b.name,
		CurrentVersion: b.currentVersion,
		LatestVersion:  b.latestVersion,
	}
}

// BuildOutdated wraps the dependency in a single-entry entities.Outdated.
func (b *OutdatedDependencyBuilder) BuildOutdated() entities.Outdated {
	dep := b.BuildOutdatedDependency()
	return entities.Outdated{dep.Name: dep}
}

// Reset clears the builder state, allowing it to be reused.
func (b *OutdatedDependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-dependency"
	b.currentVersion = "1.0.0"
	b.latestVersion = "2.0.0"
	return b
}

// Clone creates a deep copy of the OutdatedDependencyBuilder.
func (b *OutdatedDependencyBuilder) Clone() testkit.Builder {
	return &OutdatedDependencyBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:           b.name,
		currentVersion: b.currentVersion,
		latestVersion:  b.latestVersion,
	}
}
