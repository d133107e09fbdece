//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
	"github.com/rios0rios0/bumpit/internal/domain/repositories"
)

// SpyManagerRepository implements repositories.ManagerRepository as a
// configurable spy.
type SpyManagerRepository struct {
	// --- identity ---
	ManagerName  string
	ManagerLabel string

	// --- Valid ---
	ValidResult bool

	// --- Bump ---
	BumpErr       error
	BumpCallCount int
	// OnBump, when set, runs inside Bump (e.g. to record cross-manager ordering).
	OnBump func()

	// --- Message ---
	MessageResult    string
	MessageErr       error
	MessageCallCount int
}

var _ repositories.ManagerRepository = (*SpyManagerRepository)(nil)

func (m *SpyManagerRepository) Name() string { return m.ManagerName }

func (m *SpyManagerRepository) Label() string { return m.ManagerLabel }

func (m *SpyManagerRepository) Valid() bool { return m.ValidResult }

func (m *SpyManagerRepository) Bump(_ context.Context) error {
	m.BumpCallCount++
	if m.OnBump != nil {
		m.OnBump()
	}
	return m.BumpErr
}

func (m *SpyManagerRepository) Message(_ context.Context) (string, error) {
	m.MessageCallCount++
	return m.MessageResult, m.MessageErr
}

// Factory returns a ManagerFactory that always hands out this spy.
func (m *SpyManagerRepository) Factory() repositories.ManagerFactory {
	return func(_ string, _ *entities.Settings) repositories.ManagerRepository {
		return m
	}
}

// DummyManagerRepository is a no-op implementation of repositories.ManagerRepository.
type DummyManagerRepository struct{}

var _ repositories.ManagerRepository = (*DummyManagerRepository)(nil)

func (d *DummyManagerRepository) Name() string { return "dummy" }

func (d *DummyManagerRepository) Label() string { return "Dummy" }

func (d *DummyManagerRepository) Valid() bool { return false }

func (d *DummyManagerRepository) Bump(_ context.Context) error { return nil }

func (d *DummyManagerRepository) Message(_ context.Context) (string, error) { return "", nil }
