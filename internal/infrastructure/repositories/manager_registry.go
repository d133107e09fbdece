package repositories

import (
	"github.com/rios0rios0/bumpit/internal/domain/entities"
	domainRepos "github.com/rios0rios0/bumpit/internal/domain/repositories"
)

// ManagerRegistry holds the known dependency managers in declaration order.
type ManagerRegistry struct {
	names     []string
	factories map[string]domainRepos.ManagerFactory
}

// NewManagerRegistry creates an empty manager registry.
func NewManagerRegistry() *ManagerRegistry {
	return &ManagerRegistry{
		factories: make(map[string]domainRepos.ManagerFactory),
	}
}

// Register adds a manager factory under name. Registering the same name
// again replaces the factory but keeps its original position.
func (r *ManagerRegistry) Register(name string, factory domainRepos.ManagerFactory) {
	if _, exists := r.factories[name]; !exists {
		r.names = append(r.names, name)
	}
	r.factories[name] = factory
}

// Names returns the registered manager names in declaration order.
func (r *ManagerRegistry) Names() []string {
	return append([]string(nil), r.names...)
}

// All instantiates every registered manager for dir, in declaration order.
func (r *ManagerRegistry) All(dir string, settings *entities.Settings) []domainRepos.ManagerRepository {
	result := make([]domainRepos.ManagerRepository, 0, len(r.names))
	for _, name := range r.names {
		result = append(result, r.factories[name](dir, settings))
	}
	return result
}

// Valid instantiates the managers that are enabled in settings and
// applicable to dir, preserving declaration order.
func (r *ManagerRegistry) Valid(dir string, settings *entities.Settings) []domainRepos.ManagerRepository {
	result := make([]domainRepos.ManagerRepository, 0, len(r.names))
	for _, manager := range r.All(dir, settings) {
		if !settings.IsManagerEnabled(manager.Name()) {
			continue
		}
		if manager.Valid() {
			result = append(result, manager)
		}
	}
	return result
}
