package entities

import "sort"

// OutdatedDependency is a top-level dependency whose requested version is
// behind the newest published one, as reported by the ecosystem's tooling.
type OutdatedDependency struct {
	Name           string // Package name
	CurrentVersion string // Requested/installed version pinned in the manifest
	LatestVersion  string // Newest published version
}

// Outdated maps a dependency name to its outdated record.
type Outdated map[string]OutdatedDependency

// Add records a dependency, replacing any previous entry with the same name.
func (o Outdated) Add(dep OutdatedDependency) {
	o[dep.Name] = dep
}

// Names returns the dependency names sorted lexicographically.
func (o Outdated) Names() []string {
	names := make([]string, 0, len(o))
	for name := range o {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
