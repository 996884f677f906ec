// Package domain contains the core types for the installer.
package domain

import "slices"

// ManifestFileName is the name of a project's manifest file.
const ManifestFileName = "package.json"

// OwnPackageName is the name this utility is published under in the host's
// dependency storage.
const OwnPackageName = "@rodrigospano/envsetup"

// Manifest is a project descriptor listing declared dependencies and their
// version specifiers.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Declares reports whether the manifest lists the named package under either
// dependency category.
func (m Manifest) Declares(name string) bool {
	if _, ok := m.Dependencies[name]; ok {
		return true
	}
	_, ok := m.DevDependencies[name]
	return ok
}

// Dependency is a (package name, version specifier) pair.
type Dependency struct {
	Name    string
	Version string
}

// Spec returns the name@version form used by package manager add commands.
func (d Dependency) Spec() string {
	if d.Version == "" {
		return d.Name
	}
	return d.Name + "@" + d.Version
}

// MissingDependencies returns every dependency declared by own (under either
// category) that host does not declare, preserving the version specifier.
// The result is sorted by name so repeated runs produce identical output.
func MissingDependencies(own, host Manifest) []Dependency {
	var missing []Dependency

	collect := func(deps map[string]string) {
		for name, version := range deps {
			if host.Declares(name) {
				continue
			}
			missing = append(missing, Dependency{Name: name, Version: version})
		}
	}

	collect(own.Dependencies)
	collect(own.DevDependencies)

	slices.SortFunc(missing, func(a, b Dependency) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})

	// A package declared under both of own's categories would appear twice.
	return slices.CompactFunc(missing, func(a, b Dependency) bool {
		return a.Name == b.Name
	})
}
