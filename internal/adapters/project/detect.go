package project

import (
	"path/filepath"

	"github.com/RodrigoSpano/envsetup/internal/core/domain"
)

// detection markers, checked in priority order. First match wins.
var detectionMarkers = []struct {
	manager domain.PackageManager
	files   []string
}{
	{domain.Pnpm, []string{"pnpm-lock.yaml", "pnpm-workspace.yaml"}},
	{domain.Yarn, []string{"yarn.lock"}},
	{domain.Npm, []string{"package-lock.json", "npm-shrinkwrap.json"}},
}

// Detect decides which package manager the project at root uses by checking
// for each manager's marker files. Projects without a distinguishing marker
// default to npm.
func (r *Resolver) Detect(root string) (domain.PackageManager, error) {
	for _, marker := range detectionMarkers {
		for _, name := range marker.files {
			if r.exists(filepath.Join(root, name)) {
				return marker.manager, nil
			}
		}
	}
	return domain.Npm, nil
}
