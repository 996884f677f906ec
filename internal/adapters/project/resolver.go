// Package project locates the host project and inspects its package manager.
package project

import (
	"path/filepath"

	"github.com/RodrigoSpano/envsetup/internal/core/domain"
	"github.com/RodrigoSpano/envsetup/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxTraversalDepth bounds the upward walk so a pathological mount layout
// cannot loop forever.
const maxTraversalDepth = 64

// dependencyStorageDir is the directory the package manager installs into.
const dependencyStorageDir = "node_modules"

// lockFileNames are the recognized lockfiles, any of which qualifies a
// directory as a project root.
var lockFileNames = []string{
	"package-lock.json",
	"npm-shrinkwrap.json",
	"yarn.lock",
	"pnpm-lock.yaml",
}

// Resolver implements ports.ProjectResolver against the filesystem.
type Resolver struct {
	fs     FileSystem
	logger ports.Logger
}

// NewResolver creates a new Resolver backed by the given filesystem.
func NewResolver(fs FileSystem, logger ports.Logger) *Resolver {
	return &Resolver{fs: fs, logger: logger}
}

var _ ports.ProjectResolver = (*Resolver)(nil)

// Locate walks up from dir toward the filesystem root and returns the first
// directory containing a manifest, a dependency storage directory, and at
// least one recognized lockfile.
func (r *Resolver) Locate(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrProjectRootNotFound.Error())
	}

	currentDir := abs
	for range maxTraversalDepth {
		if r.isProjectRoot(currentDir) {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrProjectRootNotFound, "start_dir", abs)
}

func (r *Resolver) isProjectRoot(dir string) bool {
	if !r.exists(filepath.Join(dir, domain.ManifestFileName)) {
		return false
	}
	if !r.exists(filepath.Join(dir, dependencyStorageDir)) {
		return false
	}
	for _, name := range lockFileNames {
		if r.exists(filepath.Join(dir, name)) {
			return true
		}
	}
	return false
}

func (r *Resolver) exists(path string) bool {
	_, err := r.fs.Stat(path)
	return err == nil
}
