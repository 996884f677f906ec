// Package app implements the application layer for envsetup.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/RodrigoSpano/envsetup/internal/core/domain"
	"github.com/RodrigoSpano/envsetup/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	resolver     ports.ProjectResolver
	manifests    ports.ManifestReader
	materializer ports.Materializer
	runner       ports.Runner
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	resolver ports.ProjectResolver,
	manifests ports.ManifestReader,
	materializer ports.Materializer,
	runner ports.Runner,
	log ports.Logger,
) *App {
	return &App{
		resolver:     resolver,
		manifests:    manifests,
		materializer: materializer,
		runner:       runner,
		logger:       log,
	}
}

// InstallOptions configuration for the Install method.
type InstallOptions struct {
	// Dir is the directory the project-root search starts from.
	Dir string

	// OwnManifest overrides the path of this utility's own manifest.
	OwnManifest string

	// SkipInstall reconciles and reports without invoking the package manager.
	SkipInstall bool
}

// InstallReport summarizes what an Install run did.
type InstallReport struct {
	Root           string
	PackageManager domain.PackageManager
	File           domain.MaterializedFile
	Missing        []domain.Dependency
	Installed      bool
}

// Install materializes the template module into the host project and ensures
// the host declares this utility's runtime dependencies. The flow is a fixed
// sequence: locate root, load settings, detect the package manager, read both
// manifests, copy the template, then either install the missing set in one
// invocation or report that everything is already satisfied.
func (a *App) Install(ctx context.Context, opts InstallOptions) (*InstallReport, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	root, err := a.resolver.Locate(dir)
	if err != nil {
		return nil, err
	}

	settings, err := a.resolver.Settings(root)
	if err != nil {
		return nil, err
	}
	if opts.OwnManifest != "" {
		settings.OwnManifest = opts.OwnManifest
	}

	pm, err := a.packageManager(root, settings)
	if err != nil {
		return nil, err
	}

	host, err := a.readManifest(filepath.Join(root, domain.ManifestFileName), domain.ErrHostManifestNotFound)
	if err != nil {
		return nil, err
	}

	own, err := a.readManifest(settings.OwnManifestPath(root), domain.ErrOwnManifestNotFound)
	if err != nil {
		return nil, err
	}

	file, err := a.materializer.Materialize(root, settings)
	if err != nil {
		return nil, err
	}
	if file.UpToDate {
		a.logger.Info("validator module already up to date: " + file.Path)
	} else {
		a.logger.Info("copied validator module to " + file.Path)
	}

	report := &InstallReport{
		Root:           root,
		PackageManager: pm,
		File:           file,
		Missing:        domain.MissingDependencies(own, host),
	}

	switch {
	case len(report.Missing) == 0:
		a.logger.Info("all dependencies already declared by the host project")
	case opts.SkipInstall:
		a.logger.Warn(fmt.Sprintf("skipping installation of %d missing dependencies", len(report.Missing)))
	default:
		if err := a.runner.AddDependencies(ctx, root, pm, report.Missing); err != nil {
			return nil, err
		}
		report.Installed = true
	}

	return report, nil
}

func (a *App) packageManager(root string, settings domain.Settings) (domain.PackageManager, error) {
	if settings.PackageManager != "" {
		return domain.ParsePackageManager(settings.PackageManager)
	}
	return a.resolver.Detect(root)
}

func (a *App) readManifest(path string, missing error) (domain.Manifest, error) {
	manifest, err := a.manifests.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Manifest{}, zerr.With(missing, "path", path)
		}
		return domain.Manifest{}, err
	}
	return manifest, nil
}
