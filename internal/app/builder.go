package app

import (
	"github.com/RodrigoSpano/envsetup/internal/adapters/installer"
	"github.com/RodrigoSpano/envsetup/internal/adapters/logger"
	"github.com/RodrigoSpano/envsetup/internal/adapters/project"
	"github.com/RodrigoSpano/envsetup/internal/adapters/shell"
	"github.com/RodrigoSpano/envsetup/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents wires the default adapters into a ready-to-use App.
func NewComponents() *Components {
	log := logger.New()
	fs := project.NewOSFS()

	resolver := project.NewResolver(fs, log)
	manifests := project.NewManifestReader(fs)
	materializer := installer.NewMaterializer()
	runner := shell.NewRunner(log)

	return &Components{
		App:    New(resolver, manifests, materializer, runner, log),
		Logger: log,
	}
}
