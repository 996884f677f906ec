package ports

import (
	"context"

	"github.com/RodrigoSpano/envsetup/internal/core/domain"
)

// Runner defines the interface for invoking the host's package manager.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// AddDependencies invokes the package manager's add/install operation
	// once with the full dependency set, running in the project root.
	AddDependencies(ctx context.Context, root string, pm domain.PackageManager, deps []domain.Dependency) error
}
