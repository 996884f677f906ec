package ports

import "github.com/RodrigoSpano/envsetup/internal/core/domain"

// Materializer defines the interface for copying the template module into the
// host source tree.
//
//go:generate mockgen -source=materializer.go -destination=mocks/mock_materializer.go -package=mocks
type Materializer interface {
	// Materialize ensures the destination directory exists and writes the
	// template module under its fixed name, overwriting any prior copy.
	// Re-running against an up-to-date destination performs no write.
	Materialize(root string, settings domain.Settings) (domain.MaterializedFile, error)
}
