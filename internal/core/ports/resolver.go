package ports

import "github.com/RodrigoSpano/envsetup/internal/core/domain"

// ProjectResolver defines the interface for locating and inspecting the host
// project the installer operates on.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ProjectResolver interface {
	// Locate walks up from dir and returns the first directory that qualifies
	// as a project root. It returns domain.ErrProjectRootNotFound when no
	// ancestor qualifies.
	Locate(dir string) (string, error)

	// Settings loads the optional settings file from the project root,
	// returning zero-value settings when the file does not exist.
	Settings(root string) (domain.Settings, error)

	// Detect decides which package manager the project uses based on the
	// marker files present at the root.
	Detect(root string) (domain.PackageManager, error)
}
