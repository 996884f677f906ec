package ports

import "github.com/RodrigoSpano/envsetup/internal/core/domain"

// ManifestReader defines the interface for reading dependency manifests.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestReader interface {
	// Read parses the manifest at path. The returned error wraps
	// fs.ErrNotExist when the file is missing, so callers can distinguish
	// absence from malformed content.
	Read(path string) (domain.Manifest, error)
}
