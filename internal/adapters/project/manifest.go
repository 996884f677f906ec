package project

import (
	"encoding/json"

	"github.com/RodrigoSpano/envsetup/internal/core/domain"
	"github.com/RodrigoSpano/envsetup/internal/core/ports"
	"go.trai.ch/zerr"
)

// ManifestReader implements ports.ManifestReader for JSON manifests.
type ManifestReader struct {
	fs FileSystem
}

// NewManifestReader creates a new ManifestReader backed by the given filesystem.
func NewManifestReader(fs FileSystem) *ManifestReader {
	return &ManifestReader{fs: fs}
}

var _ ports.ManifestReader = (*ManifestReader)(nil)

// Read parses the manifest at path. Missing files surface the underlying
// fs.ErrNotExist so callers can tell absence from malformed content.
func (m *ManifestReader) Read(path string) (domain.Manifest, error) {
	raw, err := m.fs.ReadFile(path)
	if err != nil {
		return domain.Manifest{}, err
	}

	var manifest domain.Manifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
		return domain.Manifest{}, zerr.With(wrapped, "path", path)
	}

	return manifest, nil
}
