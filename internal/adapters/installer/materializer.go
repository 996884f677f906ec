// Package installer copies the template validator module into host projects.
package installer

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"github.com/RodrigoSpano/envsetup/internal/core/domain"
	"github.com/RodrigoSpano/envsetup/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed template/envs.js
var templateSource []byte

// Materializer implements ports.Materializer by copying the embedded template
// byte-for-byte into the host source tree.
type Materializer struct{}

// NewMaterializer creates a new Materializer.
func NewMaterializer() *Materializer {
	return &Materializer{}
}

var _ ports.Materializer = (*Materializer)(nil)

// Materialize ensures the destination directory exists and writes the template
// under its fixed name. When the destination already holds the template
// content the write is skipped, so re-runs are byte-stable no-ops.
func (m *Materializer) Materialize(root string, settings domain.Settings) (domain.MaterializedFile, error) {
	dest := settings.DestinationPath(root)

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrMaterializeFailed.Error())
		return domain.MaterializedFile{}, zerr.With(wrapped, "path", dest)
	}

	if m.upToDate(dest) {
		return domain.MaterializedFile{Path: dest, UpToDate: true}, nil
	}

	if err := os.WriteFile(dest, templateSource, 0o644); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrMaterializeFailed.Error())
		return domain.MaterializedFile{}, zerr.With(wrapped, "path", dest)
	}

	return domain.MaterializedFile{Path: dest}, nil
}

// upToDate reports whether the destination file already matches the template.
func (m *Materializer) upToDate(dest string) bool {
	existing, err := os.ReadFile(dest) //nolint:gosec // dest derives from the located project root
	if err != nil {
		return false
	}
	return xxhash.Sum64(existing) == xxhash.Sum64(templateSource)
}
