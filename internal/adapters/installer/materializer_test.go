package installer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RodrigoSpano/envsetup/internal/adapters/installer"
	"github.com/RodrigoSpano/envsetup/internal/core/domain"
)

func TestMaterializer_Materialize(t *testing.T) {
	m := installer.NewMaterializer()

	t.Run("creates destination directory and writes the template", func(t *testing.T) {
		root := t.TempDir()

		file, err := m.Materialize(root, domain.Settings{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "src", "envs.js"), file.Path)
		assert.False(t, file.UpToDate)

		content, err := os.ReadFile(file.Path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "NATS_SERVERS")
	})

	t.Run("second run is an up-to-date no-op with identical content", func(t *testing.T) {
		root := t.TempDir()

		first, err := m.Materialize(root, domain.Settings{})
		require.NoError(t, err)
		firstContent, err := os.ReadFile(first.Path)
		require.NoError(t, err)

		second, err := m.Materialize(root, domain.Settings{})
		require.NoError(t, err)
		assert.True(t, second.UpToDate)
		assert.Equal(t, first.Path, second.Path)

		secondContent, err := os.ReadFile(second.Path)
		require.NoError(t, err)
		assert.Equal(t, firstContent, secondContent)
	})

	t.Run("overwrites a stale prior copy", func(t *testing.T) {
		root := t.TempDir()
		dest := domain.Settings{}.DestinationPath(root)
		require.NoError(t, os.MkdirAll(filepath.Dir(dest), 0o755))
		require.NoError(t, os.WriteFile(dest, []byte("// old version"), 0o644))

		file, err := m.Materialize(root, domain.Settings{})
		require.NoError(t, err)
		assert.False(t, file.UpToDate)

		content, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.NotContains(t, string(content), "old version")
	})

	t.Run("honors configured source dir", func(t *testing.T) {
		root := t.TempDir()

		file, err := m.Materialize(root, domain.Settings{SourceDir: "lib/config"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "lib", "config", "envs.js"), file.Path)
	})
}
