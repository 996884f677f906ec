package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RodrigoSpano/envsetup/internal/core/domain"
)

func TestSettings_DestinationPath(t *testing.T) {
	root := filepath.Join("/", "host", "project")

	t.Run("default source dir", func(t *testing.T) {
		got := domain.Settings{}.DestinationPath(root)
		assert.Equal(t, filepath.Join(root, "src", "envs.js"), got)
	})

	t.Run("configured source dir", func(t *testing.T) {
		got := domain.Settings{SourceDir: "lib/config"}.DestinationPath(root)
		assert.Equal(t, filepath.Join(root, "lib", "config", "envs.js"), got)
	})
}

func TestSettings_OwnManifestPath(t *testing.T) {
	root := filepath.Join("/", "host", "project")

	t.Run("default points into dependency storage", func(t *testing.T) {
		got := domain.Settings{}.OwnManifestPath(root)
		assert.Equal(t, filepath.Join(root, "node_modules", domain.OwnPackageName, "package.json"), got)
	})

	t.Run("relative override joins root", func(t *testing.T) {
		got := domain.Settings{OwnManifest: "tools/envsetup/package.json"}.OwnManifestPath(root)
		assert.Equal(t, filepath.Join(root, "tools", "envsetup", "package.json"), got)
	})

	t.Run("absolute override used directly", func(t *testing.T) {
		abs := filepath.Join("/", "opt", "envsetup", "package.json")
		got := domain.Settings{OwnManifest: abs}.OwnManifestPath(root)
		assert.Equal(t, abs, got)
	})
}
