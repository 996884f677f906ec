package domain

import "path/filepath"

const (
	// SettingsFileName is the optional per-project settings file read from the
	// project root.
	SettingsFileName = ".envsetup.yaml"

	// DefaultSourceDir is the directory inside the host source tree that
	// receives the template module.
	DefaultSourceDir = "src"

	// TemplateFileName is the fixed name the template module is written under.
	TemplateFileName = "envs.js"
)

// Settings holds per-project overrides for the installer. Zero values mean
// "use the default".
type Settings struct {
	// SourceDir is the destination directory for the template module,
	// relative to the project root.
	SourceDir string

	// PackageManager forces a package manager instead of lockfile detection.
	PackageManager string

	// OwnManifest overrides the path of this utility's own manifest,
	// relative to the project root when not absolute.
	OwnManifest string
}

// DestinationPath returns the absolute path the template module is written to.
func (s Settings) DestinationPath(root string) string {
	dir := s.SourceDir
	if dir == "" {
		dir = DefaultSourceDir
	}
	return filepath.Join(root, dir, TemplateFileName)
}

// OwnManifestPath returns the absolute path of this utility's own manifest.
// Without an override it points into the host's dependency storage, where a
// post-install hook finds its own package.
func (s Settings) OwnManifestPath(root string) string {
	if s.OwnManifest == "" {
		return filepath.Join(root, "node_modules", OwnPackageName, ManifestFileName)
	}
	if filepath.IsAbs(s.OwnManifest) {
		return filepath.Clean(s.OwnManifest)
	}
	return filepath.Join(root, s.OwnManifest)
}
