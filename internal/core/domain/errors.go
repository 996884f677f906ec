package domain

import "go.trai.ch/zerr"

var (
	// ErrProjectRootNotFound is returned when no ancestor directory qualifies as a project root.
	ErrProjectRootNotFound = zerr.New("project root not found")

	// ErrHostManifestNotFound is returned when the host project has no manifest to reconcile against.
	ErrHostManifestNotFound = zerr.New("host manifest not found")

	// ErrOwnManifestNotFound is returned when this utility's own manifest cannot be read.
	ErrOwnManifestNotFound = zerr.New("own manifest not found")

	// ErrManifestParseFailed is returned when a manifest file is not valid JSON.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrUnknownPackageManager is returned when a configured package manager is not supported.
	ErrUnknownPackageManager = zerr.New("unknown package manager, expected 'npm', 'yarn' or 'pnpm'")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrMaterializeFailed is returned when the template module cannot be written into the host tree.
	ErrMaterializeFailed = zerr.New("failed to materialize template module")

	// ErrInstallFailed is returned when the package manager add operation fails.
	ErrInstallFailed = zerr.New("failed to install dependencies")
)
