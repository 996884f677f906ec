package domain

import "go.trai.ch/zerr"

// PackageManager identifies the package manager a host project uses.
type PackageManager string

const (
	// Npm is the default package manager.
	Npm PackageManager = "npm"
	// Yarn is the yarn package manager.
	Yarn PackageManager = "yarn"
	// Pnpm is the pnpm package manager.
	Pnpm PackageManager = "pnpm"
)

// ParsePackageManager converts a configured string into a PackageManager.
func ParsePackageManager(s string) (PackageManager, error) {
	switch PackageManager(s) {
	case Npm, Yarn, Pnpm:
		return PackageManager(s), nil
	default:
		return "", zerr.With(ErrUnknownPackageManager, "package_manager", s)
	}
}

// Binary returns the executable name of the package manager.
func (pm PackageManager) Binary() string {
	return string(pm)
}

// AddArgs returns the argument list for the manager's add/install operation
// covering all given dependencies in a single invocation.
func (pm PackageManager) AddArgs(deps []Dependency) []string {
	verb := "add"
	if pm == Npm {
		verb = "install"
	}

	args := make([]string, 0, len(deps)+1)
	args = append(args, verb)
	for _, dep := range deps {
		args = append(args, dep.Spec())
	}
	return args
}
