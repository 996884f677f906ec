// Package shell invokes the host's package manager as a subprocess.
package shell

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/RodrigoSpano/envsetup/internal/core/domain"
	"github.com/RodrigoSpano/envsetup/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec.
type Runner struct {
	logger ports.Logger

	// lookPath resolves the package manager binary. Overridable in tests.
	lookPath func(file string) (string, error)
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger:   logger,
		lookPath: exec.LookPath,
	}
}

var _ ports.Runner = (*Runner)(nil)

// AddDependencies runs the package manager's add/install operation once with
// the full dependency set, from the project root. Failures carry the exit
// code and trimmed stderr; there is no retry.
func (r *Runner) AddDependencies(ctx context.Context, root string, pm domain.PackageManager, deps []domain.Dependency) error {
	if len(deps) == 0 {
		return nil
	}

	binary, err := r.lookPath(pm.Binary())
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrInstallFailed.Error())
		return zerr.With(wrapped, "package_manager", pm.Binary())
	}

	args := pm.AddArgs(deps)
	r.logger.Info(pm.Binary() + " " + strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec // args derive from manifest entries
	cmd.Dir = root
	cmd.Stdout = &logWriter{logger: r.logger}

	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.Wrap(err, domain.ErrInstallFailed.Error())
		wrapped = zerr.With(wrapped, "package_manager", pm.Binary())
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		return zerr.With(wrapped, "stderr", strings.TrimSpace(stderr.String()))
	}

	return nil
}

type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		w.logger.Info(line)
	}
	return len(p), nil
}
