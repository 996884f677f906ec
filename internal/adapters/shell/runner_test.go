package shell

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RodrigoSpano/envsetup/internal/core/domain"
)

// recordingLogger captures log lines for assertions.
type recordingLogger struct {
	infos []string
	warns []string
	errs  []error
}

func (l *recordingLogger) Info(msg string) { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Warn(msg string) { l.warns = append(l.warns, msg) }
func (l *recordingLogger) Error(err error) { l.errs = append(l.errs, err) }

func TestRunner_AddDependencies(t *testing.T) {
	deps := []domain.Dependency{{Name: "dotenv", Version: "^16.4.0"}}

	t.Run("empty set never resolves the binary", func(t *testing.T) {
		log := &recordingLogger{}
		r := NewRunner(log)
		r.lookPath = func(string) (string, error) {
			t.Fatal("lookPath should not be called for an empty set")
			return "", nil
		}

		err := r.AddDependencies(context.Background(), t.TempDir(), domain.Npm, nil)
		require.NoError(t, err)
	})

	t.Run("unresolvable binary fails", func(t *testing.T) {
		log := &recordingLogger{}
		r := NewRunner(log)
		r.lookPath = func(string) (string, error) {
			return "", exec.ErrNotFound
		}

		err := r.AddDependencies(context.Background(), t.TempDir(), domain.Pnpm, deps)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to install dependencies")
	})

	t.Run("successful invocation runs once with the full set", func(t *testing.T) {
		truePath, err := exec.LookPath("true")
		if err != nil {
			t.Skip("true binary not available")
		}

		log := &recordingLogger{}
		r := NewRunner(log)
		r.lookPath = func(string) (string, error) { return truePath, nil }

		err = r.AddDependencies(context.Background(), t.TempDir(), domain.Yarn, deps)
		require.NoError(t, err)

		// The invocation is logged before running.
		require.NotEmpty(t, log.infos)
		assert.Contains(t, log.infos[0], "yarn add dotenv@^16.4.0")
	})

	t.Run("non-zero exit propagates as an error", func(t *testing.T) {
		falsePath, err := exec.LookPath("false")
		if err != nil {
			t.Skip("false binary not available")
		}

		log := &recordingLogger{}
		r := NewRunner(log)
		r.lookPath = func(string) (string, error) { return falsePath, nil }

		err = r.AddDependencies(context.Background(), t.TempDir(), domain.Npm, deps)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to install dependencies")
	})
}
