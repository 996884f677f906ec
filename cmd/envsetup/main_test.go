package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/RodrigoSpano/envsetup/internal/app"
	"github.com/RodrigoSpano/envsetup/internal/core/domain"
	"github.com/RodrigoSpano/envsetup/internal/core/ports/mocks"
)

func mockComponents(t *testing.T) (*app.Components, *mocks.MockProjectResolver) {
	t.Helper()
	ctrl := gomock.NewController(t)

	resolver := mocks.NewMockProjectResolver(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	application := app.New(
		resolver,
		mocks.NewMockManifestReader(ctrl),
		mocks.NewMockMaterializer(ctrl),
		mocks.NewMockRunner(ctrl),
		logger,
	)

	return &app.Components{App: application, Logger: logger}, resolver
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components, _ := mockComponents(t)

	provider := func(context.Context) (*app.Components, error) {
		return components, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	components, resolver := mockComponents(t)

	// Root resolution failing makes the install command fail.
	resolver.EXPECT().Locate(".").Return("", domain.ErrProjectRootNotFound)

	provider := func(context.Context) (*app.Components, error) {
		return components, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"install"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
}
