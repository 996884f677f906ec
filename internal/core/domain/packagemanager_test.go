package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RodrigoSpano/envsetup/internal/core/domain"
)

func TestParsePackageManager(t *testing.T) {
	for _, valid := range []string{"npm", "yarn", "pnpm"} {
		pm, err := domain.ParsePackageManager(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, pm.Binary())
	}

	_, err := domain.ParsePackageManager("bower")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownPackageManager))
}

func TestPackageManager_AddArgs(t *testing.T) {
	deps := []domain.Dependency{
		{Name: "dotenv", Version: "^16.4.0"},
		{Name: "joi", Version: "^17.11.0"},
	}

	assert.Equal(t, []string{"install", "dotenv@^16.4.0", "joi@^17.11.0"}, domain.Npm.AddArgs(deps))
	assert.Equal(t, []string{"add", "dotenv@^16.4.0", "joi@^17.11.0"}, domain.Yarn.AddArgs(deps))
	assert.Equal(t, []string{"add", "dotenv@^16.4.0", "joi@^17.11.0"}, domain.Pnpm.AddArgs(deps))
}
