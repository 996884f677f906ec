package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RodrigoSpano/envsetup/internal/core/domain"
)

func TestManifest_Declares(t *testing.T) {
	m := domain.Manifest{
		Dependencies:    map[string]string{"dotenv": "^16.4.0"},
		DevDependencies: map[string]string{"jest": "^29.0.0"},
	}

	assert.True(t, m.Declares("dotenv"))
	assert.True(t, m.Declares("jest"))
	assert.False(t, m.Declares("joi"))
}

func TestDependency_Spec(t *testing.T) {
	assert.Equal(t, "joi@^17.11.0", domain.Dependency{Name: "joi", Version: "^17.11.0"}.Spec())
	assert.Equal(t, "joi", domain.Dependency{Name: "joi"}.Spec())
}

func TestMissingDependencies(t *testing.T) {
	own := domain.Manifest{
		Name: domain.OwnPackageName,
		Dependencies: map[string]string{
			"joi":    "^17.11.0",
			"dotenv": "^16.4.0",
		},
		DevDependencies: map[string]string{
			"jest": "^29.0.0",
		},
	}

	t.Run("collects undeclared dependencies from both categories sorted by name", func(t *testing.T) {
		host := domain.Manifest{Dependencies: map[string]string{"express": "^4.18.0"}}

		missing := domain.MissingDependencies(own, host)
		assert.Equal(t, []domain.Dependency{
			{Name: "dotenv", Version: "^16.4.0"},
			{Name: "jest", Version: "^29.0.0"},
			{Name: "joi", Version: "^17.11.0"},
		}, missing)
	})

	t.Run("host declarations under either category satisfy", func(t *testing.T) {
		host := domain.Manifest{
			Dependencies:    map[string]string{"dotenv": "^16.0.0"},
			DevDependencies: map[string]string{"joi": "^17.0.0", "jest": "^29.0.0"},
		}

		missing := domain.MissingDependencies(own, host)
		assert.Empty(t, missing)
	})

	t.Run("duplicate own declaration yields one entry", func(t *testing.T) {
		duplicated := domain.Manifest{
			Dependencies:    map[string]string{"dotenv": "^16.4.0"},
			DevDependencies: map[string]string{"dotenv": "^16.4.0"},
		}

		missing := domain.MissingDependencies(duplicated, domain.Manifest{})
		assert.Equal(t, []domain.Dependency{{Name: "dotenv", Version: "^16.4.0"}}, missing)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		host := domain.Manifest{}
		first := domain.MissingDependencies(own, host)
		second := domain.MissingDependencies(own, host)
		assert.Equal(t, first, second)
	})
}
