package config_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storytime/storygen/pkg/config"
)

func TestReader(t *testing.T) {
	t.Parallel()

	t.Run("complete source", func(t *testing.T) {
		t.Parallel()
		r := config.NewReader(config.MapEnv{
			"DATABASE_URL":     "postgres://localhost/story",
			"PORT":             "9000",
			"ENABLE_TELEMETRY": "True",
		})

		assert.Equal(t, "postgres://localhost/story", r.Required("DATABASE_URL"))
		assert.Equal(t, 9000, r.Int("PORT", 8787))
		assert.True(t, r.Bool("ENABLE_TELEMETRY", false))
		assert.Equal(t, "development", r.Optional("NODE_ENV", "development"))
		require.NoError(t, r.Err())
	})

	t.Run("collects every missing key", func(t *testing.T) {
		t.Parallel()
		r := config.NewReader(config.MapEnv{"JWT_SECRET": ""})

		r.Required("DATABASE_URL")
		r.Required("JWT_SECRET")
		r.Optional("NODE_ENV", "development")

		err := r.Err()
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrMissingRequired)
		assert.Equal(t, []string{"DATABASE_URL", "JWT_SECRET"}, config.MissingKeys(err))
	})
}

func TestMissingKeys(t *testing.T) {
	t.Parallel()

	assert.Nil(t, config.MissingKeys(nil))
	assert.Nil(t, config.MissingKeys(fmt.Errorf("unrelated")))

	wrapped := fmt.Errorf("startup: %w", &config.MissingVarError{Key: "AI_API_KEY"})
	assert.Equal(t, []string{"AI_API_KEY"}, config.MissingKeys(wrapped))
}
