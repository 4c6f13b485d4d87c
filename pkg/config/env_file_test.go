package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storytime/storygen/pkg/config"
	"github.com/storytime/storygen/pkg/httpserver"
)

var envFileVars = []string{
	"NODE_ENV", "PORT", "POSTHOG_HOST", "HTTP_READ_TIMEOUT", "PG_MAX_OPEN_CONNS",
	"ENABLE_TELEMETRY", "API_VERSION", "AI_API_URL",
}

func TestLoadEnv_SingleFile(t *testing.T) {
	cleanEnv(t, envFileVars...)

	require.NoError(t, config.LoadEnv("testdata/.env.base"))

	src := config.OSEnv{}
	assert.Equal(t, "staging", config.Optional(src, "NODE_ENV", "development"))
	assert.Equal(t, 9000, config.Int(src, "PORT", 8787))
	assert.Equal(t, "https://eu.posthog.com", config.Optional(src, "POSTHOG_HOST", ""))
	// empty in the file still means "use the default"
	assert.False(t, config.Bool(src, "ENABLE_TELEMETRY", false))

	var srv httpserver.Config
	require.NoError(t, config.Load(&srv))
	assert.Equal(t, 10*time.Second, srv.ReadTimeout)
}

func TestLoadEnv_LaterFilesWin(t *testing.T) {
	cleanEnv(t, envFileVars...)

	require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.local"))

	src := config.OSEnv{}
	assert.Equal(t, 9100, config.Int(src, "PORT", 8787))
	assert.Equal(t, "v2", config.Optional(src, "API_VERSION", "v1"))
	assert.Equal(t, "staging", config.Optional(src, "NODE_ENV", "development"))

	var srv httpserver.Config
	require.NoError(t, config.Load(&srv))
	assert.Equal(t, 15*time.Second, srv.ReadTimeout)
}

func TestLoadEnv_ProcessEnvWins(t *testing.T) {
	cleanEnv(t, envFileVars...)
	t.Setenv("PORT", "7000")

	require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.local"))
	assert.Equal(t, "7000", os.Getenv("PORT"))
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/.env.base", "testdata/.env.missing")
	require.ErrorIs(t, err, config.ErrLoadingEnvFile)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), ".env.missing")
}

func TestLoadEnv_DefaultFile(t *testing.T) {
	cleanEnv(t, envFileVars...)

	t.Run("loads .env from the working directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("AI_API_URL=https://ai.example.com\n"), 0o600))
		t.Chdir(dir)

		require.NoError(t, config.LoadEnv())
		assert.Equal(t, "https://ai.example.com", os.Getenv("AI_API_URL"))
	})

	t.Run("missing .env reports not exist", func(t *testing.T) {
		t.Chdir(t.TempDir())

		err := config.LoadEnv()
		require.ErrorIs(t, err, config.ErrLoadingEnvFile)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestMustLoadEnv(t *testing.T) {
	cleanEnv(t, envFileVars...)

	assert.NotPanics(t, func() { config.MustLoadEnv("testdata/.env.base") })
	assert.Panics(t, func() { config.MustLoadEnv("testdata/.env.missing") })
}
