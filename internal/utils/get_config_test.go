package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("PORT", "")

	LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, "", GetConfig("DATABASE_URL"))
	assert.Equal(t, DefaultPort, GetConfig("PORT"))
	assert.Equal(t, DefaultDatabaseDriver, GetConfig("DATABASE_DRIVER"))
	assert.Equal(t, 0, GetConfigInt("RATE_LIMIT_MAX"))
	assert.Equal(t, "", GetConfig("UNKNOWN"))
}

func TestLoadConfigFrom_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"DATABASE_URL: mongodb://file:27017\n"+
			"DATABASE_NAME: fitness\n"+
			"PORT: \"9000\"\n"+
			"RATE_LIMIT_MAX: 20\n",
	), 0o600))

	t.Setenv("DATABASE_URL", "mongodb://env:27017")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("PORT", "")
	t.Setenv("RATE_LIMIT_MAX", "5")

	LoadConfigFrom(path)

	assert.Equal(t, "mongodb://env:27017", GetConfig("DATABASE_URL"))
	assert.Equal(t, "fitness", GetConfig("DATABASE_NAME"))
	assert.Equal(t, "9000", GetConfig("PORT"))
	assert.Equal(t, 5, GetConfigInt("RATE_LIMIT_MAX"))
}

func TestLoadConfigFrom_InvalidRateLimitIgnored(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "lots")

	LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, 0, GetConfigInt("RATE_LIMIT_MAX"))
}
