package main

import (
	"Fitness-Coach-API/internal/utils"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ListenFailureReturnsError(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "memory")
	t.Setenv("PORT", "not-a-port")
	t.Setenv("LOG_FILE", "")
	utils.LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	utils.InitValidator()

	err := run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-port")
}
