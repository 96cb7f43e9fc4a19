package config

import (
	"Fitness-Coach-API/internal/utils"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func loadTestConfig(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range []string{"DATABASE_URL", "DATABASE_NAME", "DATABASE_DRIVER"} {
		t.Setenv(key, env[key])
	}
	utils.LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestNewDocumentStore_Memory(t *testing.T) {
	loadTestConfig(t, map[string]string{"DATABASE_DRIVER": DriverMemory})

	s, db := NewDocumentStore(context.Background(), utils.NewValidator())

	assert.Nil(t, db)
	assert.True(t, s.Available())
}

func TestNewDocumentStore_NotConfigured(t *testing.T) {
	loadTestConfig(t, map[string]string{})

	s, db := NewDocumentStore(context.Background(), utils.NewValidator())

	assert.Nil(t, db)
	assert.False(t, s.Available())
}

func TestConnectDB_NotConfigured(t *testing.T) {
	loadTestConfig(t, map[string]string{"DATABASE_URL": "mongodb://localhost:27017"})

	db, err := ConnectDB(context.Background())

	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrDatabaseNotConfigured)
}
