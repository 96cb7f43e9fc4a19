package health

import (
	"Fitness-Coach-API/domain"
	"Fitness-Coach-API/pkg/store"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// listStore serves canned collection names or a canned error.
type listStore struct {
	store.DocumentStore
	names []string
	err   error
}

func (s *listStore) Available() bool {
	return true
}

func (s *listStore) ListCollectionNames(context.Context) ([]string, error) {
	return s.names, s.err
}

func TestHealthService_DiagnoseWorking(t *testing.T) {
	s := store.NewMemoryStore(nil)
	_, err := s.CreateDocument(context.Background(), "meallog", bson.M{"user_id": "u1"})
	require.NoError(t, err)

	svc := NewHealthService(s, StoreSettings{DatabaseURL: "mongodb://localhost:27017", DatabaseName: "fitness"})
	res := svc.Diagnose(context.Background())

	assert.Equal(t, domain.StatusBackendRunning, res.Backend)
	assert.Equal(t, domain.StatusDatabaseWorking, res.Database)
	assert.Equal(t, domain.ConnectionConnected, res.ConnectionStatus)
	assert.Equal(t, []string{"meallog"}, res.Collections)
	require.NotNil(t, res.DatabaseURL)
	assert.Equal(t, domain.StatusConfigSet, *res.DatabaseURL)
	require.NotNil(t, res.DatabaseName)
	assert.Equal(t, domain.StatusConfigSet, *res.DatabaseName)
}

func TestHealthService_DiagnoseSettingsNotSet(t *testing.T) {
	svc := NewHealthService(store.NewMemoryStore(nil), StoreSettings{})
	res := svc.Diagnose(context.Background())

	require.NotNil(t, res.DatabaseURL)
	assert.Equal(t, domain.StatusConfigNotSet, *res.DatabaseURL)
	assert.Equal(t, domain.StatusConfigNotSet, *res.DatabaseName)
	assert.Equal(t, []string{}, res.Collections)
}

func TestHealthService_DiagnoseUnavailable(t *testing.T) {
	svc := NewHealthService(store.NewMongoStore(nil, nil), StoreSettings{})
	res := svc.Diagnose(context.Background())

	assert.Equal(t, domain.StatusDatabaseNotInit, res.Database)
	assert.Equal(t, domain.ConnectionNotConnected, res.ConnectionStatus)
	assert.Nil(t, res.DatabaseURL)
	assert.Nil(t, res.DatabaseName)
	assert.Empty(t, res.Collections)
}

func TestHealthService_DiagnoseNoStore(t *testing.T) {
	res := NewHealthService(nil, StoreSettings{}).Diagnose(context.Background())

	assert.Equal(t, domain.StatusDatabaseMissing, res.Database)
	assert.Equal(t, domain.ConnectionNotConnected, res.ConnectionStatus)
}

func TestHealthService_DiagnoseListError(t *testing.T) {
	longErr := errors.New(strings.Repeat("x", 49) + "éyz trailing detail")
	svc := NewHealthService(&listStore{err: longErr}, StoreSettings{})

	res := svc.Diagnose(context.Background())

	assert.Equal(t, connectedButErrorPrefix+strings.Repeat("x", 49)+"é", res.Database)
	assert.Equal(t, domain.ConnectionConnected, res.ConnectionStatus)
	assert.Empty(t, res.Collections)
}

func TestHealthService_DiagnoseCapsCollections(t *testing.T) {
	names := make([]string, 15)
	for i := range names {
		names[i] = fmt.Sprintf("c%02d", i)
	}
	svc := NewHealthService(&listStore{names: names}, StoreSettings{})

	res := svc.Diagnose(context.Background())

	assert.Equal(t, names[:10], res.Collections)
	assert.Equal(t, domain.StatusDatabaseWorking, res.Database)
}

func TestHealthService_Schemas(t *testing.T) {
	svc := NewHealthService(nil, StoreSettings{})

	assert.Equal(t, []string{"user", "fooditem", "meallog", "exercise"}, svc.Schemas().Collections)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 50))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "日本", Truncate("日本語", 2))
}
