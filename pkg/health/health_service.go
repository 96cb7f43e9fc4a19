package health

import (
	"Fitness-Coach-API/domain"
	"Fitness-Coach-API/entities"
	"Fitness-Coach-API/internal/logger"
	"Fitness-Coach-API/pkg/store"
	"context"

	"go.uber.org/zap"
)

const connectedButErrorPrefix = "⚠️  Connected but Error: "

type (
	HealthService interface {
		Diagnose(ctx context.Context) domain.DiagnosticsResponse
		Schemas() domain.SchemaResponse
	}

	// StoreSettings reports which connection settings were provided, never
	// their values.
	StoreSettings struct {
		DatabaseURL  string
		DatabaseName string
	}

	healthService struct {
		store    store.DocumentStore
		settings StoreSettings
	}
)

func NewHealthService(store store.DocumentStore, settings StoreSettings) HealthService {
	return &healthService{
		store:    store,
		settings: settings,
	}
}

// Diagnose probes the store. Probe failures are reported in the response and
// never returned.
func (s *healthService) Diagnose(ctx context.Context) domain.DiagnosticsResponse {
	res := domain.DiagnosticsResponse{
		Backend:          domain.StatusBackendRunning,
		Database:         domain.StatusDatabaseMissing,
		ConnectionStatus: domain.ConnectionNotConnected,
		Collections:      []string{},
	}

	if s.store == nil {
		return res
	}
	if !s.store.Available() {
		res.Database = domain.StatusDatabaseNotInit
		return res
	}

	res.Database = domain.StatusDatabaseAvailable
	res.DatabaseURL = settingStatus(s.settings.DatabaseURL)
	res.DatabaseName = settingStatus(s.settings.DatabaseName)
	res.ConnectionStatus = domain.ConnectionConnected

	names, err := s.store.ListCollectionNames(ctx)
	if err != nil {
		logger.Warn("diagnostics: list collections failed", zap.Error(err))
		res.Database = connectedButErrorPrefix + Truncate(err.Error(), domain.DiagnosticsErrorMaxRunes)
		return res
	}
	if len(names) > domain.DiagnosticsMaxCollection {
		names = names[:domain.DiagnosticsMaxCollection]
	}
	res.Collections = names
	res.Database = domain.StatusDatabaseWorking
	return res
}

func (s *healthService) Schemas() domain.SchemaResponse {
	return domain.SchemaResponse{
		Collections: append([]string(nil), entities.Collections...),
	}
}

func settingStatus(value string) *string {
	status := domain.StatusConfigNotSet
	if value != "" {
		status = domain.StatusConfigSet
	}
	return &status
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
