package domain

const (
	MessageBackendRunning = "Fitness Coach Backend running"

	StatusBackendRunning     = "✅ Running"
	StatusDatabaseMissing    = "❌ Not Available"
	StatusDatabaseAvailable  = "✅ Available"
	StatusDatabaseWorking    = "✅ Connected & Working"
	StatusDatabaseNotInit    = "⚠️  Available but not initialized"
	StatusConfigSet          = "✅ Set"
	StatusConfigNotSet       = "❌ Not Set"
	ConnectionConnected      = "Connected"
	ConnectionNotConnected   = "Not Connected"
	DiagnosticsErrorMaxRunes = 50
	DiagnosticsMaxCollection = 10
)

type (
	MessageResponse struct {
		Message string `json:"message"`
	}

	DiagnosticsResponse struct {
		Backend          string   `json:"backend"`
		Database         string   `json:"database"`
		DatabaseURL      *string  `json:"database_url"`
		DatabaseName     *string  `json:"database_name"`
		ConnectionStatus string   `json:"connection_status"`
		Collections      []string `json:"collections"`
	}

	SchemaResponse struct {
		Collections []string `json:"collections"`
	}
)
