package app

import (
	"log/slog"
	"net/http"

	"tabiplan.jp/internal/config"
	"tabiplan.jp/internal/refdata"
	"tabiplan.jp/internal/trip"
	"tabiplan.jp/internal/weather"
)

// Application wires the services behind the HTTP API: the reference data
// store and its loader, the weather service, and the saved plan store.
type Application struct {
	Config         *config.Config
	Logger         *slog.Logger
	RefData        *refdata.Store
	RefDataService *refdata.Service
	Weather        *weather.Service
	Plans          *trip.Store
	Version        string
}

// New creates and wires all dependencies for the Application. The reference
// store starts empty; the caller loads a dataset through RefDataService
// before serving traffic.
func New(cfg *config.Config, logger *slog.Logger, client *http.Client, plans *trip.Store, version string) *Application {
	store := refdata.NewStore()

	return &Application{
		Config:         cfg,
		Logger:         logger,
		RefData:        store,
		RefDataService: refdata.NewService(logger, client, store),
		Weather:        weather.NewService(logger, client, store),
		Plans:          plans,
		Version:        version,
	}
}
