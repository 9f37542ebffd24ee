package app

import (
	"net/http"

	"chartleap/internal/domain"
	"chartleap/internal/remote"
	"chartleap/internal/store"
)

// Wire bundles the settings store, engine and optional server client for
// the CLI.
type Wire struct {
	SettingsStore *store.SettingsFileStore
	Settings      domain.Settings
	Engine        *Engine

	// Plots is the engine's service, or Remote when a server is configured.
	Plots  domain.PlotService
	Remote *remote.HTTPClient
	HTTP   *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	settingsStore := store.NewSettingsFileStore(cfg.Home)
	settings, err := settingsStore.LoadSettings()
	if err != nil {
		return nil, err
	}

	engine, err := NewEngine(settings)
	if err != nil {
		return nil, err
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	w := &Wire{
		SettingsStore: settingsStore,
		Settings:      settings,
		Engine:        engine,
		Plots:         engine.Plots,
		HTTP:          httpClient,
	}
	if cfg.ServerURL != "" {
		rc := remote.NewHTTP(cfg.ServerURL)
		rc.HTTP = httpClient
		w.Remote = rc
		w.Plots = rc
	}
	return w, nil
}
