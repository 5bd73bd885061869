package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// AdminID is the administrator every directory call is scoped to.
	AdminID string
	// ExportDir is where spreadsheet exports are written.
	ExportDir string
	// LogFile is the client log file path.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the portal API.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string of the snapshot cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the directory is re-fetched.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			AdminID:   cfg.App.AdminID,
			ExportDir: cfg.App.ExportDir,
			LogFile:   cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

// FakeAPIConfig is the configuration of cmd/fakeapi.
type FakeAPIConfig struct {
	// Address is the listen address in host:port form.
	Address string
	// AdminID is the administrator the seeded records belong to.
	AdminID string
	// SeedFile is an optional workbook whose Users sheet seeds the API.
	SeedFile string
}

// GetFakeAPIConfig builds the fake API view of the merged configuration.
func GetFakeAPIConfig() (*FakeAPIConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	fakeCfg := &FakeAPIConfig{
		Address:  cfg.FakeAPI.Address,
		AdminID:  cfg.App.AdminID,
		SeedFile: cfg.FakeAPI.SeedFile,
	}
	if fakeCfg.Address == "" {
		return nil, ErrInvalidFakeAPIConfigs
	}
	return fakeCfg, nil
}
