package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/student-portal/internal/adapter"
	"github.com/MKhiriev/student-portal/internal/config"
	"github.com/MKhiriev/student-portal/internal/directory"
	"github.com/MKhiriev/student-portal/internal/logger"
	"github.com/MKhiriev/student-portal/internal/service"
	"github.com/MKhiriev/student-portal/internal/store"
	"github.com/MKhiriev/student-portal/internal/tui"
	"github.com/MKhiriev/student-portal/internal/workers"
	"github.com/MKhiriev/student-portal/models"
)

// App is the terminal client.
type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	workers  *workers.Workers
	ui       *tui.TUI

	logger *logger.Logger
}

// NewApp builds every component of the client. The returned App owns the
// opened cache and releases it when Run returns.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	usersAdapter, err := adapter.NewHTTPUsersAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create users adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	directoryStore := directory.NewStore()
	bridge := tui.NewBridge()

	services := service.NewClientServices(usersAdapter, directoryStore, storages, service.UI{
		Loading:   bridge,
		Notifier:  bridge,
		Navigator: bridge,
	}, cfg.App.AdminID, log)

	ui := tui.New(bridge, tui.Deps{
		Directory: services.Directory,
		Store:     directoryStore,
		AdminID:   cfg.App.AdminID,
		ExportDir: cfg.App.ExportDir,
		BuildInfo: buildInfo,
	}, log)

	return &App{
		services: services,
		storages: storages,
		workers: workers.New(
			workers.NewRefreshWorker(services.RefreshJob, cfg.App.AdminID, cfg.Workers.RefreshInterval),
			services.CacheWriter,
		),
		ui:     ui,
		logger: log,
	}, nil
}

// Run seeds the directory from the cache, starts the workers and blocks in
// the terminal UI.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := a.storages.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "App.Run").Msg("failed to close local storage")
			err = errors.Join(err, closeErr)
		}
	}()

	seeded, seedErr := a.services.CacheWriter.Seed(ctx)
	if seedErr != nil {
		a.logger.Warn().Err(seedErr).Str("func", "App.Run").Msg("directory cache could not be loaded")
	} else {
		a.logger.Info().Int("users", seeded).Msg("directory seeded from cache")
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
