// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-mage/internal/adapter"
	"github.com/MKhiriev/go-mage/internal/auth"
	"github.com/MKhiriev/go-mage/internal/changes"
	"github.com/MKhiriev/go-mage/internal/config"
	handler "github.com/MKhiriev/go-mage/internal/handler/http"
	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/internal/metrics"
	"github.com/MKhiriev/go-mage/internal/server"
	"github.com/MKhiriev/go-mage/internal/service"
	"github.com/MKhiriev/go-mage/internal/store"
	"github.com/MKhiriev/go-mage/internal/tile"
	"github.com/MKhiriev/go-mage/internal/utils"
	"github.com/MKhiriev/go-mage/internal/workers"
	"github.com/MKhiriev/go-mage/models"
)

const iconCacheSize = 256

// App is the offline-first client: local storage, push services, the tile
// host and the background workers over them.
type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	storages  *store.ClientStorages
	adapter   adapter.ServerAdapter
	services  *service.ClientServices
	workers   *workers.Workers
	logger    *logger.Logger
}

// NewApp wires every component of the client. Nothing is started until Run.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, changes.NewNotifier(), log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	recorder := metrics.NewRecorder()
	services := service.NewClientServices(storages, serverAdapter, recorder, cfg.Workers.PushConcurrency)

	provider, err := newTileProvider(cfg, services, recorder)
	if err != nil {
		storages.Close()
		return nil, err
	}

	h := handler.NewHandler(services, provider, recorder.Handler(), buildInfo, cfg.App.UserID, log)
	srv, err := server.NewServer(h, cfg.Tiles, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create tile host: %w", err)
	}

	return &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		storages:  storages,
		adapter:   serverAdapter,
		services:  services,
		workers:   workers.NewWorkers(services, srv, cfg.Workers, log),
		logger:    log,
	}, nil
}

func newTileProvider(cfg *config.ClientConfig, services *service.ClientServices, recorder *metrics.Recorder) (*tile.Provider, error) {
	icons, err := tile.NewIconRepository(cfg.Storage.Files.IconsDir, iconCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create icon repository: %w", err)
	}

	hasher := utils.NewHasher(cfg.App.HashKey)
	repository := tile.NewObservationsTileRepository(services.ObservationLocations, icons, hasher, cfg.Tiles.ScreenScale)

	provider, err := tile.NewProvider(repository, hasher, cfg.Tiles.CacheSize, recorder)
	if err != nil {
		return nil, fmt.Errorf("create tile provider: %w", err)
	}
	provider.SetFilter(models.ObservationFilter{EventID: cfg.App.EventID})
	return provider, nil
}

// Run starts the workers and blocks until SIGTERM, SIGINT or SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	ctx = logger.ContextWith(ctx, a.logger)

	a.signIn(ctx)

	a.workers.Run(ctx)
	a.logger.Info().
		Str("build", a.buildInfo.String()).
		Str("tiles", a.cfg.Tiles.HTTPAddress).
		Msg("client started")

	<-ctx.Done()

	a.logger.Info().Msg("stopping client")
	a.workers.Stop()

	if err := a.storages.Close(); err != nil {
		return fmt.Errorf("close local storage: %w", err)
	}
	a.logger.Info().Msg("client stopped gracefully")
	return nil
}

// signIn authenticates with the local strategy when credentials are
// configured. A failed sign-in leaves the client offline: local writes keep
// working and stay dirty until a later run pushes them.
func (a *App) signIn(ctx context.Context) {
	if a.cfg.App.Username == "" {
		a.logger.Info().Msg("no credentials configured, running offline")
		return
	}

	modules, err := auth.Modules(ctx, a.adapter)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server unreachable, running offline")
		return
	}

	status, err := auth.Login(ctx, modules, auth.LocalModuleName, models.SignInParams{
		Username: a.cfg.App.Username,
		Password: a.cfg.App.Password,
		UID:      a.cfg.App.UserID,
	})
	if err != nil {
		a.logger.Warn().Err(err).Str("status", status.String()).Msg("sign in failed, running offline")
		return
	}
	a.logger.Info().Str("status", status.String()).Msg("signed in")
}
