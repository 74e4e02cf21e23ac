// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] to unset fields.
const (
	DefaultSyncInterval    = 5 * time.Minute
	DefaultRequestTimeout  = 30 * time.Second
	DefaultPushConcurrency = 1
	DefaultTileCacheSize   = 512
	DefaultScreenScale     = 2
	DefaultTileAddress     = "localhost:8181"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	UserID   string
	EventID  int64
	HashKey  string
	Version  string
	LogLevel string
	LogFile  string
	Username string
	Password string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the MAGE server base address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database path.
	DSN string
}

// ClientFiles contains local file-system locations.
type ClientFiles struct {
	IconsDir string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB    ClientDB
	Files ClientFiles
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background sync job runs.
	SyncInterval time.Duration
	// PushConcurrency bounds parallel pushes within one sync call.
	PushConcurrency int
}

// ClientTiles contains tile rendering and tile host settings.
type ClientTiles struct {
	HTTPAddress string
	CacheSize   int
	ScreenScale float64
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Tiles   ClientTiles
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg onto the client view and fills defaults.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			UserID:   cfg.App.UserID,
			EventID:  cfg.App.EventID,
			HashKey:  cfg.App.HashKey,
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
			Username: cfg.App.Username,
			Password: cfg.App.Password,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:    ClientDB{DSN: cfg.Storage.DB.DSN},
			Files: ClientFiles{IconsDir: cfg.Storage.Files.IconsDir},
		},
		Workers: ClientWorkers{
			SyncInterval:    cfg.Workers.SyncInterval,
			PushConcurrency: cfg.Workers.PushConcurrency,
		},
		Tiles: ClientTiles{
			HTTPAddress: cfg.Tiles.HTTPAddress,
			CacheSize:   cfg.Tiles.CacheSize,
			ScreenScale: cfg.Tiles.ScreenScale,
		},
	}

	clientCfg.applyDefaults()
	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Workers.PushConcurrency == 0 {
		cfg.Workers.PushConcurrency = DefaultPushConcurrency
	}
	if cfg.Tiles.HTTPAddress == "" {
		cfg.Tiles.HTTPAddress = DefaultTileAddress
	}
	if cfg.Tiles.CacheSize == 0 {
		cfg.Tiles.CacheSize = DefaultTileCacheSize
	}
	if cfg.Tiles.ScreenScale == 0 {
		cfg.Tiles.ScreenScale = DefaultScreenScale
	}
}
