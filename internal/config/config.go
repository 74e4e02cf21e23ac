// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for go-mage.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the signed-in user, the current event and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local SQLite database and the icon directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the MAGE server address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the periodic sync and push pool settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Tiles holds the local tile host settings.
	Tiles Tiles `envPrefix:"TILES_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// UserID is the server id of the signed-in user. Written into local
	// mutations (e.g. who flagged an observation important).
	// Env: APP_USER_ID
	UserID string `env:"USER_ID"`

	// EventID is the MAGE event whose observations are synced and rendered.
	// Env: APP_EVENT_ID
	EventID int64 `env:"EVENT_ID"`

	// HashKey keys the blake2b fingerprints of tile cache source keys.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name. Empty means debug.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the client log file path.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Username and Password sign the client in with the local strategy on
	// start. Without them the client runs offline until restarted.
	// Env: APP_USERNAME, APP_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds file-system locations.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the path (or file: URI) of the SQLite database.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings.
type Files struct {
	// IconsDir is the root of the downloaded event form icons.
	// Env: STORAGE_FILES_ICONS_DIR
	IconsDir string `env:"ICONS_DIR"`
}

// Adapter holds settings of the MAGE server connection.
type Adapter struct {
	// HTTPAddress is the base URL or host:port of the MAGE server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// SyncInterval is the period of the background sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// PushConcurrency bounds parallel pushes within one sync call.
	// Env: WORKERS_PUSH_CONCURRENCY
	PushConcurrency int `env:"PUSH_CONCURRENCY"`
}

// Tiles holds configuration of the local map tile host.
type Tiles struct {
	// HTTPAddress is the listen address of the tile host, "host:port".
	// Env: TILES_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// CacheSize is the number of rendered tiles kept in memory.
	// Env: TILES_CACHE_SIZE
	CacheSize int `env:"CACHE_SIZE"`

	// ScreenScale is the device pixel ratio icons are rendered at.
	// Env: TILES_SCREEN_SCALE
	ScreenScale float64 `env:"SCREEN_SCALE"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources override earlier
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
