// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval < 0 || cfg.Workers.PushConcurrency < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Tiles.CacheSize < 0 || cfg.Tiles.ScreenScale < 0 {
		return ErrInvalidTileConfigs
	}

	if cfg.App.EventID < 0 || (cfg.App.Username == "") != (cfg.App.Password == "") {
		return ErrInvalidAppConfigs
	}

	return nil
}
