// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"github.com/MKhiriev/go-mage/internal/config"
	httpHandler "github.com/MKhiriev/go-mage/internal/handler/http"
	"github.com/MKhiriev/go-mage/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handler *httpHandler.Handler, cfg config.ClientTiles, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, ErrNoListenAddress
	}
	if handler == nil {
		return nil, ErrNoHandler
	}

	return &server{
		httpServer: newHTTPServer(handler.Init(), cfg.HTTPAddress, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until Shutdown is called or the listener fails.
func (s *server) RunServer() {
	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	s.httpServer.RunServer()
	s.logger.Info().Msg("server stopped")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
