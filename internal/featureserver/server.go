// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package featureserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-geo-toolkit/internal/config"
	"github.com/MKhiriev/go-geo-toolkit/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Server runs the development feature service over HTTP.
type Server struct {
	server *http.Server
	logger *logger.Logger
}

func NewServer(handler *Handler, cfg config.ServerConfig, logger *logger.Logger) *Server {
	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating feature server...")
	return &Server{
		server: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      handler.Init(),
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Msg("Launching HTTP server")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
