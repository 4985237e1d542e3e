// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-geo-toolkit/internal/adapter"
	"github.com/MKhiriev/go-geo-toolkit/internal/logger"
	"github.com/MKhiriev/go-geo-toolkit/internal/service"
	"github.com/MKhiriev/go-geo-toolkit/internal/store"
)

type App struct {
	services *service.ClientServices
	repo     store.LocalEditRepository
	adapter  adapter.FeatureServiceAdapter
	ui       UI
	workers  BackgroundWorkers

	logger *logger.Logger
}

func NewApp(
	services *service.ClientServices,
	repo store.LocalEditRepository,
	serviceAdapter adapter.FeatureServiceAdapter,
	ui UI,
	workers BackgroundWorkers,
	logger *logger.Logger,
) (*App, error) {
	if services == nil || repo == nil || serviceAdapter == nil || ui == nil || workers == nil {
		return nil, fmt.Errorf("client app: missing dependency")
	}
	return &App{
		services: services,
		repo:     repo,
		adapter:  serviceAdapter,
		ui:       ui,
		workers:  workers,
		logger:   logger,
	}, nil
}

// Run loads the feature service, restores the dirty tables left from the
// previous run and blocks in the UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	info, err := a.adapter.ServiceInfo(ctx)
	if err != nil {
		return fmt.Errorf("load feature service: %w", err)
	}
	tables := a.services.Catalog.Load(info)
	a.logger.Info().
		Str("service_url", info.ServiceURL).
		Int("tables", len(tables)).
		Bool("batched_edits", info.SupportsBatchedEdits).
		Msg("feature service loaded")

	restored, err := service.RestoreDirtyTables(ctx, a.repo, a.services.Catalog, a.services.DirtyTables)
	if err != nil {
		return fmt.Errorf("restore dirty tables: %w", err)
	}
	if restored > 0 {
		a.logger.Info().Int("tables", restored).Msg("tables with unsubmitted edits restored")
	}

	a.workers.Run(ctx)
	defer a.workers.Stop()

	if err = a.ui.MainLoop(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
