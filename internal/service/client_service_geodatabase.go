// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-geo-toolkit/internal/adapter"
	"github.com/MKhiriev/go-geo-toolkit/internal/logger"
	"github.com/MKhiriev/go-geo-toolkit/internal/store"
	"github.com/MKhiriev/go-geo-toolkit/models"
)

type serviceGeodatabase struct {
	repo    store.LocalEditRepository
	adapter adapter.FeatureServiceAdapter
	catalog *Catalog

	logger *logger.Logger
}

// NewServiceGeodatabase returns a [GeodatabaseEditor] that reads pending
// edits from storages and sends them through serviceAdapter. Accepted edits
// are removed from the local store; rejected ones stay pending.
func NewServiceGeodatabase(storages *store.ClientStorages, serviceAdapter adapter.FeatureServiceAdapter, catalog *Catalog, logger *logger.Logger) GeodatabaseEditor {
	return &serviceGeodatabase{
		repo:    storages.EditRepository,
		adapter: serviceAdapter,
		catalog: catalog,
		logger:  logger,
	}
}

func (s *serviceGeodatabase) HasLocalEdits(ctx context.Context, gdb models.Geodatabase) (bool, error) {
	tables := s.catalog.Tables(gdb.ID)
	if len(tables) == 0 {
		return false, nil
	}

	ids := make([]uuid.UUID, 0, len(tables))
	for _, t := range tables {
		ids = append(ids, t.ID)
	}

	count, err := s.repo.CountPendingEdits(ctx, ids...)
	if err != nil {
		return false, fmt.Errorf("count local edits: %w", err)
	}
	return count > 0, nil
}

func (s *serviceGeodatabase) ApplyTableEdits(ctx context.Context, table models.FeatureTable) ([]models.EditResult, error) {
	log := logger.FromContext(ctx)

	edits, err := s.repo.PendingEdits(ctx, table.ID)
	if err != nil {
		return nil, fmt.Errorf("load pending edits: %w", err)
	}
	if len(edits) == 0 {
		return nil, nil
	}

	results, err := s.adapter.ApplyEdits(ctx, table, edits)
	if err != nil {
		return nil, err
	}

	accepted := acceptedEditIDs(results)
	log.Info().
		Str("table", table.Name).
		Int("submitted", len(edits)).
		Int("accepted", len(accepted)).
		Msg("table edits applied")

	if err = s.repo.DeleteEdits(ctx, accepted...); err != nil {
		return results, fmt.Errorf("discard accepted edits: %w", err)
	}
	return results, nil
}

func (s *serviceGeodatabase) ApplyGeodatabaseEdits(ctx context.Context, gdb models.Geodatabase) ([]models.TableEditResult, error) {
	log := logger.FromContext(ctx)

	var (
		layers    []models.LayerEdits
		submitted int
	)
	for _, table := range s.catalog.Tables(gdb.ID) {
		edits, err := s.repo.PendingEdits(ctx, table.ID)
		if err != nil {
			return nil, fmt.Errorf("load pending edits of %q: %w", table.Name, err)
		}
		if len(edits) > 0 {
			layers = append(layers, models.LayerEdits{Table: table, Edits: edits})
			submitted += len(edits)
		}
	}
	if len(layers) == 0 {
		return nil, nil
	}

	results, err := s.adapter.ApplyServiceEdits(ctx, gdb, layers)
	if err != nil {
		return nil, err
	}

	var accepted []uuid.UUID
	for _, r := range results {
		accepted = append(accepted, acceptedEditIDs(r.Results)...)
	}
	log.Info().
		Str("service", gdb.ServiceURL).
		Int("layers", len(layers)).
		Int("submitted", submitted).
		Int("accepted", len(accepted)).
		Msg("geodatabase edits applied")

	if err = s.repo.DeleteEdits(ctx, accepted...); err != nil {
		return results, fmt.Errorf("discard accepted edits: %w", err)
	}
	return results, nil
}

// RestoreDirtyTables marks every catalogued table with persisted pending
// edits as dirty, oldest edit first. Tables missing from the catalog are
// skipped. It returns the number of tables marked.
func RestoreDirtyTables(ctx context.Context, repo store.LocalEditRepository, catalog *Catalog, dirty *DirtyTables) (int, error) {
	log := logger.FromContext(ctx)

	ids, err := repo.TablesWithPendingEdits(ctx)
	if err != nil {
		return 0, fmt.Errorf("list tables with pending edits: %w", err)
	}

	marked := 0
	for _, id := range ids {
		table, ok := catalog.Table(id)
		if !ok {
			log.Warn().Str("table_id", id.String()).Msg("pending edits for unknown table")
			continue
		}
		if dirty.MarkDirty(table) {
			marked++
		}
	}
	return marked, nil
}
