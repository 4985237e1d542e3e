// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/go-geo-toolkit/internal/logger"
	"github.com/MKhiriev/go-geo-toolkit/models"
)

type editSubmissionService struct {
	dirty  *DirtyTables
	editor GeodatabaseEditor

	busy atomic.Bool

	logger *logger.Logger
}

// NewEditSubmissionService creates a coordinator that submits the tables of
// dirty through editor.
func NewEditSubmissionService(dirty *DirtyTables, editor GeodatabaseEditor, logger *logger.Logger) EditSubmissionService {
	return &editSubmissionService{
		dirty:  dirty,
		editor: editor,
		logger: logger,
	}
}

func (s *editSubmissionService) Busy() bool {
	return s.busy.Load()
}

// Submit implements [EditSubmissionService]. The first failing table aborts
// the round and stays dirty together with every table after it.
func (s *editSubmissionService) Submit(ctx context.Context) error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrSubmissionInProgress
	}
	defer s.busy.Store(false)

	log, ctx := s.logger.WithRound(ctx)

	tables := s.dirty.Snapshot()
	log.Info().Int("tables", len(tables)).Msg("submission round started")

	for _, table := range tables {
		// a batched submission earlier in the round already took this table
		if !s.dirty.Contains(table.ID) {
			log.Debug().Str("table", table.Name).Msg("table already submitted, round complete")
			break
		}

		if err := s.submitTable(ctx, table); err != nil {
			log.Err(err).Str("table", table.Name).Msg("submission round failed")
			return err
		}
	}

	log.Info().Int("remaining", s.dirty.Len()).Msg("submission round finished")
	return nil
}

func (s *editSubmissionService) submitTable(ctx context.Context, table models.FeatureTable) error {
	if !table.HasGeodatabase() {
		return preconditionFailure(table, ErrNoGeodatabase)
	}
	gdb := *table.Geodatabase

	hasEdits, err := s.editor.HasLocalEdits(ctx, gdb)
	if err != nil {
		return transportFailure(table, err)
	}
	if !hasEdits {
		return preconditionFailure(table, ErrNoLocalEdits)
	}

	if gdb.SupportsBatchedEdits {
		results, err := s.editor.ApplyGeodatabaseEdits(ctx, gdb)
		if err != nil {
			return transportFailure(table, err)
		}
		if errs := CollectTableEditErrors(results); len(errs) > 0 {
			return rejectedFailure(table, errs)
		}
		s.dirty.ClearAll(SharesGeodatabase(gdb))
		return nil
	}

	results, err := s.editor.ApplyTableEdits(ctx, table)
	if err != nil {
		return transportFailure(table, err)
	}
	if errs := CollectEditErrors(results); len(errs) > 0 {
		return rejectedFailure(table, errs)
	}
	s.dirty.Clear(table.ID)
	return nil
}
