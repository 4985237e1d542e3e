// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-geo-toolkit/internal/config"
	"github.com/MKhiriev/go-geo-toolkit/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// EditRepository is the SQLite-backed store of unsubmitted feature edits.
	EditRepository LocalEditRepository

	db *DB
}

// NewClientStorages opens the SQLite file named in cfg.DB.DSN, runs pending
// migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		EditRepository: NewLocalEditRepository(db, logger),
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
