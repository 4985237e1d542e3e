// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-geo-toolkit/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalEditRepository stores feature edits saved on this device until they are
// accepted by the feature service.
type LocalEditRepository interface {
	// SaveEdit inserts edit, or replaces the pending edit with the same ID.
	SaveEdit(ctx context.Context, edit models.FeatureEdit) error

	// PendingEdits returns the pending edits of one table, oldest first.
	PendingEdits(ctx context.Context, tableID uuid.UUID) ([]models.FeatureEdit, error)

	// CountPendingEdits returns the number of pending edits across tableIDs.
	CountPendingEdits(ctx context.Context, tableIDs ...uuid.UUID) (int, error)

	// TablesWithPendingEdits lists the tables that have pending edits,
	// ordered by their oldest edit.
	TablesWithPendingEdits(ctx context.Context) ([]uuid.UUID, error)

	// DeleteEdits removes accepted edits.
	DeleteEdits(ctx context.Context, editIDs ...uuid.UUID) error
}
