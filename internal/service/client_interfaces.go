// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/paulmach/orb"

	"github.com/MKhiriev/go-geo-toolkit/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// GeodatabaseEditor submits locally saved edits to the feature service that
// backs them.
type GeodatabaseEditor interface {
	// HasLocalEdits reports whether any table of gdb has pending edits.
	HasLocalEdits(ctx context.Context, gdb models.Geodatabase) (bool, error)

	// ApplyTableEdits submits the pending edits of a single table.
	ApplyTableEdits(ctx context.Context, table models.FeatureTable) ([]models.EditResult, error)

	// ApplyGeodatabaseEdits submits the pending edits of every table of gdb
	// in one request.
	ApplyGeodatabaseEdits(ctx context.Context, gdb models.Geodatabase) ([]models.TableEditResult, error)
}

// EditSubmissionService runs submission rounds over the dirty tables.
type EditSubmissionService interface {
	// Submit walks the dirty tables in order and submits their edits. At most
	// one round runs at a time; a concurrent call returns
	// [ErrSubmissionInProgress]. Failures are returned as *[SubmissionError].
	Submit(ctx context.Context) error

	// Busy reports whether a round is running.
	Busy() bool
}

// FeatureIdentifier resolves a screen point to a feature.
type FeatureIdentifier interface {
	// IdentifyFeature returns the first element of the first layer hit
	// within tolerance of point, or [ErrNothingIdentified].
	IdentifyFeature(ctx context.Context, point models.ScreenPoint, tolerance float64) (models.Feature, error)
}

// FeatureFormService builds attribute forms and saves them locally.
type FeatureFormService interface {
	// NewForm builds a form for feature from its table's field definitions.
	NewForm(feature models.Feature) (*models.FeatureForm, error)

	// NewFeatureForm builds an empty form for a new feature of table with
	// the given geometry.
	NewFeatureForm(table models.FeatureTable, geometry orb.Geometry) *models.FeatureForm

	// Save stores the form's changes as a pending edit and publishes a
	// [models.SaveEvent].
	Save(ctx context.Context, form *models.FeatureForm) error

	// Delete stores a pending delete of the form's feature. A feature that
	// was never submitted only loses its pending add. pending reports whether
	// the form's table still has pending edits afterwards.
	Delete(ctx context.Context, form *models.FeatureForm) (pending bool, err error)

	// Events streams save events. The channel is never closed.
	Events() <-chan models.SaveEvent
}

// Submitter is anything that can start a submission round.
type Submitter interface {
	Submit(ctx context.Context) error
}

// SubmitJob periodically submits dirty tables in the background.
type SubmitJob interface {
	// Start launches the job, replacing a running one.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the job and waits for it to exit.
	Stop()
}
