// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and a
// remote feature service.
//
// The primary abstraction is [FeatureServiceAdapter], which decouples the
// service layer from the REST protocol. The package ships an HTTP
// implementation ([NewHTTPFeatureServiceAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401). Error envelopes returned with a
// 200 status are reported as [ErrServiceError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-geo-toolkit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/feature_service_adapter_mock.go -package=mock

// FeatureServiceAdapter defines communication with a remote feature service.
type FeatureServiceAdapter interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// ServiceInfo fetches the layer list and capabilities of the service.
	ServiceInfo(ctx context.Context) (models.ServiceInfo, error)

	// ApplyEdits submits the edits of a single table through the layer
	// applyEdits endpoint. One result is returned per edit and carries the
	// edit's ID.
	ApplyEdits(ctx context.Context, table models.FeatureTable, edits []models.FeatureEdit) ([]models.EditResult, error)

	// ApplyServiceEdits submits the edits of several tables of gdb in one
	// request. One wrapper is returned per submitted layer.
	ApplyServiceEdits(ctx context.Context, gdb models.Geodatabase, edits []models.LayerEdits) ([]models.TableEditResult, error)

	// Identify returns the features within tolerance of point, grouped by
	// layer in service order.
	Identify(ctx context.Context, point models.ScreenPoint, tolerance float64) ([]models.IdentifyLayerResult, error)
}
