// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-geo-toolkit/internal/adapter"
	"github.com/MKhiriev/go-geo-toolkit/models"
)

type featureIdentifier struct {
	adapter adapter.FeatureServiceAdapter
}

func NewFeatureIdentifier(serviceAdapter adapter.FeatureServiceAdapter) FeatureIdentifier {
	return &featureIdentifier{adapter: serviceAdapter}
}

// IdentifyFeature implements [FeatureIdentifier]. Only the first layer of the
// result is considered.
func (f *featureIdentifier) IdentifyFeature(ctx context.Context, point models.ScreenPoint, tolerance float64) (models.Feature, error) {
	layers, err := f.adapter.Identify(ctx, point, tolerance)
	if err != nil {
		return models.Feature{}, fmt.Errorf("identify: %w", err)
	}
	if len(layers) == 0 || len(layers[0].GeoElements) == 0 {
		return models.Feature{}, ErrNothingIdentified
	}
	return layers[0].GeoElements[0], nil
}
