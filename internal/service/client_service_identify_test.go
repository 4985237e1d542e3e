// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-geo-toolkit/internal/mock"
	"github.com/MKhiriev/go-geo-toolkit/models"
)

func TestIdentifyFeature(t *testing.T) {
	point := models.ScreenPoint{X: 10, Y: 20}
	first := models.Feature{ObjectID: 1}

	tests := []struct {
		name    string
		layers  []models.IdentifyLayerResult
		err     error
		want    models.Feature
		wantErr error
	}{
		{
			name: "first element of first layer",
			layers: []models.IdentifyLayerResult{
				{LayerID: 0, GeoElements: []models.Feature{first, {ObjectID: 2}}},
				{LayerID: 1, GeoElements: []models.Feature{{ObjectID: 3}}},
			},
			want: first,
		},
		{name: "no layers", wantErr: ErrNothingIdentified},
		{
			name: "first layer empty",
			layers: []models.IdentifyLayerResult{
				{LayerID: 0},
				{LayerID: 1, GeoElements: []models.Feature{{ObjectID: 3}}},
			},
			wantErr: ErrNothingIdentified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			serviceAdapter := mock.NewMockFeatureServiceAdapter(ctrl)
			serviceAdapter.EXPECT().Identify(gomock.Any(), point, 12.0).Return(tt.layers, nil)

			got, err := NewFeatureIdentifier(serviceAdapter).IdentifyFeature(context.Background(), point, 12)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentifyFeature_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceAdapter := mock.NewMockFeatureServiceAdapter(ctrl)
	boom := errors.New("boom")
	serviceAdapter.EXPECT().Identify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := NewFeatureIdentifier(serviceAdapter).IdentifyFeature(context.Background(), models.ScreenPoint{}, 1)

	assert.ErrorIs(t, err, boom)
}
