// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package featureserver

import (
	"github.com/paulmach/orb"

	"github.com/MKhiriev/go-geo-toolkit/models"
)

var identityFields = []models.Field{
	{Name: models.ObjectIDField, Type: models.FieldTypeOID},
	{Name: models.GlobalIDField, Type: models.FieldTypeGlobal},
}

// NewDemoStore returns a store with a point layer of hydrants and a polygon
// layer of parcels, each seeded with a few features.
func NewDemoStore() *Store {
	store := NewStore(true,
		models.LayerInfo{
			ID:   0,
			Name: "Hydrants",
			Fields: append(append([]models.Field(nil), identityFields...),
				models.Field{Name: "name", Alias: "Name", Type: models.FieldTypeString, Editable: true},
				models.Field{Name: "status", Alias: "Status", Type: models.FieldTypeString, Editable: true, Nullable: true},
				models.Field{Name: "pressure", Alias: "Pressure (bar)", Type: models.FieldTypeDouble, Editable: true, Nullable: true},
			),
		},
		models.LayerInfo{
			ID:   1,
			Name: "Parcels",
			Fields: append(append([]models.Field(nil), identityFields...),
				models.Field{Name: "owner", Alias: "Owner", Type: models.FieldTypeString, Editable: true},
				models.Field{Name: "zoning", Alias: "Zoning", Type: models.FieldTypeString, Editable: true, Nullable: true},
			),
		},
	)

	hydrants := []orb.Point{{10, 10}, {40, 12}, {25, 30}}
	for i, p := range hydrants {
		_, _ = store.Seed(0, models.Feature{
			Attributes: map[string]any{"name": "H-" + string(rune('A'+i)), "status": "active"},
			Geometry:   p,
		})
	}

	_, _ = store.Seed(1, models.Feature{
		Attributes: map[string]any{"owner": "City", "zoning": "R1"},
		Geometry:   orb.Polygon{{{50, 50}, {80, 50}, {80, 80}, {50, 80}, {50, 50}}},
	})

	return store
}
