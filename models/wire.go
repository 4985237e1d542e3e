// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// Attribute names the feature service uses for feature identity.
const (
	ObjectIDField = "OBJECTID"
	GlobalIDField = "GlobalID"
)

// WireFeature is the JSON representation of a feature in feature service
// requests and responses. Geometry is a GeoJSON geometry object.
type WireFeature struct {
	Attributes map[string]any  `json:"attributes"`
	Geometry   json.RawMessage `json:"geometry,omitempty"`
}

// ToWire converts f into its wire form. Identity travels in the attributes.
func (f Feature) ToWire() (WireFeature, error) {
	attrs := make(map[string]any, len(f.Attributes)+2)
	for k, v := range f.Attributes {
		attrs[k] = v
	}
	if f.ObjectID != 0 {
		attrs[ObjectIDField] = f.ObjectID
	}
	if f.GlobalID != uuid.Nil {
		attrs[GlobalIDField] = f.GlobalID.String()
	}

	wire := WireFeature{Attributes: attrs}
	if f.Geometry != nil {
		raw, err := geojson.NewGeometry(f.Geometry).MarshalJSON()
		if err != nil {
			return WireFeature{}, fmt.Errorf("encode geometry: %w", err)
		}
		wire.Geometry = raw
	}
	return wire, nil
}

// Feature converts w back into a feature of the table with the given ID.
// Identity attributes are lifted out of the attribute map.
func (w WireFeature) Feature(tableID uuid.UUID) (Feature, error) {
	f := Feature{TableID: tableID, Attributes: make(map[string]any, len(w.Attributes))}
	for k, v := range w.Attributes {
		switch k {
		case ObjectIDField:
			f.ObjectID = toInt64(v)
		case GlobalIDField:
			s, _ := v.(string)
			id, err := uuid.Parse(s)
			if err != nil {
				return Feature{}, fmt.Errorf("invalid global id %q: %w", s, err)
			}
			f.GlobalID = id
		default:
			f.Attributes[k] = v
		}
	}

	if len(w.Geometry) > 0 && string(w.Geometry) != "null" {
		g, err := geojson.UnmarshalGeometry(w.Geometry)
		if err != nil {
			return Feature{}, fmt.Errorf("decode geometry: %w", err)
		}
		f.Geometry = g.Geometry()
	}
	return f, nil
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case json.Number:
		i, _ := n.Int64()
		return i
	case string:
		i, _ := strconv.ParseInt(n, 10, 64)
		return i
	}
	return 0
}

// ApplyEditsResponse is the body returned by a layer applyEdits request.
type ApplyEditsResponse struct {
	AddResults    []EditResult `json:"addResults"`
	UpdateResults []EditResult `json:"updateResults"`
	DeleteResults []EditResult `json:"deleteResults"`
}

// LayerApplyEdits is the per-layer element of a service-level applyEdits
// request.
type LayerApplyEdits struct {
	ID      int           `json:"id"`
	Adds    []WireFeature `json:"adds,omitempty"`
	Updates []WireFeature `json:"updates,omitempty"`
	Deletes []string      `json:"deletes,omitempty"`
}

// LayerApplyEditsResult is the per-layer element of a service-level
// applyEdits response.
type LayerApplyEditsResult struct {
	ID int `json:"id"`
	ApplyEditsResponse
}

// IdentifyResponse is the body returned by the identify endpoint.
type IdentifyResponse struct {
	Results []IdentifyWireResult `json:"results"`
}

// IdentifyWireResult is one layer of an identify response.
type IdentifyWireResult struct {
	LayerID   int           `json:"layerId"`
	LayerName string        `json:"layerName"`
	Features  []WireFeature `json:"features"`
}

// LayerEdits groups the pending edits of one table for a service-level
// submission.
type LayerEdits struct {
	Table FeatureTable
	Edits []FeatureEdit
}
