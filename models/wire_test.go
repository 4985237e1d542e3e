// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeature_ToWireAndBack(t *testing.T) {
	tableID := TableID("http://example.com/FeatureServer", 0)
	globalID := uuid.New()
	f := Feature{
		TableID:    tableID,
		ObjectID:   42,
		GlobalID:   globalID,
		Attributes: map[string]any{"name": "well"},
		Geometry:   orb.Point{10, 20},
	}

	wire, err := f.ToWire()
	require.NoError(t, err)
	assert.Equal(t, int64(42), wire.Attributes[ObjectIDField])
	assert.Equal(t, globalID.String(), wire.Attributes[GlobalIDField])
	assert.NotContains(t, f.Attributes, ObjectIDField, "source attributes must not be modified")

	raw, err := json.Marshal(wire)
	require.NoError(t, err)

	var decoded WireFeature
	require.NoError(t, json.Unmarshal(raw, &decoded))

	got, err := decoded.Feature(tableID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ObjectID)
	assert.Equal(t, globalID, got.GlobalID)
	assert.Equal(t, "well", got.Attributes["name"])
	assert.Equal(t, orb.Point{10, 20}, got.Geometry)
}

func TestFeature_PolygonRoundTrip(t *testing.T) {
	want := Feature{
		TableID:    TableID("http://example.com/FeatureServer", 1),
		ObjectID:   9,
		GlobalID:   uuid.New(),
		Attributes: map[string]any{"owner": "city", "zoning": nil},
		Geometry:   orb.Polygon{{{50, 50}, {80, 50}, {80, 80}, {50, 80}, {50, 50}}},
	}

	wire, err := want.ToWire()
	require.NoError(t, err)
	raw, err := json.Marshal([]WireFeature{wire})
	require.NoError(t, err)

	var decoded []WireFeature
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 1)

	got, err := decoded[0].Feature(want.TableID)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("feature mismatch (-want +got):\n%s", diff)
	}
}

func TestWireFeature_InvalidGlobalID(t *testing.T) {
	w := WireFeature{Attributes: map[string]any{GlobalIDField: "nope"}}

	_, err := w.Feature(uuid.New())
	assert.Error(t, err)
}

func TestWireFeature_NoGeometry(t *testing.T) {
	w := WireFeature{Attributes: map[string]any{ObjectIDField: float64(7)}, Geometry: json.RawMessage("null")}

	got, err := w.Feature(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ObjectID)
	assert.Nil(t, got.Geometry)
}

func TestFeatureTable_Identity(t *testing.T) {
	url := "http://example.com/FeatureServer/"
	gdb := Geodatabase{ID: GeodatabaseID(url)}
	table := FeatureTable{ID: TableID(url, 1), Geodatabase: &gdb}

	assert.Equal(t, TableID("http://example.com/FeatureServer", 1), table.ID)
	assert.NotEqual(t, TableID(url, 2), table.ID)
	assert.True(t, table.HasGeodatabase())
	assert.True(t, table.BelongsTo(gdb))
	assert.False(t, table.BelongsTo(Geodatabase{ID: uuid.New()}))
	assert.False(t, FeatureTable{}.HasGeodatabase())
}

func TestFeatureForm_SetValue(t *testing.T) {
	form := FeatureForm{Fields: []FormField{
		{Name: "name", Value: "a", Editable: true},
		{Name: ObjectIDField, Value: "1"},
	}}

	assert.False(t, form.HasChanges())
	assert.True(t, form.SetValue("name", "a"))
	assert.False(t, form.HasChanges(), "same value is not a change")
	assert.True(t, form.SetValue("name", "b"))
	assert.True(t, form.HasChanges())
	assert.False(t, form.SetValue(ObjectIDField, "2"))
	assert.False(t, form.SetValue("missing", "x"))
}

func TestEditError_Error(t *testing.T) {
	var err error = &EditError{Code: 1000, Description: "missing field"}
	assert.Equal(t, "edit error 1000: missing field", err.Error())
}
