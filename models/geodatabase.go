// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// tableNamespace seeds deterministic table identities so that locally stored
// edits keep pointing at the same table across restarts.
var tableNamespace = uuid.MustParse("6f1c7a52-3b8e-4f0a-9d2e-1c5b7e9a4d31")

// Geodatabase is a remote feature service that owns one or more feature
// tables. It is the shared backing store for every table it serves.
type Geodatabase struct {
	// ID is the stable identity of the geodatabase.
	ID uuid.UUID `json:"id"`

	// ServiceURL is the root URL of the feature service.
	ServiceURL string `json:"service_url"`

	// SupportsBatchedEdits reports whether the service accepts edits for all
	// of its tables in a single applyEdits request.
	SupportsBatchedEdits bool `json:"supports_batched_edits"`
}

// FeatureTable is an editable table (layer) of a feature service.
//
// Identity is the ID field: two FeatureTable values describing the same remote
// layer are the same table only if their IDs match.
type FeatureTable struct {
	// ID is the stable identity handle of the table.
	ID uuid.UUID `json:"id"`

	// Name is the human-readable layer name.
	Name string `json:"name"`

	// LayerID is the layer index inside the feature service.
	LayerID int `json:"layer_id"`

	// ServiceURL is the URL of the layer's feature service.
	ServiceURL string `json:"service_url"`

	// Fields describes the attribute schema of the table.
	Fields []Field `json:"fields,omitempty"`

	// Geodatabase is the backing store of the table, or nil when the table is
	// not attached to one.
	Geodatabase *Geodatabase `json:"-"`
}

// Field describes one attribute column of a feature table.
type Field struct {
	Name     string    `json:"name"`
	Alias    string    `json:"alias,omitempty"`
	Type     FieldType `json:"type"`
	Editable bool      `json:"editable"`
	Nullable bool      `json:"nullable"`
}

// FieldType is the attribute type reported by the feature service.
type FieldType string

const (
	FieldTypeString  FieldType = "esriFieldTypeString"
	FieldTypeInteger FieldType = "esriFieldTypeInteger"
	FieldTypeDouble  FieldType = "esriFieldTypeDouble"
	FieldTypeDate    FieldType = "esriFieldTypeDate"
	FieldTypeOID     FieldType = "esriFieldTypeOID"
	FieldTypeGlobal  FieldType = "esriFieldTypeGlobalID"
)

// TableID returns the deterministic identity of the layer with the given index
// in the feature service at serviceURL.
func TableID(serviceURL string, layerID int) uuid.UUID {
	key := strings.TrimRight(serviceURL, "/") + "/" + strconv.Itoa(layerID)
	return uuid.NewSHA1(tableNamespace, []byte(key))
}

// GeodatabaseID returns the deterministic identity of the feature service at
// serviceURL.
func GeodatabaseID(serviceURL string) uuid.UUID {
	return uuid.NewSHA1(tableNamespace, []byte(strings.TrimRight(serviceURL, "/")))
}

// HasGeodatabase reports whether the table is attached to a backing store.
func (t FeatureTable) HasGeodatabase() bool {
	return t.Geodatabase != nil
}

// BelongsTo reports whether the table is backed by gdb.
func (t FeatureTable) BelongsTo(gdb Geodatabase) bool {
	return t.Geodatabase != nil && t.Geodatabase.ID == gdb.ID
}

// Field returns the field definition with the given name.
func (t FeatureTable) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Field{}, false
}
