// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Feature is a single geo-referenced row of a feature table.
type Feature struct {
	// TableID is the identity of the owning table.
	TableID uuid.UUID `json:"table_id"`

	// ObjectID is the server-assigned object id. Zero for features that were
	// never submitted.
	ObjectID int64 `json:"object_id,omitempty"`

	// GlobalID is the client-visible global identity of the feature.
	GlobalID uuid.UUID `json:"global_id"`

	// Attributes holds the attribute values keyed by field name.
	Attributes map[string]any `json:"attributes"`

	// Geometry is the feature shape. May be nil for non-spatial tables.
	Geometry orb.Geometry `json:"-"`
}

// Attribute returns the value of the named attribute.
func (f Feature) Attribute(name string) (any, bool) {
	v, ok := f.Attributes[name]
	return v, ok
}

// EditType is the kind of a pending local edit.
type EditType string

const (
	EditAdd    EditType = "add"
	EditUpdate EditType = "update"
	EditDelete EditType = "delete"
)

// FeatureEdit is a local edit that has been saved but not yet submitted to the
// feature service.
type FeatureEdit struct {
	ID        uuid.UUID  `json:"id"`
	TableID   uuid.UUID  `json:"table_id"`
	Type      EditType   `json:"type"`
	Feature   Feature    `json:"feature"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// SaveEvent signals that edits to Feature in Table were saved locally.
type SaveEvent struct {
	Table   FeatureTable
	Feature Feature
}
