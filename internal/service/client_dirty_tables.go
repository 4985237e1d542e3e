// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-geo-toolkit/models"
)

// DirtyTables is the ordered set of tables with unsubmitted local edits.
// Membership is by table ID. It is safe for concurrent use.
type DirtyTables struct {
	mu     sync.RWMutex
	tables []models.FeatureTable
}

func NewDirtyTables() *DirtyTables {
	return &DirtyTables{}
}

// MarkDirty appends table unless a table with the same ID is already present.
// It reports whether the table was added.
func (d *DirtyTables) MarkDirty(table models.FeatureTable) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.indexOf(table.ID) >= 0 {
		return false
	}
	d.tables = append(d.tables, table)
	return true
}

// Clear removes the table with the given ID and reports whether it was
// present.
func (d *DirtyTables) Clear(id uuid.UUID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.indexOf(id)
	if i < 0 {
		return false
	}
	d.tables = append(d.tables[:i], d.tables[i+1:]...)
	return true
}

// ClearAll removes every table matching pred and returns how many were
// removed.
func (d *DirtyTables) ClearAll(pred func(models.FeatureTable) bool) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.tables[:0]
	for _, t := range d.tables {
		if !pred(t) {
			kept = append(kept, t)
		}
	}
	removed := len(d.tables) - len(kept)
	clear(d.tables[len(kept):])
	d.tables = kept
	return removed
}

func (d *DirtyTables) Contains(id uuid.UUID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.indexOf(id) >= 0
}

// Snapshot returns a copy of the set in insertion order.
func (d *DirtyTables) Snapshot() []models.FeatureTable {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.FeatureTable(nil), d.tables...)
}

func (d *DirtyTables) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.tables)
}

// HasGeodatabaseEdits reports whether at least one dirty table is attached
// to a backing store.
func (d *DirtyTables) HasGeodatabaseEdits() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, t := range d.tables {
		if t.HasGeodatabase() {
			return true
		}
	}
	return false
}

func (d *DirtyTables) indexOf(id uuid.UUID) int {
	for i, t := range d.tables {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// SharesGeodatabase matches tables backed by gdb.
func SharesGeodatabase(gdb models.Geodatabase) func(models.FeatureTable) bool {
	return func(t models.FeatureTable) bool {
		return t.BelongsTo(gdb)
	}
}
