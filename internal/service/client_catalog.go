// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-geo-toolkit/models"
)

// Catalog holds the geodatabases and tables known to the client.
// It is safe for concurrent use.
type Catalog struct {
	mu           sync.RWMutex
	geodatabases map[uuid.UUID]*models.Geodatabase
	tables       []models.FeatureTable
}

func NewCatalog() *Catalog {
	return &Catalog{geodatabases: make(map[uuid.UUID]*models.Geodatabase)}
}

// Load registers the service described by info as a geodatabase and its
// layers as tables backed by it. Loading the same service again replaces its
// tables. It returns the tables in layer order.
func (c *Catalog) Load(info models.ServiceInfo) []models.FeatureTable {
	c.mu.Lock()
	defer c.mu.Unlock()

	gdb := &models.Geodatabase{
		ID:                   models.GeodatabaseID(info.ServiceURL),
		ServiceURL:           info.ServiceURL,
		SupportsBatchedEdits: info.SupportsBatchedEdits,
	}
	c.geodatabases[gdb.ID] = gdb

	kept := c.tables[:0]
	for _, t := range c.tables {
		if !t.BelongsTo(*gdb) {
			kept = append(kept, t)
		}
	}
	c.tables = kept

	loaded := make([]models.FeatureTable, 0, len(info.Layers))
	for _, layer := range info.Layers {
		table := models.FeatureTable{
			ID:          models.TableID(info.ServiceURL, layer.ID),
			Name:        layer.Name,
			LayerID:     layer.ID,
			ServiceURL:  info.ServiceURL,
			Fields:      layer.Fields,
			Geodatabase: gdb,
		}
		c.tables = append(c.tables, table)
		loaded = append(loaded, table)
	}
	return loaded
}

// AddTable registers a table as is, with or without a backing store.
func (c *Catalog) AddTable(table models.FeatureTable) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, t := range c.tables {
		if t.ID == table.ID {
			c.tables[i] = table
			return
		}
	}
	c.tables = append(c.tables, table)
}

// Table looks a table up by ID.
func (c *Catalog) Table(id uuid.UUID) (models.FeatureTable, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, t := range c.tables {
		if t.ID == id {
			return t, true
		}
	}
	return models.FeatureTable{}, false
}

// Tables returns the tables backed by the geodatabase with the given ID.
func (c *Catalog) Tables(gdbID uuid.UUID) []models.FeatureTable {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []models.FeatureTable
	for _, t := range c.tables {
		if t.Geodatabase != nil && t.Geodatabase.ID == gdbID {
			out = append(out, t)
		}
	}
	return out
}

// AllTables returns every registered table in registration order.
func (c *Catalog) AllTables() []models.FeatureTable {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.FeatureTable(nil), c.tables...)
}
