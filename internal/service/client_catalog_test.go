// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-geo-toolkit/models"
)

func TestCatalog_Load(t *testing.T) {
	catalog := NewCatalog()

	tables := catalog.Load(testServiceInfo(true))

	require.Len(t, tables, 2)
	assert.Equal(t, models.TableID(testServiceURL, 0), tables[0].ID)
	assert.Same(t, tables[0].Geodatabase, tables[1].Geodatabase, "layers share one backing store")
	assert.True(t, tables[0].Geodatabase.SupportsBatchedEdits)
	assert.Equal(t, models.GeodatabaseID(testServiceURL), tables[0].Geodatabase.ID)

	got, ok := catalog.Table(tables[1].ID)
	require.True(t, ok)
	assert.Equal(t, "Parcels", got.Name)

	assert.Len(t, catalog.Tables(tables[0].Geodatabase.ID), 2)
}

func TestCatalog_ReloadReplacesTables(t *testing.T) {
	catalog := NewCatalog()
	catalog.Load(testServiceInfo(false))

	info := testServiceInfo(true)
	info.Layers = info.Layers[:1]
	tables := catalog.Load(info)

	assert.Len(t, catalog.AllTables(), 1)
	assert.True(t, tables[0].Geodatabase.SupportsBatchedEdits)
}

func TestCatalog_AddTable(t *testing.T) {
	catalog := NewCatalog()
	standalone := newTable("Notes", nil)

	catalog.AddTable(standalone)
	standalone.Name = "Notes v2"
	catalog.AddTable(standalone)

	got, ok := catalog.Table(standalone.ID)
	require.True(t, ok)
	assert.Equal(t, "Notes v2", got.Name)
	assert.Len(t, catalog.AllTables(), 1)

	_, ok = catalog.Table(newTable("x", nil).ID)
	assert.False(t, ok)
}
