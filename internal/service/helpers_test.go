// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-geo-toolkit/models"
)

const testServiceURL = "http://gis.example.com/FeatureServer"

func newGeodatabase(batched bool) *models.Geodatabase {
	return &models.Geodatabase{
		ID:                   uuid.New(),
		ServiceURL:           testServiceURL,
		SupportsBatchedEdits: batched,
	}
}

func newTable(name string, gdb *models.Geodatabase) models.FeatureTable {
	return models.FeatureTable{ID: uuid.New(), Name: name, Geodatabase: gdb}
}

func editErr(code int) *models.EditError {
	return &models.EditError{Code: code, Description: "rejected"}
}
