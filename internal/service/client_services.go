// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-geo-toolkit/internal/adapter"
	"github.com/MKhiriev/go-geo-toolkit/internal/logger"
	"github.com/MKhiriev/go-geo-toolkit/internal/store"
)

type ClientServices struct {
	Catalog     *Catalog
	DirtyTables *DirtyTables

	Geodatabase GeodatabaseEditor
	Submission  EditSubmissionService
	Identifier  FeatureIdentifier
	Forms       FeatureFormService
	Session     *EditSession
	SubmitJob   SubmitJob
}

func NewClientServices(storages *store.ClientStorages, serviceAdapter adapter.FeatureServiceAdapter, tolerance float64, logger *logger.Logger) *ClientServices {
	catalog := NewCatalog()
	dirty := NewDirtyTables()

	gdb := NewServiceGeodatabase(storages, serviceAdapter, catalog, logger)
	submission := NewEditSubmissionService(dirty, gdb, logger)
	identifier := NewFeatureIdentifier(serviceAdapter)
	forms := NewFeatureFormService(storages, catalog, logger)
	session := NewEditSession(dirty, submission, identifier, forms, tolerance, logger)

	return &ClientServices{
		Catalog:     catalog,
		DirtyTables: dirty,
		Geodatabase: gdb,
		Submission:  submission,
		Identifier:  identifier,
		Forms:       forms,
		Session:     session,
		SubmitJob:   NewSubmitJob(session, dirty, logger),
	}
}
