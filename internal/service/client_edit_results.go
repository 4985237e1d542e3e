// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-geo-toolkit/models"
)

// CollectEditErrors flattens the errors of results: each result's own error
// followed by the errors of its attachments, in input order.
func CollectEditErrors(results []models.EditResult) []error {
	var errs []error
	for _, r := range results {
		if r.Error != nil {
			errs = append(errs, r.Error)
		}
		for _, a := range r.Attachments {
			if a.Error != nil {
				errs = append(errs, a.Error)
			}
		}
	}
	return errs
}

// CollectTableEditErrors flattens the errors of every table of a batched
// submission, in table order.
func CollectTableEditErrors(results []models.TableEditResult) []error {
	var errs []error
	for _, t := range results {
		errs = append(errs, CollectEditErrors(t.Results)...)
	}
	return errs
}

// acceptedEditIDs returns the IDs of edits the service applied in full. An
// edit with a failed attachment stays pending with its table.
func acceptedEditIDs(results []models.EditResult) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(results))
	for _, r := range results {
		if r.EditID != uuid.Nil && len(CollectEditErrors([]models.EditResult{r})) == 0 {
			ids = append(ids, r.EditID)
		}
	}
	return ids
}
