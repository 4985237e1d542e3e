// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/google/uuid"
)

// EditError is an error reported by the feature service for a single edit.
type EditError struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// Error implements error.
func (e *EditError) Error() string {
	return fmt.Sprintf("edit error %d: %s", e.Code, e.Description)
}

// AttachmentEditResult is the outcome of one attachment edit nested under a
// feature edit.
type AttachmentEditResult struct {
	ObjectID int64      `json:"objectId"`
	GlobalID string     `json:"globalId,omitempty"`
	Success  bool       `json:"success"`
	Error    *EditError `json:"error,omitempty"`
}

// EditResult is the outcome of submitting one feature edit.
type EditResult struct {
	// EditID links the result back to the local edit that produced it.
	EditID uuid.UUID `json:"-"`

	ObjectID    int64                  `json:"objectId"`
	GlobalID    string                 `json:"globalId,omitempty"`
	Success     bool                   `json:"success"`
	Error       *EditError             `json:"error,omitempty"`
	Attachments []AttachmentEditResult `json:"attachmentResults,omitempty"`
}

// TableEditResult wraps the edit results of one table returned by a batched
// geodatabase submission.
type TableEditResult struct {
	LayerID int          `json:"id"`
	TableID uuid.UUID    `json:"-"`
	Results []EditResult `json:"-"`
}
