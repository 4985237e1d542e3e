// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// NewGlobalID returns a time-ordered identity for a new feature. Falls back to
// a random UUID if the v7 generator fails.
func NewGlobalID() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return v7
}

// EditID returns the pending-edit identity of a feature. Repeated saves of the
// same feature map to the same pending edit.
func EditID(tableID, globalID uuid.UUID) uuid.UUID {
	return uuid.NewSHA1(tableID, globalID[:])
}
