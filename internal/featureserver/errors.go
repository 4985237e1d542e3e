// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package featureserver

import "errors"

var (
	ErrLayerNotFound    = errors.New("layer not found")
	ErrEmptyAuthHeader  = errors.New("empty authorization header")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Per-edit error codes reported in EditResult.Error.
const (
	CodeRequiredField   = 1000
	CodeInvalidFeature  = 1002
	CodeDuplicateGlobal = 1003
	CodeFeatureNotFound = 1019
)
