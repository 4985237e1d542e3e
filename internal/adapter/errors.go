// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrServiceError is returned when the service answers with an error
	// envelope instead of a result.
	ErrServiceError = errors.New("feature service error")

	// ErrTokenExpired is returned before sending a request with a token whose
	// expiry has passed.
	ErrTokenExpired = errors.New("access token expired")

	ErrUnknownLayer = errors.New("result references unknown layer")
)
