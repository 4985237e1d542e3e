// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrEncodingEdit is returned when the attributes or geometry of an edit
	// cannot be serialised for storage.
	ErrEncodingEdit = errors.New("error encoding feature edit")

	// ErrDecodingEdit is returned when a stored edit row cannot be decoded.
	ErrDecodingEdit = errors.New("error decoding feature edit")
)
