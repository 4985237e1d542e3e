// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-geo-toolkit/models"
)

var (
	// ErrNoGeodatabase is a precondition failure: a dirty table is not
	// attached to a backing store.
	ErrNoGeodatabase = errors.New("no geodatabase found")

	// ErrNoLocalEdits is a precondition failure: the backing store of a dirty
	// table has nothing to submit.
	ErrNoLocalEdits = errors.New("geodatabase has no local edits")

	// ErrEditsRejected wraps the per-edit errors of a partially rejected
	// submission.
	ErrEditsRejected = errors.New("edits rejected by the feature service")

	ErrSubmissionInProgress = errors.New("submission in progress")
	ErrFormOpen             = errors.New("a feature form is open")
	ErrNoFormOpen           = errors.New("no feature form is open")
	ErrNothingIdentified    = errors.New("no feature found at this location")
	ErrNoChanges            = errors.New("form has no changes")
	ErrUnknownTable         = errors.New("unknown feature table")
	ErrReadOnlyField        = errors.New("field is not editable")
	ErrInvalidFieldValue    = errors.New("invalid field value")
)

// ErrorKind classifies a failed submission round.
type ErrorKind int

const (
	// KindPrecondition means the dirty set disagreed with the local store.
	KindPrecondition ErrorKind = iota + 1

	// KindSubmission means the transport failed or the service rejected
	// edits.
	KindSubmission
)

func (k ErrorKind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition"
	case KindSubmission:
		return "submission"
	default:
		return "unknown"
	}
}

// SubmissionError is the single failure value of a submission round.
type SubmissionError struct {
	Kind ErrorKind

	// Count is the number of underlying failures. Transport and precondition
	// failures count as one.
	Count int

	// Table is the table whose submission failed.
	Table models.FeatureTable

	// Errors lists the individual edit errors of a rejected submission.
	Errors []error

	Err error
}

func (e *SubmissionError) Error() string {
	name := e.Table.Name
	if name == "" {
		name = e.Table.ID.String()
	}
	if e.Kind == KindPrecondition {
		return fmt.Sprintf("cannot submit table %q: %v", name, e.Err)
	}
	return fmt.Sprintf("submitting table %q failed with %d error(s): %v", name, e.Count, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func preconditionFailure(table models.FeatureTable, err error) error {
	return &SubmissionError{Kind: KindPrecondition, Count: 1, Table: table, Err: err}
}

func transportFailure(table models.FeatureTable, err error) error {
	return &SubmissionError{Kind: KindSubmission, Count: 1, Table: table, Err: err}
}

func rejectedFailure(table models.FeatureTable, errs []error) error {
	return &SubmissionError{
		Kind:   KindSubmission,
		Count:  len(errs),
		Table:  table,
		Errors: errs,
		Err:    fmt.Errorf("%w: %w", ErrEditsRejected, errors.Join(errs...)),
	}
}
