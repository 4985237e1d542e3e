// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-geo-toolkit/internal/adapter"
	"github.com/MKhiriev/go-geo-toolkit/internal/service"
)

const msgServiceUnavailable = "network is unavailable or the feature service is down"

func humanizeServiceUnavailableError(err error) (string, bool) {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServiceUnavailable, true
	}
	return "", false
}

// errorMessage maps an error of the editing flow to the text shown to the
// user.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}

	var subErr *service.SubmissionError
	if errors.As(err, &subErr) {
		return submissionErrorMessage(subErr)
	}

	switch {
	case errors.Is(err, adapter.ErrTokenExpired):
		return "access token has expired, update the configured token"
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return "the feature service rejected the access token"
	case errors.Is(err, service.ErrNothingIdentified):
		return "nothing found at this point"
	case errors.Is(err, service.ErrSubmissionInProgress):
		return "a submission is running, try again when it finishes"
	case errors.Is(err, service.ErrFormOpen):
		return "close the open form first"
	case errors.Is(err, service.ErrNoChanges):
		return "nothing to save"
	}

	if msg, ok := humanizeServiceUnavailableError(err); ok {
		return msg
	}
	return err.Error()
}

func submissionErrorMessage(err *service.SubmissionError) string {
	name := err.Table.Name
	if name == "" {
		name = err.Table.ID.String()
	}

	if err.Kind == service.KindPrecondition {
		return fmt.Sprintf("table %q cannot be submitted: %v", name, err.Err)
	}
	if errors.Is(err, service.ErrEditsRejected) {
		return fmt.Sprintf("%d edit error(s) in table %q, the table stays in the queue", err.Count, name)
	}
	if msg, ok := humanizeServiceUnavailableError(err); ok {
		return fmt.Sprintf("table %q was not submitted: %s", name, msg)
	}
	return fmt.Sprintf("table %q was not submitted: %s", name, errorMessage(err.Err))
}
