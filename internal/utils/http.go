// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ServiceError is the error envelope feature services return, often with an
// HTTP 200 status.
type ServiceError struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// WriteJSON serializes data to JSON and writes it with the given status code
// and an "application/json" content type.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error marshaling JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return w.Write(jsonData)
}

// WriteServiceError writes the {"error": {...}} envelope. Feature services
// report request-level failures this way with an HTTP 200 status.
func WriteServiceError(w http.ResponseWriter, code int, message string, details ...string) {
	_, _ = WriteJSON(w, struct {
		Error ServiceError `json:"error"`
	}{Error: ServiceError{Code: code, Message: message, Details: details}}, http.StatusOK)
}
