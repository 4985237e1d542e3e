// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-geo-toolkit/internal/utils"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return mapServiceError(resp.Body())
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// mapServiceError detects the {"error": {...}} envelope feature services send
// with a 200 status.
func mapServiceError(body []byte) error {
	trimmed := strings.TrimSpace(string(body))
	if !strings.HasPrefix(trimmed, "{") {
		return nil
	}

	var envelope struct {
		Error *utils.ServiceError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		return nil
	}

	switch envelope.Error.Code {
	case http.StatusUnauthorized, 498, 499:
		return fmt.Errorf("%w: %s", ErrUnauthorized, envelope.Error.Message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, envelope.Error.Message)
	}

	msg := envelope.Error.Message
	if len(envelope.Error.Details) > 0 {
		msg += " (" + strings.Join(envelope.Error.Details, "; ") + ")"
	}
	return fmt.Errorf("%w %d: %s", ErrServiceError, envelope.Error.Code, msg)
}
