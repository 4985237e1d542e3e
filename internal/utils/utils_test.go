// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"status": "ok"}, http.StatusCreated)

	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteServiceError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteServiceError(rec, http.StatusBadRequest, "bad layer", "layer 9 not found")

	var body struct {
		Error ServiceError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusBadRequest, body.Error.Code)
	assert.Equal(t, "bad layer", body.Error.Message)
	assert.Equal(t, []string{"layer 9 not found"}, body.Error.Details)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "Bearer", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: "editor"}
	if !exp.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(exp)
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	assert.True(t, TokenExpired(signedToken(t, now.Add(-time.Hour)), now))
	assert.False(t, TokenExpired(signedToken(t, now.Add(time.Hour)), now))
	assert.False(t, TokenExpired(signedToken(t, time.Time{}), now))
	assert.False(t, TokenExpired("opaque-token", now))
}

func TestTokenExpiry_NotJWT(t *testing.T) {
	_, err := TokenExpiry("opaque")
	assert.ErrorIs(t, err, ErrNotJWT)
}

func TestEditID_Deterministic(t *testing.T) {
	table, feature := uuid.New(), uuid.New()

	assert.Equal(t, EditID(table, feature), EditID(table, feature))
	assert.NotEqual(t, EditID(table, feature), EditID(uuid.New(), feature))
	assert.NotEqual(t, uuid.Nil, NewGlobalID())
}
