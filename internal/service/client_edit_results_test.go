// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-geo-toolkit/models"
)

func TestCollectEditErrors(t *testing.T) {
	e1, a1, a2, e3 := editErr(1), editErr(2), editErr(3), editErr(4)

	tests := []struct {
		name    string
		results []models.EditResult
		want    []error
	}{
		{name: "nil results", results: nil, want: nil},
		{name: "all succeeded", results: []models.EditResult{{Success: true}, {Success: true, Attachments: []models.AttachmentEditResult{{Success: true}}}}, want: nil},
		{name: "top-level only", results: []models.EditResult{{Error: e1}}, want: []error{e1}},
		{
			name: "top-level before attachments, input order",
			results: []models.EditResult{
				{Error: e1, Attachments: []models.AttachmentEditResult{{Error: a1}, {Success: true}, {Error: a2}}},
				{Success: true},
				{Error: e3},
			},
			want: []error{e1, a1, a2, e3},
		},
		{
			name:    "attachment errors without top-level error",
			results: []models.EditResult{{Success: true, Attachments: []models.AttachmentEditResult{{Error: a1}}}},
			want:    []error{a1},
		},
		{
			name:    "same error twice is not deduplicated",
			results: []models.EditResult{{Error: e1}, {Error: e1}},
			want:    []error{e1, e1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollectEditErrors(tt.results))
		})
	}
}

func TestCollectEditErrors_CountProperty(t *testing.T) {
	results := []models.EditResult{
		{Error: editErr(1), Attachments: []models.AttachmentEditResult{{Error: editErr(2)}, {}}},
		{Attachments: []models.AttachmentEditResult{{Error: editErr(3)}, {Error: editErr(4)}}},
		{},
		{Error: editErr(5)},
	}

	want := 0
	for _, r := range results {
		if r.Error != nil {
			want++
		}
		for _, a := range r.Attachments {
			if a.Error != nil {
				want++
			}
		}
	}

	assert.Len(t, CollectEditErrors(results), want)
}

func TestCollectTableEditErrors(t *testing.T) {
	e1, e2 := editErr(1), editErr(2)

	got := CollectTableEditErrors([]models.TableEditResult{
		{LayerID: 0, Results: []models.EditResult{{Error: e1}}},
		{LayerID: 1, Results: []models.EditResult{{Success: true}}},
		{LayerID: 2, Results: []models.EditResult{{Attachments: []models.AttachmentEditResult{{Error: e2}}}}},
	})

	assert.Equal(t, []error{e1, e2}, got)
	assert.Empty(t, CollectTableEditErrors(nil))
}

func TestAcceptedEditIDs(t *testing.T) {
	ok1, ok2, rejected, attachmentFailed := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	got := acceptedEditIDs([]models.EditResult{
		{EditID: ok1, Success: true},
		{EditID: rejected, Error: editErr(1)},
		{EditID: attachmentFailed, Success: true, Attachments: []models.AttachmentEditResult{{Success: true}, {Error: editErr(2)}}},
		{EditID: ok2, Success: true, Attachments: []models.AttachmentEditResult{{Success: true}}},
		{Success: true},
	})

	assert.Equal(t, []uuid.UUID{ok1, ok2}, got)
}
