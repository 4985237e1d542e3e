// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package featureserver

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/MKhiriev/go-geo-toolkit/internal/utils"
	"github.com/MKhiriev/go-geo-toolkit/models"
)

type layer struct {
	info     models.LayerInfo
	features []models.Feature
	nextOID  int64
}

// Store holds the layers of the development service in memory.
// It is safe for concurrent use.
type Store struct {
	mu              sync.RWMutex
	layers          []*layer
	supportsBatched bool
}

// NewStore creates a store with the given layers, in service order.
func NewStore(supportsBatchedEdits bool, layers ...models.LayerInfo) *Store {
	s := &Store{supportsBatched: supportsBatchedEdits}
	for _, info := range layers {
		s.layers = append(s.layers, &layer{info: info, nextOID: 1})
	}
	return s
}

// Info describes the service.
func (s *Store) Info() models.ServiceInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info := models.ServiceInfo{SupportsBatchedEdits: s.supportsBatched}
	for _, l := range s.layers {
		info.Layers = append(info.Layers, l.info)
	}
	return info
}

// Features returns a copy of the features of a layer.
func (s *Store) Features(layerID int) ([]models.Feature, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, err := s.layer(layerID)
	if err != nil {
		return nil, err
	}
	return append([]models.Feature(nil), l.features...), nil
}

// Seed inserts a feature without validation and returns it with its
// assigned identity.
func (s *Store) Seed(layerID int, f models.Feature) (models.Feature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.layer(layerID)
	if err != nil {
		return models.Feature{}, err
	}
	return l.insert(f), nil
}

// ApplyEdits applies one layer's adds, updates and deletes. Each edit
// succeeds or fails on its own.
func (s *Store) ApplyEdits(edits models.LayerApplyEdits) (models.ApplyEditsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.layer(edits.ID)
	if err != nil {
		return models.ApplyEditsResponse{}, err
	}
	return l.apply(edits), nil
}

// ApplyServiceEdits applies the edits of several layers. Every referenced
// layer must exist before anything is applied.
func (s *Store) ApplyServiceEdits(edits []models.LayerApplyEdits) ([]models.LayerApplyEditsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range edits {
		if _, err := s.layer(e.ID); err != nil {
			return nil, err
		}
	}

	results := make([]models.LayerApplyEditsResult, 0, len(edits))
	for _, e := range edits {
		l, _ := s.layer(e.ID)
		results = append(results, models.LayerApplyEditsResult{ID: e.ID, ApplyEditsResponse: l.apply(e)})
	}
	return results, nil
}

// Identify returns, per layer, the features whose geometry lies within
// tolerance of p. Layers without hits are omitted.
func (s *Store) Identify(p orb.Point, tolerance float64) []models.IdentifyWireResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []models.IdentifyWireResult
	for _, l := range s.layers {
		var hits []models.WireFeature
		for _, f := range l.features {
			if f.Geometry == nil || !hit(f.Geometry, p, tolerance) {
				continue
			}
			wf, err := f.ToWire()
			if err != nil {
				continue
			}
			hits = append(hits, wf)
		}
		if len(hits) > 0 {
			results = append(results, models.IdentifyWireResult{
				LayerID:   l.info.ID,
				LayerName: l.info.Name,
				Features:  hits,
			})
		}
	}
	return results
}

func hit(g orb.Geometry, p orb.Point, tolerance float64) bool {
	switch g := g.(type) {
	case orb.Polygon:
		if planar.PolygonContains(g, p) {
			return true
		}
	case orb.MultiPolygon:
		if planar.MultiPolygonContains(g, p) {
			return true
		}
	}
	return planar.DistanceFrom(g, p) <= tolerance
}

func (s *Store) layer(id int) (*layer, error) {
	for _, l := range s.layers {
		if l.info.ID == id {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrLayerNotFound, id)
}

func (l *layer) apply(edits models.LayerApplyEdits) models.ApplyEditsResponse {
	resp := models.ApplyEditsResponse{
		AddResults:    make([]models.EditResult, 0, len(edits.Adds)),
		UpdateResults: make([]models.EditResult, 0, len(edits.Updates)),
		DeleteResults: make([]models.EditResult, 0, len(edits.Deletes)),
	}
	for _, wf := range edits.Adds {
		resp.AddResults = append(resp.AddResults, l.add(wf))
	}
	for _, wf := range edits.Updates {
		resp.UpdateResults = append(resp.UpdateResults, l.update(wf))
	}
	for _, id := range edits.Deletes {
		resp.DeleteResults = append(resp.DeleteResults, l.delete(id))
	}
	return resp
}

func (l *layer) add(wf models.WireFeature) models.EditResult {
	f, err := wf.Feature(uuid.Nil)
	if err != nil {
		return failed(CodeInvalidFeature, err.Error())
	}
	if missing := l.missingRequired(f.Attributes); missing != "" {
		return failed(CodeRequiredField, fmt.Sprintf("required field '%s' is missing", missing))
	}
	if f.GlobalID != uuid.Nil {
		if _, ok := l.find(f.GlobalID); ok {
			return failed(CodeDuplicateGlobal, "feature with this global id already exists")
		}
	}

	f = l.insert(f)
	return models.EditResult{ObjectID: f.ObjectID, GlobalID: f.GlobalID.String(), Success: true}
}

func (l *layer) update(wf models.WireFeature) models.EditResult {
	patch, err := wf.Feature(uuid.Nil)
	if err != nil {
		return failed(CodeInvalidFeature, err.Error())
	}
	i, ok := l.find(patch.GlobalID)
	if !ok {
		return failed(CodeFeatureNotFound, "feature not found")
	}

	merged := make(map[string]any, len(l.features[i].Attributes))
	for k, v := range l.features[i].Attributes {
		merged[k] = v
	}
	for k, v := range patch.Attributes {
		merged[k] = v
	}
	if missing := l.missingRequired(merged); missing != "" {
		return failed(CodeRequiredField, fmt.Sprintf("required field '%s' is missing", missing))
	}

	l.features[i].Attributes = merged
	if patch.Geometry != nil {
		l.features[i].Geometry = patch.Geometry
	}
	f := l.features[i]
	return models.EditResult{ObjectID: f.ObjectID, GlobalID: f.GlobalID.String(), Success: true}
}

func (l *layer) delete(globalID string) models.EditResult {
	id, err := uuid.Parse(globalID)
	if err != nil {
		return failed(CodeInvalidFeature, err.Error())
	}
	i, ok := l.find(id)
	if !ok {
		return failed(CodeFeatureNotFound, "feature not found")
	}

	f := l.features[i]
	l.features = append(l.features[:i], l.features[i+1:]...)
	return models.EditResult{ObjectID: f.ObjectID, GlobalID: f.GlobalID.String(), Success: true}
}

func (l *layer) insert(f models.Feature) models.Feature {
	if f.GlobalID == uuid.Nil {
		f.GlobalID = utils.NewGlobalID()
	}
	f.ObjectID = l.nextOID
	l.nextOID++
	if f.Attributes == nil {
		f.Attributes = map[string]any{}
	}
	l.features = append(l.features, f)
	return f
}

func (l *layer) find(globalID uuid.UUID) (int, bool) {
	if globalID == uuid.Nil {
		return 0, false
	}
	for i, f := range l.features {
		if f.GlobalID == globalID {
			return i, true
		}
	}
	return 0, false
}

// missingRequired returns the first editable non-nullable field that has no
// value.
func (l *layer) missingRequired(attributes map[string]any) string {
	for _, field := range l.info.Fields {
		if field.Nullable || !field.Editable {
			continue
		}
		v, ok := attributes[field.Name]
		if !ok || v == nil {
			return field.Name
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			return field.Name
		}
	}
	return ""
}

func failed(code int, description string) models.EditResult {
	return models.EditResult{Success: false, Error: &models.EditError{Code: code, Description: description}}
}
