// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"

	"github.com/MKhiriev/go-geo-toolkit/internal/logger"
	"github.com/MKhiriev/go-geo-toolkit/internal/store"
	"github.com/MKhiriev/go-geo-toolkit/internal/utils"
	"github.com/MKhiriev/go-geo-toolkit/models"
)

const saveEventsBuffer = 32

type featureFormService struct {
	repo    store.LocalEditRepository
	catalog *Catalog
	events  chan models.SaveEvent

	logger *logger.Logger
}

// NewFeatureFormService creates a form service that saves edits into the
// local store of storages.
func NewFeatureFormService(storages *store.ClientStorages, catalog *Catalog, logger *logger.Logger) FeatureFormService {
	return &featureFormService{
		repo:    storages.EditRepository,
		catalog: catalog,
		events:  make(chan models.SaveEvent, saveEventsBuffer),
		logger:  logger,
	}
}

func (s *featureFormService) Events() <-chan models.SaveEvent {
	return s.events
}

func (s *featureFormService) NewForm(feature models.Feature) (*models.FeatureForm, error) {
	table, ok := s.catalog.Table(feature.TableID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, feature.TableID)
	}

	form := &models.FeatureForm{Table: table, Feature: feature}
	for _, field := range table.Fields {
		ff := models.FormField{
			Name:     field.Name,
			Label:    field.Alias,
			Type:     field.Type,
			Editable: field.Editable,
		}
		if ff.Label == "" {
			ff.Label = field.Name
		}

		switch field.Type {
		case models.FieldTypeOID:
			ff.Editable = false
			if feature.ObjectID != 0 {
				ff.Value = strconv.FormatInt(feature.ObjectID, 10)
			}
		case models.FieldTypeGlobal:
			ff.Editable = false
			ff.Value = feature.GlobalID.String()
		default:
			ff.Value = formatValue(field.Type, feature.Attributes[field.Name])
		}
		form.Fields = append(form.Fields, ff)
	}
	return form, nil
}

func (s *featureFormService) NewFeatureForm(table models.FeatureTable, geometry orb.Geometry) *models.FeatureForm {
	feature := models.Feature{
		TableID:    table.ID,
		GlobalID:   utils.NewGlobalID(),
		Attributes: map[string]any{},
		Geometry:   geometry,
	}

	form := &models.FeatureForm{Table: table, Feature: feature}
	for _, field := range table.Fields {
		if field.Type == models.FieldTypeOID || field.Type == models.FieldTypeGlobal {
			continue
		}
		label := field.Alias
		if label == "" {
			label = field.Name
		}
		form.Fields = append(form.Fields, models.FormField{
			Name:     field.Name,
			Label:    label,
			Type:     field.Type,
			Editable: field.Editable,
		})
	}
	return form
}

func (s *featureFormService) Save(ctx context.Context, form *models.FeatureForm) error {
	if !form.HasChanges() {
		return ErrNoChanges
	}

	feature := form.Feature
	feature.Attributes = maps.Clone(feature.Attributes)
	if feature.Attributes == nil {
		feature.Attributes = map[string]any{}
	}
	for _, field := range form.Fields {
		if !field.Changed {
			continue
		}
		if !field.Editable {
			return fmt.Errorf("%w: %s", ErrReadOnlyField, field.Name)
		}
		v, err := parseValue(field)
		if err != nil {
			return err
		}
		feature.Attributes[field.Name] = v
	}

	editType := models.EditUpdate
	if feature.ObjectID == 0 {
		editType = models.EditAdd
	}

	if err := s.saveEdit(ctx, form.Table, feature, editType); err != nil {
		return err
	}

	form.Feature = feature
	for i := range form.Fields {
		form.Fields[i].Changed = false
	}
	return s.publish(ctx, form.Table, feature)
}

func (s *featureFormService) Delete(ctx context.Context, form *models.FeatureForm) (bool, error) {
	feature := form.Feature

	// never submitted: dropping the pending add is enough
	if feature.ObjectID == 0 {
		if err := s.repo.DeleteEdits(ctx, utils.EditID(form.Table.ID, feature.GlobalID)); err != nil {
			return true, fmt.Errorf("drop pending add: %w", err)
		}
		n, err := s.repo.CountPendingEdits(ctx, form.Table.ID)
		if err != nil {
			return true, fmt.Errorf("count pending edits: %w", err)
		}
		return n > 0, nil
	}

	if err := s.saveEdit(ctx, form.Table, feature, models.EditDelete); err != nil {
		return true, err
	}
	return true, s.publish(ctx, form.Table, feature)
}

func (s *featureFormService) saveEdit(ctx context.Context, table models.FeatureTable, feature models.Feature, editType models.EditType) error {
	edit := models.FeatureEdit{
		ID:      utils.EditID(table.ID, feature.GlobalID),
		TableID: table.ID,
		Type:    editType,
		Feature: feature,
	}
	if err := s.repo.SaveEdit(ctx, edit); err != nil {
		return fmt.Errorf("save %s edit: %w", editType, err)
	}

	s.logger.Debug().
		Str("table", table.Name).
		Str("global_id", feature.GlobalID.String()).
		Str("type", string(editType)).
		Msg("edit saved locally")
	return nil
}

func (s *featureFormService) publish(ctx context.Context, table models.FeatureTable, feature models.Feature) error {
	select {
	case s.events <- models.SaveEvent{Table: table, Feature: feature}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func formatValue(fieldType models.FieldType, v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case float64:
		if fieldType == models.FieldTypeDate {
			return time.UnixMilli(int64(n)).UTC().Format(time.DateOnly)
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int64:
		if fieldType == models.FieldTypeDate {
			return time.UnixMilli(n).UTC().Format(time.DateOnly)
		}
		return strconv.FormatInt(n, 10)
	default:
		return fmt.Sprint(n)
	}
}

// parseValue converts the text of a form field to its attribute value. Empty
// input clears the attribute.
func parseValue(field models.FormField) (any, error) {
	raw := strings.TrimSpace(field.Value)
	if raw == "" {
		return nil, nil
	}

	switch field.Type {
	case models.FieldTypeInteger:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q is not an integer", ErrInvalidFieldValue, field.Label, raw)
		}
		return v, nil
	case models.FieldTypeDouble:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q is not a number", ErrInvalidFieldValue, field.Label, raw)
		}
		return v, nil
	case models.FieldTypeDate:
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q is not a date (YYYY-MM-DD)", ErrInvalidFieldValue, field.Label, raw)
		}
		return t.UnixMilli(), nil
	default:
		return field.Value, nil
	}
}
