// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"github.com/MKhiriev/go-geo-toolkit/internal/logger"
	"github.com/MKhiriev/go-geo-toolkit/models"
)

type localEditRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalEditRepository returns the SQLite implementation of
// [LocalEditRepository].
func NewLocalEditRepository(db *DB, logger *logger.Logger) LocalEditRepository {
	return &localEditRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localEditRepository) SaveEdit(ctx context.Context, edit models.FeatureEdit) error {
	log := logger.FromContext(ctx)

	attributes, geometry, err := encodeFeature(edit.Feature)
	if err != nil {
		log.Err(err).
			Str("func", "localEditRepository.SaveEdit").
			Str("edit_id", edit.ID.String()).
			Msg("failed to encode feature edit")
		return err
	}

	createdAt := time.Now().UTC()
	if edit.CreatedAt != nil {
		createdAt = *edit.CreatedAt
	}

	_, err = l.DB.ExecContext(ctx, saveFeatureEdit,
		edit.ID.String(),
		edit.TableID.String(),
		string(edit.Type),
		edit.Feature.ObjectID,
		edit.Feature.GlobalID.String(),
		attributes,
		geometry,
		createdAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localEditRepository.SaveEdit").
			Str("table_id", edit.TableID.String()).
			Str("edit_id", edit.ID.String()).
			Msg("failed to execute upsert for feature edit")
		return fmt.Errorf("failed to save feature edit (id=%s): %w", edit.ID, err)
	}

	return nil
}

func (l *localEditRepository) PendingEdits(ctx context.Context, tableID uuid.UUID) ([]models.FeatureEdit, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getPendingEdits, tableID.String())
	if err != nil {
		log.Err(err).
			Str("func", "localEditRepository.PendingEdits").
			Str("table_id", tableID.String()).
			Msg("failed to execute query for pending edits")
		return nil, fmt.Errorf("failed to query pending edits: %w", err)
	}
	defer rows.Close()

	var edits []models.FeatureEdit
	for rows.Next() {
		edit, scanErr := scanFeatureEdit(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localEditRepository.PendingEdits").
				Str("table_id", tableID.String()).
				Msg("failed to scan feature edit row")
			return nil, fmt.Errorf("failed to scan feature edit row: %w", scanErr)
		}
		edits = append(edits, edit)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localEditRepository.PendingEdits").
			Str("table_id", tableID.String()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating feature edit rows: %w", rowsErr)
	}

	return edits, nil
}

func (l *localEditRepository) CountPendingEdits(ctx context.Context, tableIDs ...uuid.UUID) (int, error) {
	if len(tableIDs) == 0 {
		return 0, nil
	}
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("COUNT(*)").
		From(featureEditsTable).
		Where(sq.Eq{"table_id": uuidStrings(tableIDs)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = l.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "localEditRepository.CountPendingEdits").
			Int("tables", len(tableIDs)).
			Msg("failed to count pending edits")
		return 0, fmt.Errorf("failed to count pending edits: %w", err)
	}

	return count, nil
}

func (l *localEditRepository) TablesWithPendingEdits(ctx context.Context) ([]uuid.UUID, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getTablesWithPendingEdits)
	if err != nil {
		log.Err(err).
			Str("func", "localEditRepository.TablesWithPendingEdits").
			Msg("failed to execute query for dirty tables")
		return nil, fmt.Errorf("failed to query tables with pending edits: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var raw string
		if err = rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan table id: %w", err)
		}
		id, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: table id %q: %w", ErrDecodingEdit, raw, parseErr)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating table id rows: %w", err)
	}

	return ids, nil
}

func (l *localEditRepository) DeleteEdits(ctx context.Context, editIDs ...uuid.UUID) error {
	if len(editIDs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(featureEditsTable).
		Where(sq.Eq{"id": uuidStrings(editIDs)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localEditRepository.DeleteEdits").
			Int("edits", len(editIDs)).
			Msg("failed to delete submitted edits")
		return fmt.Errorf("failed to delete feature edits: %w", err)
	}

	return nil
}

func scanFeatureEdit(rows *sql.Rows) (models.FeatureEdit, error) {
	var (
		id, tableID, editType, globalID, attributes string
		geometry                                    sql.NullString
		objectID                                    int64
		createdAt                                   time.Time
	)

	if err := rows.Scan(&id, &tableID, &editType, &objectID, &globalID, &attributes, &geometry, &createdAt); err != nil {
		return models.FeatureEdit{}, err
	}

	edit := models.FeatureEdit{
		Type:      models.EditType(editType),
		CreatedAt: &createdAt,
	}
	var err error
	if edit.ID, err = uuid.Parse(id); err != nil {
		return models.FeatureEdit{}, fmt.Errorf("%w: id: %w", ErrDecodingEdit, err)
	}
	if edit.TableID, err = uuid.Parse(tableID); err != nil {
		return models.FeatureEdit{}, fmt.Errorf("%w: table id: %w", ErrDecodingEdit, err)
	}

	feature := models.Feature{TableID: edit.TableID, ObjectID: objectID}
	if feature.GlobalID, err = uuid.Parse(globalID); err != nil {
		return models.FeatureEdit{}, fmt.Errorf("%w: global id: %w", ErrDecodingEdit, err)
	}
	if err = json.Unmarshal([]byte(attributes), &feature.Attributes); err != nil {
		return models.FeatureEdit{}, fmt.Errorf("%w: attributes: %w", ErrDecodingEdit, err)
	}
	if geometry.Valid && geometry.String != "" {
		g, geomErr := geojson.UnmarshalGeometry([]byte(geometry.String))
		if geomErr != nil {
			return models.FeatureEdit{}, fmt.Errorf("%w: geometry: %w", ErrDecodingEdit, geomErr)
		}
		feature.Geometry = g.Geometry()
	}
	edit.Feature = feature

	return edit, nil
}

func encodeFeature(f models.Feature) (string, sql.NullString, error) {
	attrs := f.Attributes
	if attrs == nil {
		attrs = map[string]any{}
	}
	attributes, err := json.Marshal(attrs)
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("%w: attributes: %w", ErrEncodingEdit, err)
	}

	if f.Geometry == nil {
		return string(attributes), sql.NullString{}, nil
	}
	geometry, err := geojson.NewGeometry(f.Geometry).MarshalJSON()
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("%w: geometry: %w", ErrEncodingEdit, err)
	}

	return string(attributes), sql.NullString{String: string(geometry), Valid: true}, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
