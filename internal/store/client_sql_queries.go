// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	featureEditsTable = "feature_edits"

	// an add stays an add when the new feature is edited again before submission
	saveFeatureEdit = `
		INSERT INTO feature_edits (
			id,
			table_id,
			edit_type,
			object_id,
			global_id,
			attributes,
			geometry,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			edit_type  = CASE WHEN feature_edits.edit_type = 'add' THEN 'add' ELSE excluded.edit_type END,
			attributes = excluded.attributes,
			geometry   = excluded.geometry;`

	getPendingEdits = `
		SELECT
			id,
			table_id,
			edit_type,
			object_id,
			global_id,
			attributes,
			geometry,
			created_at
		FROM feature_edits
		WHERE table_id = ?
		ORDER BY created_at, id;`

	getTablesWithPendingEdits = `
		SELECT table_id
		FROM feature_edits
		GROUP BY table_id
		ORDER BY MIN(created_at), table_id;`
)
