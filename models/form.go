// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FormField is one editable input of a FeatureForm.
type FormField struct {
	Name     string
	Label    string
	Type     FieldType
	Value    string
	Editable bool
	Changed  bool
}

// FeatureForm collects attribute edits for a single feature.
type FeatureForm struct {
	Table   FeatureTable
	Feature Feature
	Fields  []FormField
}

// SetValue assigns a new textual value to the named field. It returns false if
// the field does not exist or is read-only.
func (f *FeatureForm) SetValue(name, value string) bool {
	for i := range f.Fields {
		if f.Fields[i].Name != name {
			continue
		}
		if !f.Fields[i].Editable {
			return false
		}
		if f.Fields[i].Value != value {
			f.Fields[i].Value = value
			f.Fields[i].Changed = true
		}
		return true
	}
	return false
}

// HasChanges reports whether any field was modified.
func (f *FeatureForm) HasChanges() bool {
	for _, field := range f.Fields {
		if field.Changed {
			return true
		}
	}
	return false
}
