// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-geo-toolkit/internal/adapter"
	"github.com/MKhiriev/go-geo-toolkit/internal/service"
	"github.com/MKhiriev/go-geo-toolkit/models"
)

type fakeSession struct {
	state service.SessionState
	dirty []models.FeatureTable

	submitErr   error
	submitCalls int
	dismissed   int
	closed      int

	openPoint models.ScreenPoint
	openForm  *models.FeatureForm
	openErr   error
	newTable  models.FeatureTable
	saved     *models.FeatureForm
	saveErr   error
	deleted   int
}

func (f *fakeSession) State() service.SessionState        { return f.state }
func (f *fakeSession) DirtyTables() []models.FeatureTable { return f.dirty }
func (f *fakeSession) DismissError() {
	f.dismissed++
	f.state.ShowError = false
	f.state.Err = nil
}
func (f *fakeSession) CloseForm() { f.closed++ }

func (f *fakeSession) Submit(context.Context) error {
	f.submitCalls++
	return f.submitErr
}

func (f *fakeSession) OpenForm(_ context.Context, point models.ScreenPoint) (*models.FeatureForm, error) {
	f.openPoint = point
	return f.openForm, f.openErr
}

func (f *fakeSession) OpenNewFeatureForm(table models.FeatureTable, point models.ScreenPoint) (*models.FeatureForm, error) {
	f.newTable = table
	f.openPoint = point
	return f.openForm, f.openErr
}

func (f *fakeSession) SaveForm(context.Context) error {
	f.saved = f.openForm
	return f.saveErr
}

func (f *fakeSession) DeleteFeature(context.Context) error {
	f.deleted++
	return nil
}

var hydrants = models.FeatureTable{
	ID:          uuid.New(),
	Name:        "Hydrants",
	Geodatabase: &models.Geodatabase{ServiceURL: "http://gis.example.com/FeatureServer"},
}

func newTestModel(session *fakeSession) mainLoopModel {
	tables := func() []models.FeatureTable { return []models.FeatureTable{hydrants} }
	return newMainLoopModel(context.Background(), session, tables, models.NewAppBuildInfo("1.0.0", "", ""))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(mainLoopModel)
	require.True(t, ok)
	return model, cmd
}

func typeText(t *testing.T, m mainLoopModel, s string) mainLoopModel {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, runes(string(r)))
	}
	return m
}

func hydrantForm() *models.FeatureForm {
	return &models.FeatureForm{
		Table:   hydrants,
		Feature: models.Feature{ObjectID: 3},
		Fields: []models.FormField{
			{Name: "OBJECTID", Label: "OBJECTID", Value: "3"},
			{Name: "name", Label: "Name", Value: "H-C", Editable: true},
			{Name: "pressure", Label: "Pressure", Type: models.FieldTypeDouble, Editable: true},
		},
	}
}

func TestSubmit_OnlyWhenAllowed(t *testing.T) {
	session := &fakeSession{dirty: []models.FeatureTable{hydrants}}
	m := newTestModel(session)

	m, cmd := press(t, m, runes("s"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Nothing to submit", m.status)

	session.state = service.SessionState{CanSubmit: true, DirtyCount: 1}
	m.refresh()

	m, cmd = press(t, m, runes("s"))
	require.NotNil(t, cmd)
	assert.True(t, m.state.Busy)
	assert.Contains(t, m.View(), "Submitting edits")

	session.dirty = nil
	session.state = service.SessionState{}
	m, _ = press(t, m, cmd())
	assert.Equal(t, 1, session.submitCalls)
	assert.Equal(t, "All edits submitted", m.status)
	assert.Contains(t, m.View(), "No unsubmitted edits")
}

func TestSubmit_ReasonWhenUnavailable(t *testing.T) {
	assert.Equal(t, "Submission already running", submitUnavailableReason(service.SessionState{Busy: true}))
	assert.Equal(t, "Close the form to submit", submitUnavailableReason(service.SessionState{FormOpen: true}))
	assert.Equal(t, "Nothing to submit", submitUnavailableReason(service.SessionState{}))
}

func TestErrorOverlay_DismissAndCopy(t *testing.T) {
	failure := errors.New("edits rejected")
	session := &fakeSession{state: service.SessionState{ShowError: true, Err: failure}}
	m := newTestModel(session)

	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	assert.Contains(t, m.View(), "Submission failed")

	m, _ = press(t, m, runes("i"))
	assert.Equal(t, stageList, m.stage, "keys are captured by the alert")

	m, _ = press(t, m, runes("c"))
	assert.Equal(t, "edits rejected", copied)
	assert.Contains(t, m.View(), "Copied")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 1, session.dismissed)
	assert.Equal(t, 0, session.submitCalls, "dismissing does not resubmit")
	assert.NotContains(t, m.View(), "Submission failed")
}

func TestIdentify_OpensFormAndSaves(t *testing.T) {
	form := hydrantForm()
	session := &fakeSession{openForm: form}
	m := newTestModel(session)

	m, _ = press(t, m, runes("i"))
	require.Equal(t, stageIdentify, m.stage)

	m = typeText(t, m, "25 30")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = press(t, m, cmd())
	assert.Equal(t, models.ScreenPoint{X: 25, Y: 30}, session.openPoint)
	require.Equal(t, stageForm, m.stage)
	assert.Contains(t, m.View(), "FEATURE 3: Hydrants")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "4.5")
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.Equal(t, "4.5", form.Fields[2].Value)
	assert.True(t, form.Fields[2].Changed)
	assert.False(t, form.Fields[1].Changed)

	m, _ = press(t, m, cmd())
	assert.Same(t, form, session.saved)
	assert.Equal(t, stageList, m.stage)
	assert.Equal(t, "Saved locally", m.status)
}

func TestIdentify_RefusedWhileBusy(t *testing.T) {
	session := &fakeSession{state: service.SessionState{Busy: true}}
	m := newTestModel(session)

	m, _ = press(t, m, runes("i"))
	assert.Equal(t, stageList, m.stage)
	assert.Contains(t, m.errMsg, "submission is running")
}

func TestIdentify_NothingFound(t *testing.T) {
	session := &fakeSession{openErr: fmt.Errorf("identify: %w", service.ErrNothingIdentified)}
	m := newTestModel(session)

	m, _ = press(t, m, runes("i"))
	m = typeText(t, m, "1,1")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(t, m, cmd())

	assert.Equal(t, stageList, m.stage)
	assert.Equal(t, "nothing found at this point", m.errMsg)
}

func TestIdentify_InvalidPoint(t *testing.T) {
	m := newTestModel(&fakeSession{})

	m, _ = press(t, m, runes("i"))
	m = typeText(t, m, "here")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, stageIdentify, m.stage)
	assert.NotEmpty(t, m.errMsg)
}

func TestAddFeature(t *testing.T) {
	form := &models.FeatureForm{Table: hydrants, Fields: []models.FormField{{Name: "name", Label: "Name", Editable: true}}}
	session := &fakeSession{openForm: form}
	m := newTestModel(session)

	m, _ = press(t, m, runes("a"))
	require.Equal(t, stageAddTable, m.stage)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, stageAddPoint, m.stage)

	m = typeText(t, m, "40 12")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(t, m, cmd())

	assert.Equal(t, hydrants.ID, session.newTable.ID)
	assert.Equal(t, models.ScreenPoint{X: 40, Y: 12}, session.openPoint)
	assert.Equal(t, stageForm, m.stage)
	assert.Contains(t, m.View(), "NEW FEATURE: Hydrants")
}

func TestForm_CloseAndDelete(t *testing.T) {
	session := &fakeSession{}
	m := newTestModel(session)
	m, _ = press(t, m, formOpenedMsg{form: hydrantForm()})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 1, session.closed)
	assert.Equal(t, stageList, m.stage)

	m, _ = press(t, m, formOpenedMsg{form: hydrantForm()})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, cmd)
	m, _ = press(t, m, cmd())
	assert.Equal(t, 1, session.deleted)
	assert.Equal(t, stageList, m.stage)
}

func TestForm_SaveErrorKeepsFormOpen(t *testing.T) {
	session := &fakeSession{openForm: hydrantForm(), saveErr: service.ErrNoChanges}
	m := newTestModel(session)
	m, _ = press(t, m, formOpenedMsg{form: session.openForm})

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = press(t, m, cmd())

	assert.Equal(t, stageForm, m.stage)
	assert.Equal(t, "nothing to save", m.form.errMsg)
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    models.ScreenPoint
		wantErr bool
	}{
		{in: "10 20", want: models.ScreenPoint{X: 10, Y: 20}},
		{in: " 1.5,-2 ", want: models.ScreenPoint{X: 1.5, Y: -2}},
		{in: "3, 4", want: models.ScreenPoint{X: 3, Y: 4}},
		{in: "", wantErr: true},
		{in: "1 2 3", wantErr: true},
		{in: "a 2", wantErr: true},
		{in: "1 b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePoint(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	table := models.FeatureTable{Name: "Parcels"}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "expired token", err: fmt.Errorf("apply edits: %w", adapter.ErrTokenExpired), want: "access token has expired, update the configured token"},
		{name: "unauthorized", err: adapter.ErrUnauthorized, want: "the feature service rejected the access token"},
		{name: "network", err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), want: msgServiceUnavailable},
		{
			name: "precondition",
			err:  &service.SubmissionError{Kind: service.KindPrecondition, Count: 1, Table: table, Err: service.ErrNoGeodatabase},
			want: `table "Parcels" cannot be submitted: no geodatabase found`,
		},
		{
			name: "rejected edits",
			err: &service.SubmissionError{
				Kind:  service.KindSubmission,
				Count: 2,
				Table: table,
				Err:   fmt.Errorf("%w: two", service.ErrEditsRejected),
			},
			want: `2 edit error(s) in table "Parcels", the table stays in the queue`,
		},
		{
			name: "transport",
			err:  &service.SubmissionError{Kind: service.KindSubmission, Count: 1, Table: table, Err: adapter.ErrUnauthorized},
			want: `table "Parcels" was not submitted: the feature service rejected the access token`,
		},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.err))
		})
	}
}

func TestBuildInfoWindow(t *testing.T) {
	m := newTestModel(&fakeSession{})

	m, _ = press(t, m, runes("v"))
	view := m.View()
	assert.Contains(t, view, "Version: 1.0.0")
	assert.Contains(t, view, "Date: N/A")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stageList, m.stage)
}
