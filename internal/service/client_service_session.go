// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"

	"github.com/paulmach/orb"

	"github.com/MKhiriev/go-geo-toolkit/internal/logger"
	"github.com/MKhiriev/go-geo-toolkit/models"
)

// SessionState is the derived view state of an [EditSession].
type SessionState struct {
	// CanSubmit offers the submit action: a dirty table has a backing store,
	// no form is open and no round is running.
	CanSubmit bool

	// Busy shows the progress indicator.
	Busy bool

	// ShowError shows the error alert for Err.
	ShowError bool
	Err       error

	FormOpen   bool
	DirtyCount int
}

// EditSession ties the dirty tables, the submission coordinator and the
// currently open form together for one editing view.
type EditSession struct {
	dirty      *DirtyTables
	submission EditSubmissionService
	identifier FeatureIdentifier
	forms      FeatureFormService
	tolerance  float64

	mu         sync.Mutex
	form       *models.FeatureForm
	opening    bool
	submitting bool
	lastErr    error

	logger *logger.Logger
}

func NewEditSession(
	dirty *DirtyTables,
	submission EditSubmissionService,
	identifier FeatureIdentifier,
	forms FeatureFormService,
	tolerance float64,
	logger *logger.Logger,
) *EditSession {
	return &EditSession{
		dirty:      dirty,
		submission: submission,
		identifier: identifier,
		forms:      forms,
		tolerance:  tolerance,
		logger:     logger,
	}
}

// State derives the view flags from the current state.
func (s *EditSession) State() SessionState {
	s.mu.Lock()
	formOpen := s.form != nil || s.opening
	lastErr := s.lastErr
	submitting := s.submitting
	s.mu.Unlock()

	busy := submitting || s.submission.Busy()
	return SessionState{
		CanSubmit:  s.dirty.HasGeodatabaseEdits() && !formOpen && !busy,
		Busy:       busy,
		ShowError:  lastErr != nil,
		Err:        lastErr,
		FormOpen:   formOpen,
		DirtyCount: s.dirty.Len(),
	}
}

// DirtyTables returns the dirty tables in submission order.
func (s *EditSession) DirtyTables() []models.FeatureTable {
	return s.dirty.Snapshot()
}

// Form returns the open form, or nil.
func (s *EditSession) Form() *models.FeatureForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Submit runs a submission round. A failure is kept for the error alert
// until dismissed.
func (s *EditSession) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.form != nil || s.opening {
		s.mu.Unlock()
		return ErrFormOpen
	}
	if s.submitting {
		s.mu.Unlock()
		return ErrSubmissionInProgress
	}
	s.submitting = true
	s.mu.Unlock()

	err := s.submission.Submit(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if !errors.Is(err, ErrSubmissionInProgress) {
		s.lastErr = err
	}
	return err
}

// DismissError clears the stored failure without resubmitting.
func (s *EditSession) DismissError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = nil
}

// OpenForm identifies the feature at point and opens a form for it. It is
// refused while a submission round runs.
func (s *EditSession) OpenForm(ctx context.Context, point models.ScreenPoint) (*models.FeatureForm, error) {
	if err := s.beginOpening(); err != nil {
		return nil, err
	}

	form, err := s.identifyForm(ctx, point)
	s.finishOpening(form)
	return form, err
}

// OpenNewFeatureForm opens an empty form for a new feature of table placed
// at point.
func (s *EditSession) OpenNewFeatureForm(table models.FeatureTable, point models.ScreenPoint) (*models.FeatureForm, error) {
	if err := s.beginOpening(); err != nil {
		return nil, err
	}

	form := s.forms.NewFeatureForm(table, orb.Point{point.X, point.Y})
	s.finishOpening(form)
	return form, nil
}

func (s *EditSession) beginOpening() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting || s.submission.Busy() {
		return ErrSubmissionInProgress
	}
	if s.form != nil || s.opening {
		return ErrFormOpen
	}
	s.opening = true
	return nil
}

func (s *EditSession) finishOpening(form *models.FeatureForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opening = false
	s.form = form
}

func (s *EditSession) identifyForm(ctx context.Context, point models.ScreenPoint) (*models.FeatureForm, error) {
	feature, err := s.identifier.IdentifyFeature(ctx, point, s.tolerance)
	if err != nil {
		return nil, err
	}
	return s.forms.NewForm(feature)
}

// SaveForm saves the open form locally and closes it.
func (s *EditSession) SaveForm(ctx context.Context) error {
	form := s.Form()
	if form == nil {
		return ErrNoFormOpen
	}
	if err := s.forms.Save(ctx, form); err != nil {
		return err
	}
	s.CloseForm()
	return nil
}

// DeleteFeature records a delete of the open form's feature and closes the
// form. The table leaves the dirty set once nothing is pending for it.
func (s *EditSession) DeleteFeature(ctx context.Context) error {
	form := s.Form()
	if form == nil {
		return ErrNoFormOpen
	}
	pending, err := s.forms.Delete(ctx, form)
	if err != nil {
		return err
	}
	if !pending && s.dirty.Clear(form.Table.ID) {
		s.logger.Debug().Str("table", form.Table.Name).Msg("table has no pending edits left")
	}
	s.CloseForm()
	return nil
}

// CloseForm discards the open form.
func (s *EditSession) CloseForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = nil
}

// Watch marks tables dirty as save events arrive on events. It returns when
// ctx is done or events is closed.
func (s *EditSession) Watch(ctx context.Context, events <-chan models.SaveEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if s.dirty.MarkDirty(ev.Table) {
				s.logger.Debug().Str("table", ev.Table.Name).Msg("table marked dirty")
			}
		}
	}
}
