// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal front end of the editing client: the
// dirty table list, identify and feature forms, submission progress and the
// submission error alert.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-geo-toolkit/internal/logger"
	"github.com/MKhiriev/go-geo-toolkit/internal/service"
	"github.com/MKhiriev/go-geo-toolkit/models"
)

// editSession is the part of [service.EditSession] driven by the UI.
type editSession interface {
	State() service.SessionState
	DirtyTables() []models.FeatureTable
	Submit(ctx context.Context) error
	DismissError()
	OpenForm(ctx context.Context, point models.ScreenPoint) (*models.FeatureForm, error)
	OpenNewFeatureForm(table models.FeatureTable, point models.ScreenPoint) (*models.FeatureForm, error)
	SaveForm(ctx context.Context) error
	DeleteFeature(ctx context.Context) error
	CloseForm()
}

type TUI struct {
	session   editSession
	tables    func() []models.FeatureTable
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.Session == nil {
		return nil, fmt.Errorf("tui: edit session is not configured")
	}
	return &TUI{
		session:   services.Session,
		tables:    services.Catalog.AllTables,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// MainLoop runs the editing screen until the user quits.
func (t *TUI) MainLoop(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.session, t.tables, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if _, ok := finalModel.(mainLoopModel); !ok {
		return tea.ErrProgramKilled
	}
	t.logger.Info().Msg("tui closed")
	return nil
}
