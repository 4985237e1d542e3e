// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-geo-toolkit/internal/logger"
	"github.com/MKhiriev/go-geo-toolkit/internal/mock"
	"github.com/MKhiriev/go-geo-toolkit/internal/service"
	"github.com/MKhiriev/go-geo-toolkit/models"
)

const serviceURL = "http://gis.example.com/FeatureServer"

type spyUI struct {
	calls int
	err   error
	state func()
}

func (u *spyUI) MainLoop(context.Context) error {
	u.calls++
	if u.state != nil {
		u.state()
	}
	return u.err
}

type spyWorkers struct {
	running bool
	runs    int
	stops   int
}

func (w *spyWorkers) Run(context.Context) { w.running = true; w.runs++ }
func (w *spyWorkers) Stop()               { w.running = false; w.stops++ }

func testServiceInfo() models.ServiceInfo {
	return models.ServiceInfo{
		ServiceURL:           serviceURL,
		SupportsBatchedEdits: true,
		Layers: []models.LayerInfo{
			{ID: 0, Name: "Hydrants"},
			{ID: 1, Name: "Parcels"},
		},
	}
}

func newTestApp(t *testing.T, ui UI, workers BackgroundWorkers) (*App, *mock.MockFeatureServiceAdapter, *mock.MockLocalEditRepository, *service.ClientServices) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serviceAdapter := mock.NewMockFeatureServiceAdapter(ctrl)
	repo := mock.NewMockLocalEditRepository(ctrl)
	services := &service.ClientServices{
		Catalog:     service.NewCatalog(),
		DirtyTables: service.NewDirtyTables(),
	}

	app, err := NewApp(services, repo, serviceAdapter, ui, workers, logger.Nop())
	require.NoError(t, err)
	return app, serviceAdapter, repo, services
}

func TestNewApp_MissingDependency(t *testing.T) {
	_, err := NewApp(nil, nil, nil, nil, nil, logger.Nop())
	assert.Error(t, err)
}

func TestAppRun(t *testing.T) {
	workers := &spyWorkers{}
	ui := &spyUI{}
	app, serviceAdapter, repo, services := newTestApp(t, ui, workers)
	ui.state = func() {
		assert.True(t, workers.running, "workers run while the UI is open")
	}

	parcels := models.TableID(serviceURL, 1)
	serviceAdapter.EXPECT().ServiceInfo(gomock.Any()).Return(testServiceInfo(), nil)
	repo.EXPECT().TablesWithPendingEdits(gomock.Any()).Return([]uuid.UUID{parcels, uuid.New()}, nil)

	require.NoError(t, app.Run(context.Background()))

	assert.Len(t, services.Catalog.AllTables(), 2)
	dirty := services.DirtyTables.Snapshot()
	require.Len(t, dirty, 1)
	assert.Equal(t, "Parcels", dirty[0].Name)
	assert.True(t, dirty[0].Geodatabase.SupportsBatchedEdits)

	assert.Equal(t, 1, ui.calls)
	assert.Equal(t, 1, workers.runs)
	assert.Equal(t, 1, workers.stops)
}

func TestAppRun_ServiceUnavailable(t *testing.T) {
	workers := &spyWorkers{}
	ui := &spyUI{}
	app, serviceAdapter, _, _ := newTestApp(t, ui, workers)

	serviceAdapter.EXPECT().ServiceInfo(gomock.Any()).Return(models.ServiceInfo{}, errors.New("connection refused"))

	err := app.Run(context.Background())
	assert.ErrorContains(t, err, "load feature service")
	assert.Zero(t, ui.calls)
	assert.Zero(t, workers.runs)
}

func TestAppRun_RestoreError(t *testing.T) {
	ui := &spyUI{}
	app, serviceAdapter, repo, _ := newTestApp(t, ui, &spyWorkers{})

	serviceAdapter.EXPECT().ServiceInfo(gomock.Any()).Return(testServiceInfo(), nil)
	repo.EXPECT().TablesWithPendingEdits(gomock.Any()).Return(nil, errors.New("database is locked"))

	assert.ErrorContains(t, app.Run(context.Background()), "restore dirty tables")
	assert.Zero(t, ui.calls)
}

func TestAppRun_UIErrorStopsWorkers(t *testing.T) {
	workers := &spyWorkers{}
	app, serviceAdapter, repo, _ := newTestApp(t, &spyUI{err: errors.New("no tty")}, workers)

	serviceAdapter.EXPECT().ServiceInfo(gomock.Any()).Return(testServiceInfo(), nil)
	repo.EXPECT().TablesWithPendingEdits(gomock.Any()).Return(nil, nil)

	assert.ErrorContains(t, app.Run(context.Background()), "no tty")
	assert.Equal(t, 1, workers.stops)
}
