// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package featureserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/paulmach/orb"

	"github.com/MKhiriev/go-geo-toolkit/internal/logger"
	"github.com/MKhiriev/go-geo-toolkit/internal/utils"
	"github.com/MKhiriev/go-geo-toolkit/models"
)

// ServicePath is the route prefix of the service.
const ServicePath = "/FeatureServer"

type Handler struct {
	store *Store
	token string

	logger *logger.Logger
}

// NewHandler creates a handler serving store. A non-empty token is required
// as a bearer token on every request.
func NewHandler(store *Store, token string, logger *logger.Logger) *Handler {
	logger.Info().Msg("feature server handler created")
	return &Handler{
		store:  store,
		token:  token,
		logger: logger,
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Route(ServicePath, func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.serviceInfo)
		r.Get("/identify", h.identify)
		r.Post("/applyEdits", h.applyServiceEdits)
		r.Post("/{layerID}/applyEdits", h.applyEdits)
	})

	return router
}

func (h *Handler) serviceInfo(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.store.Info(), http.StatusOK); err != nil {
		logger.FromContext(r.Context()).Err(err).Str("func", "*Handler.serviceInfo").Send()
	}
}

func (h *Handler) identify(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	x, errX := queryFloat(r, "x")
	y, errY := queryFloat(r, "y")
	tolerance, errTol := queryFloat(r, "tolerance")
	if err := errors.Join(errX, errY, errTol); err != nil {
		log.Err(err).Str("func", "*Handler.identify").Msg("invalid identify parameters")
		utils.WriteServiceError(w, http.StatusBadRequest, "Unable to complete operation.", err.Error())
		return
	}

	results := h.store.Identify(orb.Point{x, y}, tolerance)
	if results == nil {
		results = []models.IdentifyWireResult{}
	}
	_, _ = utils.WriteJSON(w, models.IdentifyResponse{Results: results}, http.StatusOK)
}

func (h *Handler) applyEdits(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	layerID, err := strconv.Atoi(chi.URLParam(r, "layerID"))
	if err != nil {
		utils.WriteServiceError(w, http.StatusBadRequest, "Invalid layer id.", err.Error())
		return
	}

	edits := models.LayerApplyEdits{ID: layerID}
	decodeErr := errors.Join(
		formJSON(r, "adds", &edits.Adds),
		formJSON(r, "updates", &edits.Updates),
		formJSON(r, "deletes", &edits.Deletes),
	)
	if decodeErr != nil {
		log.Err(decodeErr).Str("func", "*Handler.applyEdits").Msg("invalid edits payload")
		utils.WriteServiceError(w, http.StatusBadRequest, "Unable to complete operation.", decodeErr.Error())
		return
	}

	resp, err := h.store.ApplyEdits(edits)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) applyServiceEdits(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if !h.store.Info().SupportsBatchedEdits {
		utils.WriteServiceError(w, http.StatusBadRequest, "Service does not support service-level applyEdits.")
		return
	}

	var edits []models.LayerApplyEdits
	if err := formJSON(r, "edits", &edits); err != nil {
		log.Err(err).Str("func", "*Handler.applyServiceEdits").Msg("invalid edits payload")
		utils.WriteServiceError(w, http.StatusBadRequest, "Unable to complete operation.", err.Error())
		return
	}

	resp, err := h.store.ApplyServiceEdits(edits)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Err(err).Msg("edits rejected")
	if errors.Is(err, ErrLayerNotFound) {
		utils.WriteServiceError(w, http.StatusBadRequest, "Invalid layer.", err.Error())
		return
	}
	utils.WriteServiceError(w, http.StatusInternalServerError, "Unable to complete operation.", err.Error())
}

func queryFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		if name == "tolerance" {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidParameter, name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidParameter, name, err)
	}
	return v, nil
}

// formJSON decodes the JSON-encoded form field name into dst. Missing fields
// leave dst untouched.
func formJSON(r *http.Request, name string, dst any) error {
	raw := r.FormValue(name)
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidParameter, name, err)
	}
	return nil
}
