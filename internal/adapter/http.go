// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-geo-toolkit/internal/config"
	"github.com/MKhiriev/go-geo-toolkit/internal/logger"
	"github.com/MKhiriev/go-geo-toolkit/internal/utils"
	"github.com/MKhiriev/go-geo-toolkit/models"
)

type httpFeatureServiceAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	mu    sync.RWMutex
	token string

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPFeatureServiceAdapter constructs an HTTP/REST implementation of
// [FeatureServiceAdapter]. It normalises and validates the service URL from
// adapterCfg.ServiceURL and configures the underlying HTTP client with the
// resolved base URL and request timeout. A token from the configuration is
// stored right away.
//
// Returns an error if adapterCfg.ServiceURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPFeatureServiceAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (FeatureServiceAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServiceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid feature service url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	a := &httpFeatureServiceAdapter{client: client, baseURL: baseURL, now: time.Now, logger: logger}
	a.SetToken(adapterCfg.Token)
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [FeatureServiceAdapter].
func (h *httpFeatureServiceAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [FeatureServiceAdapter].
func (h *httpFeatureServiceAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ServiceInfo implements [FeatureServiceAdapter]. It GETs the service root
// with f=json.
func (h *httpFeatureServiceAdapter) ServiceInfo(ctx context.Context) (models.ServiceInfo, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.ServiceInfo{}, err
	}

	resp, err := req.SetQueryParam("f", "json").Get("/")
	if err != nil {
		return models.ServiceInfo{}, fmt.Errorf("service info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServiceInfo{}, err
	}

	var info models.ServiceInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.ServiceInfo{}, fmt.Errorf("decode service info: %w", err)
	}
	info.ServiceURL = h.baseURL
	return info, nil
}

// ApplyEdits implements [FeatureServiceAdapter]. It POSTs the edits as form
// fields to {service}/{layer}/applyEdits and returns the add, update and
// delete results in that order.
func (h *httpFeatureServiceAdapter) ApplyEdits(ctx context.Context, table models.FeatureTable, edits []models.FeatureEdit) ([]models.EditResult, error) {
	payload, err := splitEdits(table.LayerID, edits)
	if err != nil {
		return nil, err
	}

	form, err := applyEditsForm(payload)
	if err != nil {
		return nil, err
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := h.endpoint(table.ServiceURL, strconv.Itoa(table.LayerID)+"/applyEdits")
	h.logger.Debug().
		Str("table", table.Name).
		Int("edits", len(edits)).
		Str("url", endpoint).
		Msg("applying table edits")

	resp, err := req.SetFormData(form).Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("apply edits request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body models.ApplyEditsResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode apply edits response: %w", err)
	}

	return payload.results(body)
}

// ApplyServiceEdits implements [FeatureServiceAdapter]. It POSTs all layers
// to {service}/applyEdits in a single request.
func (h *httpFeatureServiceAdapter) ApplyServiceEdits(ctx context.Context, gdb models.Geodatabase, edits []models.LayerEdits) ([]models.TableEditResult, error) {
	payloads := make(map[int]*layerPayload, len(edits))
	tables := make(map[int]uuid.UUID, len(edits))
	wire := make([]models.LayerApplyEdits, 0, len(edits))

	for _, layer := range edits {
		payload, err := splitEdits(layer.Table.LayerID, layer.Edits)
		if err != nil {
			return nil, err
		}
		payloads[layer.Table.LayerID] = payload
		tables[layer.Table.LayerID] = layer.Table.ID
		wire = append(wire, payload.LayerApplyEdits)
	}

	encoded, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("encode edits: %w", err)
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := h.endpoint(gdb.ServiceURL, "applyEdits")
	h.logger.Debug().
		Int("layers", len(edits)).
		Str("url", endpoint).
		Msg("applying geodatabase edits")

	resp, err := req.SetFormData(map[string]string{
		"f":            "json",
		"useGlobalIds": "true",
		"edits":        string(encoded),
	}).Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("apply service edits request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body []models.LayerApplyEditsResult
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode apply service edits response: %w", err)
	}

	results := make([]models.TableEditResult, 0, len(body))
	for _, layer := range body {
		payload, ok := payloads[layer.ID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownLayer, layer.ID)
		}
		editResults, err := payload.results(layer.ApplyEditsResponse)
		if err != nil {
			return nil, err
		}
		results = append(results, models.TableEditResult{
			LayerID: layer.ID,
			TableID: tables[layer.ID],
			Results: editResults,
		})
	}
	return results, nil
}

// Identify implements [FeatureServiceAdapter]. It GETs {service}/identify
// with the point and tolerance as query parameters.
func (h *httpFeatureServiceAdapter) Identify(ctx context.Context, point models.ScreenPoint, tolerance float64) ([]models.IdentifyLayerResult, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetQueryParams(map[string]string{
		"f":         "json",
		"x":         strconv.FormatFloat(point.X, 'f', -1, 64),
		"y":         strconv.FormatFloat(point.Y, 'f', -1, 64),
		"tolerance": strconv.FormatFloat(tolerance, 'f', -1, 64),
	}).Get("/identify")
	if err != nil {
		return nil, fmt.Errorf("identify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body models.IdentifyResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode identify response: %w", err)
	}

	results := make([]models.IdentifyLayerResult, 0, len(body.Results))
	for _, layer := range body.Results {
		tableID := models.TableID(h.baseURL, layer.LayerID)
		elements := make([]models.Feature, 0, len(layer.Features))
		for _, wf := range layer.Features {
			f, err := wf.Feature(tableID)
			if err != nil {
				return nil, fmt.Errorf("decode identified feature: %w", err)
			}
			elements = append(elements, f)
		}
		results = append(results, models.IdentifyLayerResult{
			LayerID:     layer.LayerID,
			LayerName:   layer.LayerName,
			GeoElements: elements,
		})
	}
	return results, nil
}

// authedRequest returns a request carrying the bearer token, or
// [ErrTokenExpired] when the token is a JWT past its expiry.
func (h *httpFeatureServiceAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)
	token := h.Token()
	if token == "" {
		return req, nil
	}
	if utils.TokenExpired(token, h.now()) {
		return nil, ErrTokenExpired
	}
	return req.SetHeader("Authorization", "Bearer "+token), nil
}

// endpoint resolves path against serviceURL, falling back to the configured
// base URL.
func (h *httpFeatureServiceAdapter) endpoint(serviceURL, path string) string {
	serviceURL = strings.TrimRight(serviceURL, "/")
	if serviceURL == "" || serviceURL == h.baseURL {
		return "/" + path
	}
	return serviceURL + "/" + path
}

// layerPayload is the wire form of one layer's edits together with the edit
// IDs of each category, in request order.
type layerPayload struct {
	models.LayerApplyEdits
	addIDs, updateIDs, deleteIDs []uuid.UUID
}

func splitEdits(layerID int, edits []models.FeatureEdit) (*layerPayload, error) {
	p := &layerPayload{LayerApplyEdits: models.LayerApplyEdits{ID: layerID}}
	for _, edit := range edits {
		switch edit.Type {
		case models.EditDelete:
			p.Deletes = append(p.Deletes, edit.Feature.GlobalID.String())
			p.deleteIDs = append(p.deleteIDs, edit.ID)
		case models.EditAdd, models.EditUpdate:
			wf, err := edit.Feature.ToWire()
			if err != nil {
				return nil, fmt.Errorf("encode edit %s: %w", edit.ID, err)
			}
			if edit.Type == models.EditAdd {
				p.Adds = append(p.Adds, wf)
				p.addIDs = append(p.addIDs, edit.ID)
			} else {
				p.Updates = append(p.Updates, wf)
				p.updateIDs = append(p.updateIDs, edit.ID)
			}
		default:
			return nil, fmt.Errorf("unknown edit type %q", edit.Type)
		}
	}
	return p, nil
}

func applyEditsForm(p *layerPayload) (map[string]string, error) {
	form := map[string]string{"f": "json", "useGlobalIds": "true"}
	for key, v := range map[string]any{"adds": p.Adds, "updates": p.Updates, "deletes": p.Deletes} {
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		form[key] = string(encoded)
	}
	return form, nil
}

// results links each returned result to the edit that produced it. Results
// are matched by position within their category.
func (p *layerPayload) results(body models.ApplyEditsResponse) ([]models.EditResult, error) {
	out := make([]models.EditResult, 0, len(p.addIDs)+len(p.updateIDs)+len(p.deleteIDs))
	for _, category := range []struct {
		name    string
		ids     []uuid.UUID
		results []models.EditResult
	}{
		{"add", p.addIDs, body.AddResults},
		{"update", p.updateIDs, body.UpdateResults},
		{"delete", p.deleteIDs, body.DeleteResults},
	} {
		if len(category.results) != len(category.ids) {
			return nil, fmt.Errorf("layer %d: expected %d %s results, got %d",
				p.ID, len(category.ids), category.name, len(category.results))
		}
		for i, r := range category.results {
			r.EditID = category.ids[i]
			out = append(out, r)
		}
	}
	return out, nil
}
