// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ScreenPoint is a coordinate on the rendered map surface.
type ScreenPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// IdentifyLayerResult holds the elements hit in one layer by an identify
// operation, in the order returned by the service.
type IdentifyLayerResult struct {
	LayerID     int       `json:"layerId"`
	LayerName   string    `json:"layerName"`
	GeoElements []Feature `json:"-"`
}

// ServiceInfo describes a remote feature service.
type ServiceInfo struct {
	ServiceURL           string      `json:"-"`
	Layers               []LayerInfo `json:"layers"`
	SupportsBatchedEdits bool        `json:"supportsApplyEditsWithGlobalIds"`
}

// LayerInfo describes one layer of a feature service.
type LayerInfo struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Fields []Field `json:"fields,omitempty"`
}
