// Package featureserver implements an in-memory feature service speaking the
// same REST dialect as the client adapter: service info, identify and
// layer- or service-level applyEdits.
//
// It backs local development and the transport tests. Layers declare which
// fields are required, so a submission can be partially rejected on demand.
package featureserver
