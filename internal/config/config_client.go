// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultRequestTimeout    = 15 * time.Second
	defaultIdentifyTolerance = 12
	defaultServerAddress     = "localhost:8080"
)

// ClientAdapter holds the settings used by the client transport layer.
type ClientAdapter struct {
	ServiceURL        string
	Token             string
	RequestTimeout    time.Duration
	IdentifyTolerance float64
}

// ClientStorage holds the local edit store settings.
type ClientStorage struct {
	DB DB
}

// ClientWorkers holds client background job settings.
type ClientWorkers struct {
	// SubmitInterval is the automatic submission period; zero disables it.
	SubmitInterval time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	LogPath string
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// ServerConfig is the development feature server view of [StructuredConfig].
type ServerConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration

	// Token, when set, is required as a bearer token on every request.
	Token string
}

// GetClientConfig builds, defaults and validates the client configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// GetServerConfig builds, defaults and validates the dev server configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		LogPath: cfg.App.LogPath,
		Adapter: ClientAdapter{
			ServiceURL:        cfg.Adapter.ServiceURL,
			Token:             cfg.Adapter.Token,
			RequestTimeout:    cfg.Adapter.RequestTimeout,
			IdentifyTolerance: cfg.Adapter.IdentifyTolerance,
		},
		Storage: ClientStorage{DB: cfg.Storage.DB},
		Workers: ClientWorkers{SubmitInterval: cfg.Workers.SubmitInterval},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Adapter.IdentifyTolerance == 0 {
		clientCfg.Adapter.IdentifyTolerance = defaultIdentifyTolerance
	}

	return clientCfg
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		Token:          cfg.Adapter.Token,
	}
	if serverCfg.HTTPAddress == "" {
		serverCfg.HTTPAddress = defaultServerAddress
	}
	if serverCfg.RequestTimeout == 0 {
		serverCfg.RequestTimeout = defaultRequestTimeout
	}
	return serverCfg
}
