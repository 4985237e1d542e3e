// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	u, err := url.Parse(cfg.Adapter.ServiceURL)
	if cfg.Adapter.ServiceURL == "" || err != nil || u.Host == "" {
		return fmt.Errorf("%w: service url %q", ErrInvalidAdapterConfigs, cfg.Adapter.ServiceURL)
	}
	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.IdentifyTolerance < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SubmitInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}
