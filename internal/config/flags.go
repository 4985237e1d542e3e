// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args (without the program name).
//
// Flags:
//
//	-a              dev server address in format [host]:[port]
//	-s              feature service URL
//	-token          feature service bearer token
//	-d              local SQLite DSN
//	-c/-config      json file path with configs
//	-log            client log file path
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-tolerance      identify tolerance
//	-submit-interval automatic submission interval (e.g., "5m")
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var serviceURL, token, dsn, jsonConfigPath, logPath string
	var requestTimeout, submitInterval time.Duration
	var tolerance float64

	fs := flag.NewFlagSet("geo-toolkit", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&serviceURL, "s", "", "Feature service URL")
	fs.StringVar(&token, "token", "", "Feature service token")
	fs.StringVar(&dsn, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logPath, "log", "", "Client log file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&tolerance, "tolerance", 0, "Identify tolerance")
	fs.DurationVar(&submitInterval, "submit-interval", 0, "Automatic submission interval (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{LogPath: logPath},
		Adapter: Adapter{
			ServiceURL:        serviceURL,
			Token:             token,
			RequestTimeout:    requestTimeout,
			IdentifyTolerance: tolerance,
		},
		Storage: Storage{DB: DB{DSN: dsn}},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{SubmitInterval: submitInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
