// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive editing client runtime.
//
// It loads the feature service description into the table catalog, restores
// tables with unsubmitted local edits, starts the background workers and runs
// the terminal UI as a single process lifecycle.
package client
