// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the student-portal terminal client.
//
// It builds the transport, the directory store, the local cache and the
// services from configuration, seeds the directory from the cache, runs the
// background workers next to the terminal UI and tears everything down when
// the UI exits.
package client
