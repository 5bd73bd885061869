// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoAddress = errors.New("listen address is empty")
	errNoHandler = errors.New("http handler is nil")
)
