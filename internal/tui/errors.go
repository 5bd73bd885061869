// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

// ErrUIClosed is returned by [Bridge.Notify] when no program is running.
var ErrUIClosed = errors.New("terminal ui is not running")

var (
	errFirstNameRequired = errors.New("first name is required")
	errRoleInvalid       = errors.New("role must be ADMIN, TEACHER, STUDENT or PARENT")
	errNoExportDir       = errors.New("export directory is not configured")
)

// humanizeError shortens network failures for the status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "The portal is unreachable"
	}

	return err.Error()
}
