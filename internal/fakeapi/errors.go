// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import "errors"

var (
	ErrAdminIDRequired   = errors.New("admin id is required")
	ErrInvalidRole       = errors.New("invalid role")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserIDMismatch    = errors.New("user id does not match the path")
)
