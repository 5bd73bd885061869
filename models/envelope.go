// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Envelope is the wrapper every Users API response comes in.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// MutationResult is the envelope returned by create, update and delete. The
// payload shape differs between endpoints and is kept raw.
type MutationResult = Envelope[json.RawMessage]

// ListUsersQuery holds the query parameters of GET /api/v1/users.
type ListUsersQuery struct {
	// AdminID scopes the listing to one administrator.
	AdminID string
	// Type filters by role when non-empty (e.g. TEACHER).
	Type Role
}
