// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the student
// portal Users API.
//
// The primary abstraction is [UsersAdapter], which decouples the service
// layer from the wire protocol. The package ships an HTTP/REST
// implementation built on resty ([NewHTTPUsersAdapter]).
//
// Every failure returned by an adapter wraps [ErrTransport]. Status specific
// sentinels (e.g. [ErrNotFound] for 404) are wrapped alongside it for
// diagnostics, so callers can use [errors.Is] with either.
package adapter

import (
	"context"

	"github.com/MKhiriev/student-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/users_adapter_mock.go -package=mock

// UsersAdapter performs the Users API calls and returns the decoded response
// envelopes. It never inspects Envelope.Success; that decision belongs to the
// caller.
type UsersAdapter interface {
	// ListUsers sends GET /api/v1/users with adminId and, when q.Type is set,
	// the type filter.
	ListUsers(ctx context.Context, q models.ListUsersQuery) (models.Envelope[[]models.User], error)

	// GetUser sends GET /api/v1/users/{id}.
	GetUser(ctx context.Context, userID models.ID) (models.Envelope[models.User], error)

	// CreateUser sends POST /api/v1/users?adminId= with user as the body.
	CreateUser(ctx context.Context, adminID string, user models.User) (models.MutationResult, error)

	// UpdateUser sends PUT /api/v1/users/{user.UserID}?adminId= with user as
	// the body.
	UpdateUser(ctx context.Context, adminID string, user models.User) (models.MutationResult, error)

	// DeleteUser sends DELETE /api/v1/users/{userID}?adminId=.
	DeleteUser(ctx context.Context, adminID string, userID models.ID) (models.MutationResult, error)
}
