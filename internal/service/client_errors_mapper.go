// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/student-portal/internal/adapter"
	"github.com/MKhiriev/student-portal/internal/app"
)

// failureReason turns an adapter error into the short explanation shown in a
// failure notification.
func failureReason(err error) string {
	body := err.Error()

	switch {
	case errors.Is(err, adapter.ErrMissingUserID):
		return "the record has no USER_ID"

	case errors.Is(err, adapter.ErrBadRequest):
		switch {
		case strings.Contains(body, app.MsgInvalidRole):
			return "the role is not valid"
		case strings.Contains(body, app.MsgFirstNameRequired):
			return "the first name is missing"
		case strings.Contains(body, app.MsgUserIDMismatch):
			return "the USER_ID does not match the record"
		case strings.Contains(body, app.MsgAdminIDRequired):
			return "no administrator is configured"
		}
		return "the portal rejected the data"

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return "you are not allowed to do this"

	case errors.Is(err, adapter.ErrNotFound):
		return "the user no longer exists"

	case errors.Is(err, adapter.ErrConflict):
		if strings.Contains(body, app.MsgUserAlreadyExists) {
			return "the user already exists"
		}
		return "the record was changed on the portal"

	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return "the portal failed to process the request"

	case errors.Is(err, adapter.ErrDecodeResponse):
		return "the portal sent an unexpected response"
	}

	return "the portal could not be reached"
}
