// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/student-portal/internal/app"
	"github.com/MKhiriev/student-portal/internal/fakeapi"
	"github.com/MKhiriev/student-portal/internal/validators"
)

// errInvalidBody is returned when a request body is not a user object.
var errInvalidBody = errors.New("invalid request body")

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	errInvalidBody:                  {http.StatusBadRequest, app.MsgInvalidDataProvided},
	validators.ErrInvalidRole:       {http.StatusBadRequest, app.MsgInvalidRole},
	validators.ErrFirstNameRequired: {http.StatusBadRequest, app.MsgFirstNameRequired},
	validators.ErrInvalidProfile:    {http.StatusBadRequest, app.MsgInvalidDataProvided},
	fakeapi.ErrAdminIDRequired:      {http.StatusBadRequest, app.MsgAdminIDRequired},
	fakeapi.ErrInvalidRole:          {http.StatusBadRequest, app.MsgInvalidRole},
	fakeapi.ErrUserIDMismatch:       {http.StatusBadRequest, app.MsgUserIDMismatch},
	fakeapi.ErrUserNotFound:         {http.StatusNotFound, app.MsgUserNotFound},
	fakeapi.ErrUserAlreadyExists:    {http.StatusConflict, app.MsgUserAlreadyExists},
}

// responseFromError returns the status code and envelope message for err.
// Unknown errors become 500.
func responseFromError(err error) (int, string) {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
