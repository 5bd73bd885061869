package adapter

import "errors"

// ErrTransport is the single failure category of the Users API transport.
// Network errors, non-2xx statuses and undecodable bodies all wrap it.
var ErrTransport = errors.New("users api transport failure")

// Status specific errors, always wrapped together with [ErrTransport].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrDecodeResponse is returned when a 2xx body is not a valid envelope.
	ErrDecodeResponse = errors.New("cannot decode response envelope")
	// ErrMissingUserID is returned before any request is sent when an
	// operation addressing one record gets an empty identifier.
	ErrMissingUserID = errors.New("user id is required")
	// ErrInvalidBaseURL is returned by the constructor when the configured
	// address has no host.
	ErrInvalidBaseURL = errors.New("invalid base url")
)
