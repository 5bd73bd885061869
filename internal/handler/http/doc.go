// Package http implements the local Users API served by cmd/fakeapi.
//
// It exposes the same paths and response envelope as the student portal:
// GET and POST /api/v1/users, and GET, PUT and DELETE /api/v1/users/{id}.
// Request IDs, access logging and compression are handled here before the
// in-memory directory is called.
package http
