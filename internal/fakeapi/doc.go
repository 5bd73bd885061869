// Package fakeapi holds the in-memory user directory behind the local Users
// API served by cmd/fakeapi.
//
// Records are scoped by administrator when listed, exactly as the portal
// scopes them by the adminId query parameter. Every TEACHER record owns a
// teacher identifier that is returned in a nested "teacher" object when the
// listing is filtered by type=TEACHER.
package fakeapi
