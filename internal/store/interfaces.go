// Package store persists the last known user directory on the client
// device, so the UI can show data before the first API call completes.
//
// The cache lives in an SQLite database whose schema is managed by the
// migrations package. [SnapshotRepository] is the only abstraction the
// service layer depends on.
package store

import (
	"context"

	"github.com/MKhiriev/student-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotRepository stores directory collections per administrator.
type SnapshotRepository interface {
	// SaveUsers replaces the cached users of adminID with users in one
	// transaction. The list order is preserved.
	SaveUsers(ctx context.Context, adminID string, users []models.User) error

	// LoadUsers returns the cached users of adminID in saved order. An empty
	// cache yields an empty list and no error.
	LoadUsers(ctx context.Context, adminID string) ([]models.User, error)

	// SaveTeachers replaces the cached teachers of adminID with teachers in
	// one transaction.
	SaveTeachers(ctx context.Context, adminID string, teachers []models.Teacher) error

	// LoadTeachers returns the cached teachers of adminID in saved order.
	LoadTeachers(ctx context.Context, adminID string) ([]models.Teacher, error)
}
