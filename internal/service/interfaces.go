// Package service implements the client's business layer: the user
// directory operations, the UI effects that follow them, and the background
// jobs that keep the directory fresh.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/student-portal/internal/directory"
	"github.com/MKhiriev/student-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// LoadingIndicator is switched on around every API call. It is a plain
// on/off switch; overlapping calls may turn it off early.
type LoadingIndicator interface {
	Load()
	Stop()
}

// Notifier shows a dismissible message to the administrator.
type Notifier interface {
	// Notify blocks until the message is dismissed or ctx is done.
	Notify(ctx context.Context, n models.Notification) error
}

// Navigator moves the UI between screens.
type Navigator interface {
	// NavigateTo opens the screen identified by the route segments, e.g.
	// NavigateTo("admin", "users").
	NavigateTo(route ...string)
	// Back returns to the previous screen.
	Back()
}

// DirectoryStore is the state the directory service publishes into.
// *directory.Store implements it.
type DirectoryStore interface {
	Snapshot() models.DirectorySnapshot
	Users() []models.User
	Teachers() []models.Teacher
	SetUsers(users []models.User)
	SetTeachers(teachers []models.Teacher)
	Subscribe(l directory.Listener) (unsubscribe func())
}

// UserDirectoryService mediates between the UI and the Users API.
//
// Every call switches the loading indicator on before the request and off
// after it settles, on every path. The create, delete and edit operations
// additionally notify the administrator of the outcome; on success they
// refresh the user list and navigate.
type UserDirectoryService interface {
	// ListUsers fetches every user of adminID. The directory users are
	// replaced only when the API reports success; the data is returned
	// either way.
	ListUsers(ctx context.Context, adminID string) ([]models.User, error)

	// ListTeachers fetches the teachers of adminID, flattens their nested
	// teacher objects and replaces the directory teachers. A record that
	// cannot be flattened fails the whole call and leaves the state as is.
	ListTeachers(ctx context.Context, adminID string) ([]models.Teacher, error)

	// GetUser fetches one record. The directory is not changed.
	GetUser(ctx context.Context, userID models.ID) (models.User, error)

	// CreateUser upper-cases the role of user and creates it for adminID.
	CreateUser(ctx context.Context, user models.User, adminID string) error

	// DeleteUser deletes user by its USER_ID.
	DeleteUser(ctx context.Context, user models.User, adminID string) error

	// EditUser replaces the record with the USER_ID of user.
	EditUser(ctx context.Context, user models.User, adminID string) error

	// SetUsers replaces the directory users without calling the API.
	SetUsers(users []models.User)
}

// RefreshJob periodically re-fetches the directory in the background.
type RefreshJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, adminID string, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
