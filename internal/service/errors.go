package service

import "errors"

var (
	// ErrRefreshAfterMutation is returned when a mutation succeeded but the
	// user list could not be fetched afterwards. The mutation stands.
	ErrRefreshAfterMutation = errors.New("mutation succeeded but user list refresh failed")

	// ErrNotificationAborted is returned when the context ended before the
	// administrator dismissed the outcome of a successful mutation.
	ErrNotificationAborted = errors.New("notification was not dismissed")

	// ErrNoAdminID is returned by background jobs started without an
	// administrator.
	ErrNoAdminID = errors.New("no admin id was given")
)
