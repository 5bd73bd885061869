// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the client and the local
// Users API.
//
// The Notify* templates are shown to the administrator after a mutation
// settles. The Msg* constants are written into API error envelopes by the
// fake API and recognised by the client when it explains a failure.
package app

// Notification templates.
const (
	// NotifyUserCreated takes the upper-cased role of the new record.
	NotifyUserCreated = "The %s has been created successfully"

	// NotifyUserDeleted takes the first and last name of the deleted record.
	NotifyUserDeleted = "%s %s has been deleted successfully."

	// NotifyUserUpdated takes the first and last name of the edited record.
	NotifyUserUpdated = "%s %s has been updated successfully."

	// NotifyMutationFailed takes what was attempted ("create the TEACHER")
	// and the reason.
	NotifyMutationFailed = "Failed to %s: %s"

	// ActionOK is the dismiss label of every notification.
	ActionOK = "OK"
)

// API error messages.
const (
	// MsgAdminIDRequired is returned when the adminId query parameter is
	// missing.
	MsgAdminIDRequired = "adminId is required"

	// MsgInvalidDataProvided is returned when the request body is not a user
	// object.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidRole is returned when a record carries an unknown role.
	MsgInvalidRole = "invalid role"

	// MsgFirstNameRequired is returned when a created or edited record has
	// no USER_FNAME.
	MsgFirstNameRequired = "first name is required"

	// MsgUserNotFound is returned when no record has the requested USER_ID.
	MsgUserNotFound = "user not found"

	// MsgUserAlreadyExists is returned when a created record reuses an
	// existing USER_ID.
	MsgUserAlreadyExists = "user already exists"

	// MsgUserIDMismatch is returned when the USER_ID of an update body
	// differs from the path.
	MsgUserIDMismatch = "USER_ID does not match the path"
)
