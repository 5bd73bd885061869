package models

import "time"

// DirectorySnapshot is one immutable state of the user directory: the last
// successfully fetched users and teachers.
type DirectorySnapshot struct {
	// Version grows by one with every accepted update.
	Version   uint64
	UpdatedAt time.Time

	Users    []User
	Teachers []Teacher
}

// Clone returns a deep copy of s.
func (s DirectorySnapshot) Clone() DirectorySnapshot {
	return DirectorySnapshot{
		Version:   s.Version,
		UpdatedAt: s.UpdatedAt,
		Users:     CloneUsers(s.Users),
		Teachers:  CloneTeachers(s.Teachers),
	}
}

// FindUser returns the user with the given id, if present.
func (s DirectorySnapshot) FindUser(id ID) (User, bool) {
	for _, u := range s.Users {
		if u.UserID == id {
			return u.Clone(), true
		}
	}
	return User{}, false
}

// NotificationKind tells the UI how to present a [Notification].
type NotificationKind int

const (
	NotificationSuccess NotificationKind = iota
	NotificationFailure
)

// Notification is a dismissible message shown after a mutation settles.
type Notification struct {
	Message string
	// Action is the label of the dismiss button ("OK").
	Action string
	Kind   NotificationKind
}
