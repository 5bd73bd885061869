package fakeapi

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/student-portal/internal/utils"
	"github.com/MKhiriev/student-portal/models"
)

const (
	keyTeacher   = "teacher"
	keyTeacherID = "TEACHER_ID"
)

type record struct {
	adminID   string
	user      models.User
	teacherID models.ID
}

// Directory is a concurrency-safe in-memory user directory. Records keep
// their insertion order.
type Directory struct {
	mu      sync.RWMutex
	records []record
	ids     *utils.UUIDGenerator
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{ids: utils.NewUUIDGenerator()}
}

// Seed creates every user under adminID and stops at the first failure.
func (d *Directory) Seed(adminID string, users []models.User) error {
	for _, u := range users {
		if _, err := d.Create(adminID, u); err != nil {
			return fmt.Errorf("seed USER_ID=%s: %w", u.UserID, err)
		}
	}
	return nil
}

// List returns the records of adminID. A non-empty role keeps only records
// of that role; for TEACHER every record carries a nested teacher object.
func (d *Directory) List(adminID string, role models.Role) ([]models.User, error) {
	if adminID == "" {
		return nil, ErrAdminIDRequired
	}
	role = models.NormalizeRole(role)

	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.User, 0, len(d.records))
	for _, rec := range d.records {
		if rec.adminID != adminID {
			continue
		}
		if role != "" && rec.user.Role != role {
			continue
		}

		u := rec.user.Clone()
		if role == models.RoleTeacher {
			nested, err := json.Marshal(map[string]models.ID{keyTeacherID: rec.teacherID})
			if err != nil {
				return nil, err
			}
			if u.Profile == nil {
				u.Profile = make(map[string]json.RawMessage, 1)
			}
			u.Profile[keyTeacher] = nested
		}
		out = append(out, u)
	}
	return out, nil
}

// Get returns the record with the given id.
func (d *Directory) Get(id models.ID) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i := d.indexOf(id)
	if i < 0 {
		return models.User{}, ErrUserNotFound
	}
	return d.records[i].user.Clone(), nil
}

// Create stores u under adminID. A missing USER_ID is generated.
func (d *Directory) Create(adminID string, u models.User) (models.User, error) {
	if adminID == "" {
		return models.User{}, ErrAdminIDRequired
	}
	u = u.Clone()
	u.Role = models.NormalizeRole(u.Role)
	if !u.Role.Valid() {
		return models.User{}, ErrInvalidRole
	}
	delete(u.Profile, keyTeacher)

	d.mu.Lock()
	defer d.mu.Unlock()

	if u.UserID == "" {
		u.UserID = models.ID(d.ids.Generate())
	}
	if d.indexOf(u.UserID) >= 0 {
		return models.User{}, ErrUserAlreadyExists
	}

	rec := record{adminID: adminID, user: u}
	if u.Role == models.RoleTeacher {
		rec.teacherID = models.ID(d.ids.Generate())
	}
	d.records = append(d.records, rec)
	return u.Clone(), nil
}

// Update replaces the record id with u. The body must either omit USER_ID or
// repeat id. A record that becomes a TEACHER gets a teacher identifier.
func (d *Directory) Update(adminID string, id models.ID, u models.User) (models.User, error) {
	if adminID == "" {
		return models.User{}, ErrAdminIDRequired
	}
	if u.UserID != "" && u.UserID != id {
		return models.User{}, ErrUserIDMismatch
	}
	u = u.Clone()
	u.UserID = id
	u.Role = models.NormalizeRole(u.Role)
	if !u.Role.Valid() {
		return models.User{}, ErrInvalidRole
	}
	delete(u.Profile, keyTeacher)

	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.indexOf(id)
	if i < 0 {
		return models.User{}, ErrUserNotFound
	}

	rec := &d.records[i]
	rec.user = u
	if u.Role == models.RoleTeacher && rec.teacherID == "" {
		rec.teacherID = models.ID(d.ids.Generate())
	}
	return u.Clone(), nil
}

// Delete removes the record id and returns it.
func (d *Directory) Delete(adminID string, id models.ID) (models.User, error) {
	if adminID == "" {
		return models.User{}, ErrAdminIDRequired
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.indexOf(id)
	if i < 0 {
		return models.User{}, ErrUserNotFound
	}

	removed := d.records[i].user
	d.records = append(d.records[:i], d.records[i+1:]...)
	return removed, nil
}

// Len returns the number of stored records.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.records)
}

// indexOf must be called with mu held.
func (d *Directory) indexOf(id models.ID) int {
	for i, rec := range d.records {
		if rec.user.UserID == id {
			return i
		}
	}
	return -1
}
