package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	keyTeacher   = "teacher"
	keyTeacherID = "TEACHER_ID"
)

var (
	// ErrTeacherPayloadMissing is returned by [LiftTeacher] when a record has
	// no nested "teacher" object.
	ErrTeacherPayloadMissing = errors.New("teacher payload is missing")
	// ErrTeacherPayloadMalformed is returned by [LiftTeacher] when the nested
	// "teacher" value is not an object with a non-empty TEACHER_ID.
	ErrTeacherPayloadMalformed = errors.New("teacher payload is malformed")
)

// Teacher is a flat teacher record: a [User] with the teacher identifier
// lifted to the top level.
type Teacher struct {
	User
	TeacherID ID
}

// MarshalJSON implements [json.Marshaler]. The user fields and TEACHER_ID
// are written at the same level.
func (t Teacher) MarshalJSON() ([]byte, error) {
	out, err := t.User.fieldMap()
	if err != nil {
		return nil, err
	}

	if t.TeacherID != "" {
		encoded, err := json.Marshal(string(t.TeacherID))
		if err != nil {
			return nil, err
		}
		out[keyTeacherID] = encoded
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements [json.Unmarshaler] for the flat shape produced by
// MarshalJSON.
func (t *Teacher) UnmarshalJSON(b []byte) error {
	var u User
	if err := u.UnmarshalJSON(b); err != nil {
		return err
	}

	var id ID
	if raw, ok := u.Profile[keyTeacherID]; ok {
		if err := id.UnmarshalJSON(raw); err != nil {
			return err
		}
		delete(u.Profile, keyTeacherID)
		if len(u.Profile) == 0 {
			u.Profile = nil
		}
	}

	*t = Teacher{User: u, TeacherID: id}
	return nil
}

// Clone returns a deep copy of t.
func (t Teacher) Clone() Teacher {
	return Teacher{User: t.User.Clone(), TeacherID: t.TeacherID}
}

// CloneTeachers deep-copies a list of teachers. A nil list stays nil.
func CloneTeachers(teachers []Teacher) []Teacher {
	if teachers == nil {
		return nil
	}
	out := make([]Teacher, len(teachers))
	for i, t := range teachers {
		out[i] = t.Clone()
	}
	return out
}

// LiftTeacher merges the nested teacher object of u into a flat [Teacher].
// teacher.TEACHER_ID becomes the top-level TeacherID and the "teacher" key is
// dropped; other keys of the nested object are discarded. u is not modified.
func LiftTeacher(u User) (Teacher, error) {
	raw, ok := u.Profile[keyTeacher]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return Teacher{}, fmt.Errorf("%w (USER_ID=%s)", ErrTeacherPayloadMissing, u.UserID)
	}

	var nested struct {
		TeacherID ID `json:"TEACHER_ID"`
	}
	if err := json.Unmarshal(raw, &nested); err != nil {
		return Teacher{}, fmt.Errorf("%w (USER_ID=%s): %w", ErrTeacherPayloadMalformed, u.UserID, err)
	}
	if nested.TeacherID == "" {
		return Teacher{}, fmt.Errorf("%w (USER_ID=%s): TEACHER_ID is empty", ErrTeacherPayloadMalformed, u.UserID)
	}

	flat := u.Clone()
	delete(flat.Profile, keyTeacher)
	if len(flat.Profile) == 0 {
		flat.Profile = nil
	}

	return Teacher{User: flat, TeacherID: nested.TeacherID}, nil
}

// LiftTeachers applies [LiftTeacher] to every record and fails on the first
// record that cannot be lifted.
func LiftTeachers(users []User) ([]Teacher, error) {
	teachers := make([]Teacher, 0, len(users))
	for _, u := range users {
		t, err := LiftTeacher(u)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, nil
}
