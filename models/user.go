package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Role is the portal role of a user record. The API expects upper-case values.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
	RoleParent  Role = "PARENT"
)

// NormalizeRole trims r and upper-cases it ("teacher" -> "TEACHER").
func NormalizeRole(r Role) Role {
	return Role(strings.ToUpper(strings.TrimSpace(string(r))))
}

// Valid reports whether r is one of the known portal roles after normalisation.
func (r Role) Valid() bool {
	switch NormalizeRole(r) {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleParent:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ID is a record identifier. The portal API is not consistent about
// identifier types, so ID accepts both JSON strings and JSON numbers and
// always encodes as a string.
type ID string

// UnmarshalJSON implements [json.Unmarshaler].
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("identifier must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

const (
	keyUserID    = "USER_ID"
	keyFirstName = "USER_FNAME"
	keyLastName  = "USER_LNAME"
	keyRole      = "role"
)

// User is a portal user record.
//
// Only the fields the client acts on are typed. Every other key of the API
// payload is kept in Profile as raw JSON and written back unchanged, so a
// record survives a read-edit-write cycle without losing fields the client
// does not know about.
type User struct {
	UserID    ID
	FirstName string
	LastName  string
	Role      Role

	Profile map[string]json.RawMessage
}

type userFields struct {
	UserID    ID     `json:"USER_ID"`
	FirstName string `json:"USER_FNAME"`
	LastName  string `json:"USER_LNAME"`
	Role      Role   `json:"role"`
}

// UnmarshalJSON implements [json.Unmarshaler].
func (u *User) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var f userFields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}

	for _, k := range []string{keyUserID, keyFirstName, keyLastName, keyRole} {
		delete(raw, k)
	}
	if len(raw) == 0 {
		raw = nil
	}

	*u = User{
		UserID:    f.UserID,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Role:      f.Role,
		Profile:   raw,
	}
	return nil
}

// MarshalJSON implements [json.Marshaler]. Empty typed fields are omitted.
func (u User) MarshalJSON() ([]byte, error) {
	out, err := u.fieldMap()
	if err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

func (u User) fieldMap() (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(u.Profile)+4)
	for k, v := range u.Profile {
		out[k] = v
	}

	typed := []struct {
		key   string
		value string
	}{
		{keyUserID, string(u.UserID)},
		{keyFirstName, u.FirstName},
		{keyLastName, u.LastName},
		{keyRole, string(u.Role)},
	}
	for _, f := range typed {
		if f.value == "" {
			continue
		}
		encoded, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		out[f.key] = encoded
	}

	return out, nil
}

// FullName returns "first last" without surrounding spaces.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// ProfileString returns the profile field key decoded as a string. Non-string
// values are returned as their raw JSON text; missing keys return "".
func (u User) ProfileString(key string) string {
	raw, ok := u.Profile[key]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// SetProfileString stores value under key as a JSON string.
func (u *User) SetProfileString(key, value string) {
	encoded, _ := json.Marshal(value)
	if u.Profile == nil {
		u.Profile = make(map[string]json.RawMessage)
	}
	u.Profile[key] = encoded
}

// Clone returns a deep copy of u. Mutating the copy's Profile never affects u.
func (u User) Clone() User {
	c := u
	if u.Profile != nil {
		c.Profile = make(map[string]json.RawMessage, len(u.Profile))
		for k, v := range u.Profile {
			c.Profile[k] = append(json.RawMessage(nil), v...)
		}
	}
	return c
}

// CloneUsers deep-copies a list of users. A nil list stays nil.
func CloneUsers(users []User) []User {
	if users == nil {
		return nil
	}
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = u.Clone()
	}
	return out
}
