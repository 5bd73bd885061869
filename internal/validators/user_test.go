// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/student-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() models.User {
	return models.User{
		UserID:    "1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      models.RoleTeacher,
		Profile:   map[string]json.RawMessage{"USER_EMAIL": json.RawMessage(`"ada@example.com"`)},
	}
}

func TestNewUserValidator(t *testing.T) {
	v := NewUserValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("User value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validUser()))
	})

	t.Run("User pointer", func(t *testing.T) {
		u := validUser()
		require.NoError(t, v.Validate(ctx, &u))
	})

	t.Run("Teacher value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.Teacher{User: validUser(), TeacherID: "t-1"}))
	})

	t.Run("Teacher pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.Teacher{User: validUser()}))
	})
}

func TestValidateUser(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(u *models.User)
		fields  []string
		wantErr error
	}{
		{
			name:   "valid with default fields",
			mutate: func(u *models.User) {},
		},
		{
			name:   "missing USER_ID is fine by default",
			mutate: func(u *models.User) { u.UserID = "" },
		},
		{
			name:    "missing USER_ID when requested",
			mutate:  func(u *models.User) { u.UserID = " " },
			fields:  []string{FieldUserID},
			wantErr: ErrInvalidUserID,
		},
		{
			name:    "blank first name",
			mutate:  func(u *models.User) { u.FirstName = "  " },
			wantErr: ErrFirstNameRequired,
		},
		{
			name:   "lower-case role",
			mutate: func(u *models.User) { u.Role = "student" },
		},
		{
			name:    "unknown role",
			mutate:  func(u *models.User) { u.Role = "janitor" },
			wantErr: ErrInvalidRole,
		},
		{
			name:    "role is checked before first name",
			mutate:  func(u *models.User) { u.Role = ""; u.FirstName = "" },
			wantErr: ErrInvalidRole,
		},
		{
			name:    "broken profile value",
			mutate:  func(u *models.User) { u.Profile["USER_PHONE"] = json.RawMessage(`{"x":`) },
			wantErr: ErrInvalidProfile,
		},
		{
			name:   "only selected fields are checked",
			mutate: func(u *models.User) { u.FirstName = "" },
			fields: []string{FieldRole},
		},
		{
			name:    "unknown field",
			mutate:  func(u *models.User) {},
			fields:  []string{"email"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)

			err := v.Validate(ctx, u, tt.fields...)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
