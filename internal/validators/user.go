package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/student-portal/models"
)

const (
	// FieldUserID requires a non-blank USER_ID.
	FieldUserID = "user_id"

	// FieldFirstName requires a non-blank USER_FNAME.
	FieldFirstName = "first_name"

	// FieldRole requires one of the portal roles, in any case.
	FieldRole = "role"

	// FieldProfile requires every extra field to be valid JSON.
	FieldProfile = "profile"
)

// defaultUserFields are checked when Validate is called without fields.
// USER_ID is left out because create requests may omit it.
var defaultUserFields = []string{FieldRole, FieldFirstName, FieldProfile}

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.Teacher:
		return v.validateUser(ctx, value.User, fields...)
	case *models.Teacher:
		return v.validateUser(ctx, value.User, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultUserFields
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(string(user.UserID)) == "" {
				return ErrInvalidUserID
			}
		case FieldFirstName:
			if strings.TrimSpace(user.FirstName) == "" {
				return ErrFirstNameRequired
			}
		case FieldRole:
			if !user.Role.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidRole, user.Role)
			}
		case FieldProfile:
			for key, raw := range user.Profile {
				if !json.Valid(raw) {
					return fmt.Errorf("%w: %s", ErrInvalidProfile, key)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
