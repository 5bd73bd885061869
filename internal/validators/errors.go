package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrFirstNameRequired = errors.New("first name is required")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidProfile    = errors.New("invalid profile field")
)
