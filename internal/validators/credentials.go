package validators

import (
	"context"

	"github.com/MKhiriev/go-chat-gate/models"
)

// Field name constants used to scope credential validation.
const (
	// FieldUsername targets the login name of a credentials pair.
	FieldUsername = "username"

	// FieldPassword targets the plaintext secret of a credentials pair.
	FieldPassword = "password"
)

// CredentialsValidator validates login form input. Username is checked
// before password so the first missing field is reported.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate accepts models.Credentials or *models.Credentials.
// Returns ErrUnsupportedType for anything else, including a nil pointer.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if creds.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
