// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-chat-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentialsValidator(t *testing.T) {
	v := NewCredentialsValidator()
	require.NotNil(t, v)
}

func TestCredentialsValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		fields  []string
		wantErr error
	}{
		{
			name:  "valid value",
			input: models.Credentials{Username: "alice", Password: "secret"},
		},
		{
			name:  "valid pointer",
			input: &models.Credentials{Username: "alice", Password: "secret"},
		},
		{
			name:    "empty username",
			input:   models.Credentials{Password: "secret"},
			wantErr: ErrEmptyUsername,
		},
		{
			name:    "empty password",
			input:   models.Credentials{Username: "alice"},
			wantErr: ErrEmptyPassword,
		},
		{
			name:    "both empty reports username first",
			input:   models.Credentials{},
			wantErr: ErrEmptyUsername,
		},
		{
			name:   "password only scope ignores username",
			input:  models.Credentials{Password: "secret"},
			fields: []string{FieldPassword},
		},
		{
			name:    "unknown field",
			input:   models.Credentials{Username: "alice", Password: "secret"},
			fields:  []string{"email"},
			wantErr: ErrUnknownField,
		},
		{
			name:    "nil pointer",
			input:   (*models.Credentials)(nil),
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "unsupported type",
			input:   "alice",
			wantErr: ErrUnsupportedType,
		},
	}

	v := NewCredentialsValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.input, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFieldErrors_MatchValidation(t *testing.T) {
	assert.ErrorIs(t, ErrEmptyUsername, ErrValidation)
	assert.ErrorIs(t, ErrEmptyPassword, ErrValidation)
	assert.NotEqual(t, ErrEmptyUsername.Error(), ErrEmptyPassword.Error())
}
