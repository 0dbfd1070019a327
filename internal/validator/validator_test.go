package validator

import (
	"testing"

	domainerrors "shopmate/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name     string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestValidator_Struct(t *testing.T) {
	t.Parallel()

	v := New()

	tests := []struct {
		name    string
		input   sampleInput
		wantErr string
	}{
		{
			name:  "valid input",
			input: sampleInput{Name: "alice", Email: "alice@x.com", Password: "secret1"},
		},
		{
			name:    "short name",
			input:   sampleInput{Name: "al", Email: "alice@x.com", Password: "secret1"},
			wantErr: "name must be at least 3 characters",
		},
		{
			name:    "bad email",
			input:   sampleInput{Name: "alice", Email: "not-an-email", Password: "secret1"},
			wantErr: "email must be a valid email address",
		},
		{
			name:    "short password",
			input:   sampleInput{Name: "alice", Email: "alice@x.com", Password: "12345"},
			wantErr: "password must be at least 6 characters",
		},
		{
			name:    "missing everything",
			input:   sampleInput{},
			wantErr: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Struct(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
			assert.Contains(t, appErr.Details(), tt.wantErr)
		})
	}
}
