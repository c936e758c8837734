package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/trivalleytech/site-api/internal/errors"
)

func TestWrapValidationError(t *testing.T) {
	t.Run("NilError", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("WrapsAsInvalidInput", func(t *testing.T) {
		err := WrapValidationError(assert.AnError)
		assert.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}

func TestIsHexToken(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{
			name:  "valid token",
			value: "a3f1c2d4e5b6978012345678901234567890abcdefabcdefabcdefabcdefabcd",
		},
		{
			name:    "uppercase rejected",
			value:   "A3F1C2D4E5B6978012345678901234567890ABCDEFABCDEFABCDEFABCDEFABCD",
			wantErr: true,
		},
		{
			name:    "too short",
			value:   "abc123",
			wantErr: true,
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
		{
			name:    "not a string",
			value:   42,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := IsHexToken.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsHTTPURL(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{
			name:  "https url",
			value: "https://github.com/trivalleytech/site-api",
		},
		{
			name:  "http url",
			value: "http://example.org/docs",
		},
		{
			name:  "empty allowed",
			value: "",
		},
		{
			name:    "missing scheme",
			value:   "github.com/trivalleytech",
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			value:   "ftp://example.org",
			wantErr: true,
		},
		{
			name:    "not a string",
			value:   []byte("https://example.org"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := IsHTTPURL.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
