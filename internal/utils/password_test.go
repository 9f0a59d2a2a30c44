package utils

import (
	"testing"

	"github.com/Theamazinguero/recipeclone2/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "secret1", nil},
		{"exactly six with digit", "abcde1", nil},
		{"digits only", "123456", nil},
		{"symbols allowed but not required", "p@ss1word", nil},
		{"too short", "ab1", domain.ErrPasswordTooShort},
		{"no digit", "password", domain.ErrPasswordNeedsDigit},
		{"empty", "", domain.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, ComparePassword(hash, "secret1"))
	assert.False(t, ComparePassword(hash, "secret2"))
}
