package auth

import (
	"errors"
	"testing"

	"backoffice-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateInvalidCredentials(t *testing.T) {
	dir := NewDirectory()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@restaurant.com", "admin123"},
		{"wrong password", "admin@restaurant.com", "wrong"},
		{"swapped credentials", "staff@restaurant.com", "admin123"},
		{"empty email", "", "admin123"},
		{"empty password", "admin@restaurant.com", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc, err := dir.Authenticate(tt.email, tt.password)
			assert.Nil(t, acc)
			assert.True(t, errors.Is(err, ErrInvalidCredentials))
		})
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	dir := NewDirectory()

	acc, err := dir.Authenticate("admin@restaurant.com", "admin123")
	require.NoError(t, err)
	require.NotNil(t, acc)

	assert.Equal(t, "Admin User", acc.Name)
	assert.Equal(t, models.RoleAdmin, acc.Role)
	assert.Empty(t, acc.Password, "şifre dizin dışına sızmamalı")
}

func TestAuthenticateNormalizesEmail(t *testing.T) {
	dir := NewDirectory()

	acc, err := dir.Authenticate("  STAFF@Restaurant.com ", "staff123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, acc.Role)
}

func TestAuthenticatePasswordIsCaseSensitive(t *testing.T) {
	dir := NewDirectory()

	_, err := dir.Authenticate("admin@restaurant.com", "ADMIN123")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}
