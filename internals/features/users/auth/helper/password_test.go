package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("rahasia-sekali")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-sekali", hashed)

	assert.NoError(t, CheckPasswordHash(hashed, "rahasia-sekali"))
	assert.Error(t, CheckPasswordHash(hashed, "salah"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("budi@sekolah.sch.id"))
	assert.True(t, IsValidEmail("  ann.lee42@school.com "))
	assert.False(t, IsValidEmail("bukan-email"))
	assert.False(t, IsValidEmail("a@b"))
}

func TestValidateRegisterInput(t *testing.T) {
	assert.NoError(t, ValidateRegisterInput("Budi", "budi@school.com", "password123"))
	assert.Error(t, ValidateRegisterInput("", "budi@school.com", "password123"))
	assert.Error(t, ValidateRegisterInput("Budi", "x", "password123"))
	assert.Error(t, ValidateRegisterInput("Budi", "budi@school.com", "pendek"))
}
