package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleAdmin))
	assert.True(t, IsValidRole(RoleSuperAdmin))
	assert.True(t, IsValidRole(RoleParent))

	assert.False(t, IsValidRole("guru"))
	assert.False(t, IsValidRole(""))
	// caller wajib lower-case dulu; bentuk mentah tidak diterima
	assert.False(t, IsValidRole("Admin"))
}
