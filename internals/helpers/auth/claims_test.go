package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasRole(t *testing.T) {
	roles := []string{"teacher", "admin"}
	assert.True(t, HasRole(roles, "admin"))
	assert.True(t, HasRole(roles, "ADMIN"))
	assert.False(t, HasRole(roles, "super-admin"))
	assert.False(t, HasRole(nil, "admin"))
}

func TestGetRolesFromLocals_BerbagaiBentuk(t *testing.T) {
	app := fiber.New()
	var got []string
	app.Get("/x", func(c *fiber.Ctx) error {
		// bentuk []interface{} muncul saat roles didecode dari klaim JWT
		c.Locals(LocRoles, []interface{}{"Teacher", " admin ", 42})
		got = GetRolesFromLocals(c)
		return c.SendString("ok")
	})

	_, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"teacher", "admin"}, got)
}

func TestGetUserIDFromLocals(t *testing.T) {
	app := fiber.New()
	want := uuid.New()
	var gotID uuid.UUID
	var gotErr error
	app.Get("/x", func(c *fiber.Ctx) error {
		c.Locals(LocUserID, want.String())
		gotID, gotErr = GetUserIDFromLocals(c)
		return c.SendString("ok")
	})
	app.Get("/kosong", func(c *fiber.Ctx) error {
		_, gotErr = GetUserIDFromLocals(c)
		return c.SendString("ok")
	})

	_, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	require.NoError(t, gotErr)
	assert.Equal(t, want, gotID)

	_, err = app.Test(httptest.NewRequest("GET", "/kosong", nil))
	require.NoError(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, gotErr, &fe)
	assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
}
