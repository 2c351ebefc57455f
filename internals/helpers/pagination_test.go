package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(2, 20, 45)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	last := BuildPagination(3, 20, 45)
	assert.False(t, last.HasNext)
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendString("ok")
	})

	_, err := app.Test(httptest.NewRequest("GET", "/x?page=3&per_page=50", nil))
	require.NoError(t, err)
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 50, got.PerPage)
	assert.Equal(t, 100, got.Offset)

	// per_page di atas max dipotong; page invalid jatuh ke 1
	_, err = app.Test(httptest.NewRequest("GET", "/x?page=-5&per_page=9999", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 100, got.PerPage)
	assert.Equal(t, 0, got.Offset)
}
