package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

// Email hanya unik per tenant: wali yang sama bisa punya akun di dua sekolah.
// Satu kandidat → login jalan; lebih dari satu → 409 minta school_slug,
// jangan diam-diam memilih salah satu.
func TestPickLoginUser(t *testing.T) {
	t.Run("kosong → 401", func(t *testing.T) {
		_, err := pickLoginUser(nil)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
	})

	t.Run("satu kandidat → dipakai", func(t *testing.T) {
		u := userModel.UserModel{UserEmail: "wali@mail.com"}
		got, err := pickLoginUser([]userModel.UserModel{u})
		require.NoError(t, err)
		assert.Equal(t, "wali@mail.com", got.UserEmail)
	})

	t.Run("dua sekolah → 409", func(t *testing.T) {
		us := []userModel.UserModel{
			{UserEmail: "wali@mail.com"},
			{UserEmail: "wali@mail.com"},
		}
		_, err := pickLoginUser(us)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusConflict, fe.Code)
		assert.Contains(t, fe.Message, "school_slug")
	})
}
