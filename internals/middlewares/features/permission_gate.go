// file: internals/middlewares/features/permission_gate.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRepo "sekolahku_backend/internals/features/users/user/repository"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// PermissionAllowed: keputusan murni gate permission (any-of semantics).
// Dipisah dari middleware supaya tabel keputusannya bisa diuji tanpa HTTP/DB.
func PermissionAllowed(effective []string, required []string) bool {
	if len(required) == 0 {
		return true
	}
	have := make(map[string]struct{}, len(effective))
	for _, p := range effective {
		have[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
	}
	for _, want := range required {
		if _, ok := have[strings.ToLower(strings.TrimSpace(want))]; ok {
			return true
		}
	}
	return false
}

// RequirePermission menolak request sebelum menyentuh business logic:
//   - 401 kalau tidak ada user
//   - lolos tanpa syarat kalau user memegang super-admin
//   - lolos kalau effective permission set user beririsan dengan daftar
//     permission yang diminta (any-of); selain itu 403
//
// Keputusan binary dan dievaluasi fresh per request — tidak ada cache.
func RequirePermission(db *gorm.DB, permissions ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := helperAuth.GetUserIDFromLocals(c)
		if err != nil {
			return err
		}

		// super-admin bypass: dicek PERTAMA di semua gate
		if helperAuth.IsSuperAdmin(c) {
			return c.Next()
		}

		effective, err := userRepo.EffectivePermissions(db, userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil permission user")
		}
		if !PermissionAllowed(effective, permissions) {
			return fiber.NewError(fiber.StatusForbidden, "Anda tidak punya izin untuk aksi ini")
		}
		return c.Next()
	}
}
