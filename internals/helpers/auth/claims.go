package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

/* =========================================================
   Locals keys — diisi oleh middleware AuthJWT
========================================================= */

const (
	LocUserID   = "user_id"
	LocSchoolID = "school_id" // tenant aktif user (kosong utk platform admin)
	LocRoles    = "roles"     // []string, lower-case
	LocUserName = "user_name"
)

/* =========================================================
   Claim getters
========================================================= */

// GetUserIDFromLocals mengambil user_id hasil verifikasi JWT.
// 401 jika tidak ada / bukan UUID.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	v, _ := c.Locals(LocUserID).(string)
	v = strings.TrimSpace(v)
	if v == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user tidak ditemukan di token")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id tidak valid")
	}
	return id, nil
}

// GetSchoolIDFromLocals mengambil tenant aktif. uuid.Nil kalau user tidak
// terikat sekolah (platform admin).
func GetSchoolIDFromLocals(c *fiber.Ctx) uuid.UUID {
	v, _ := c.Locals(LocSchoolID).(string)
	v = strings.TrimSpace(v)
	if v == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// RequireSchoolIDFromLocals: versi wajib — 403 kalau user tanpa tenant.
func RequireSchoolIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	id := GetSchoolIDFromLocals(c)
	if id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Anda tidak terdaftar pada sekolah manapun")
	}
	return id, nil
}

// GetRolesFromLocals mengembalikan daftar role user (lower-case).
// Tahan terhadap bentuk []string maupun []interface{} hasil decode JWT.
func GetRolesFromLocals(c *fiber.Ctx) []string {
	v := c.Locals(LocRoles)
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, it := range t {
			if s, ok := it.(string); ok {
				if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	case string:
		if s := strings.ToLower(strings.TrimSpace(t)); s != "" {
			return []string{s}
		}
	}
	return nil
}

// IsSuperAdmin: cek role super-admin dari locals. Dipakai SEMUA gate sebagai
// short-circuit pertama.
func IsSuperAdmin(c *fiber.Ctx) bool {
	return HasRole(GetRolesFromLocals(c), constants.RoleSuperAdmin)
}

// HasRole: cek keanggotaan role dalam slice (case-insensitive).
func HasRole(roles []string, want string) bool {
	for _, r := range roles {
		if strings.EqualFold(r, want) {
			return true
		}
	}
	return false
}
