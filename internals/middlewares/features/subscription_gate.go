// file: internals/middlewares/features/subscription_gate.go
package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "sekolahku_backend/internals/features/school/schools/model"
	schoolService "sekolahku_backend/internals/features/school/schools/service"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// SubscriptionGate memblokir aksi ber-tenant untuk sekolah yang tidak dalam
// good standing. Urutan rule (first match wins), per request:
//
//  1. tidak ada user ATAU user super-admin → lolos (super-admin lintas tenant)
//  2. user tanpa sekolah → 403
//  3. status sekolah bukan active → 403
//  4. langganan berbayar kedaluwarsa → 403
//  5. selain itu → lolos
func SubscriptionGate(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) tanpa user: bukan urusan gate ini (auth yang menolak kalau rute
		//    memang butuh login). Super-admin selalu lolos.
		if v, _ := c.Locals(helperAuth.LocUserID).(string); v == "" {
			return c.Next()
		}
		if helperAuth.IsSuperAdmin(c) {
			return c.Next()
		}

		// 2) user harus terikat sekolah
		schoolID := helperAuth.GetSchoolIDFromLocals(c)
		if schoolID == uuid.Nil {
			return fiber.NewError(fiber.StatusForbidden, schoolService.MsgNoSchool)
		}

		var school schoolModel.SchoolModel
		if err := db.Where("school_id = ?", schoolID).First(&school).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusForbidden, schoolService.MsgNoSchool)
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat data sekolah")
		}

		// 3-5) aturan status + expiry (murni, teruji di service)
		if err := schoolService.EvaluateSchoolAccess(&school, time.Now()); err != nil {
			return err
		}
		return c.Next()
	}
}
