// file: internals/features/school/schools/service/subscription_gate.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"

	schoolModel "sekolahku_backend/internals/features/school/schools/model"
)

// Pesan penolakan gate langganan — dipakai juga oleh middleware.
const (
	MsgNoSchool            = "Not associated with any school"
	MsgSchoolInactive      = "School account is not active"
	MsgSubscriptionExpired = "School subscription has expired"
)

// EvaluateSchoolAccess memutuskan boleh/tidaknya aksi ber-tenant berjalan.
// Urutan rule (first match wins), dievaluasi fresh per request:
//
//  1. school nil → tolak (user tidak terikat sekolah)
//  2. status bukan active → tolak
//  3. plan berbayar + ends_at terisi + sudah lewat → tolak
//  4. selain itu → boleh
//
// Plan free tidak pernah dicek expiry (ends_at basi pada plan free tetap
// lolos). ends_at NULL pada plan berbayar berarti non-expiring.
// Bypass super-admin BUKAN urusan fungsi ini — middleware mengeceknya lebih
// dulu supaya keputusan di sini murni soal tenant.
func EvaluateSchoolAccess(school *schoolModel.SchoolModel, now time.Time) error {
	if school == nil {
		return fiber.NewError(fiber.StatusForbidden, MsgNoSchool)
	}
	if school.SchoolStatus != schoolModel.SchoolActive {
		return fiber.NewError(fiber.StatusForbidden, MsgSchoolInactive)
	}
	if school.SchoolSubscriptionPlan != schoolModel.PlanFree &&
		school.SchoolSubscriptionEndsAt != nil &&
		school.SchoolSubscriptionEndsAt.Before(now) {
		return fiber.NewError(fiber.StatusForbidden, MsgSubscriptionExpired)
	}
	return nil
}

// SubscriptionActive: versi boolean untuk render status di response admin.
func SubscriptionActive(school *schoolModel.SchoolModel, now time.Time) bool {
	return EvaluateSchoolAccess(school, now) == nil
}
