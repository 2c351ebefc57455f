// file: internals/route/details/protected_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingRoute "sekolahku_backend/internals/features/finance/billings/route"
	academicRoute "sekolahku_backend/internals/features/school/academics/route"
	admissionRoute "sekolahku_backend/internals/features/school/admissions/route"
	attendanceRoute "sekolahku_backend/internals/features/school/attendance/route"
	schoolRoute "sekolahku_backend/internals/features/school/schools/route"
	staffRoute "sekolahku_backend/internals/features/school/staff/route"
	studentRoute "sekolahku_backend/internals/features/school/students/route"
	userRoute "sekolahku_backend/internals/features/users/user/route"
)

// ProtectedRoutes: semua rute di belakang JWT + SubscriptionGate.
// Rute langganan TIDAK di sini — dipasang sebelum gate di index.go.
func ProtectedRoutes(api fiber.Router, db *gorm.DB) {
	userRoute.UserRoutes(api, db)
	schoolRoute.SchoolRoutes(api, db)
	academicRoute.AcademicRoutes(api, db)
	admissionRoute.AdmissionRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	attendanceRoute.AttendanceRoutes(api, db)
	staffRoute.StaffRoutes(api, db)
	billingRoute.BillingRoutes(api, db)
}
