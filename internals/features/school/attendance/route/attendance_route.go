package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	attendanceController "sekolahku_backend/internals/features/school/attendance/controller"
	featureMiddleware "sekolahku_backend/internals/middlewares/features"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	attendances := api.Group("/attendances")
	attendances.Post("/",
		featureMiddleware.RequirePermission(db, constants.PermAttendanceManage),
		ctrl.Mark)
	attendances.Get("/",
		featureMiddleware.RequirePermission(db, constants.PermAttendanceView, constants.PermAttendanceManage),
		ctrl.GetByDate)
}
