package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	staffController "sekolahku_backend/internals/features/school/staff/controller"
	featureMiddleware "sekolahku_backend/internals/middlewares/features"
)

func StaffRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := staffController.NewStaffController(db)

	manage := featureMiddleware.RequirePermission(db, constants.PermStaffManage)

	staff := api.Group("/staff")
	staff.Post("/", manage, ctrl.Create)
	staff.Get("/", manage, ctrl.GetAll)
	staff.Put("/:id", manage, ctrl.Update)
	staff.Delete("/:id", manage, ctrl.Delete)
}
