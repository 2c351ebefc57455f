package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	studentController "sekolahku_backend/internals/features/school/students/controller"
	featureMiddleware "sekolahku_backend/internals/middlewares/features"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	view := featureMiddleware.RequirePermission(db, constants.PermStudentView, constants.PermStudentManage)
	manage := featureMiddleware.RequirePermission(db, constants.PermStudentManage)

	students := api.Group("/students")
	students.Post("/", manage, ctrl.Create)
	students.Get("/", view, ctrl.GetAll)
	students.Get("/:id", view, ctrl.GetByID)
	students.Put("/:id", manage, ctrl.Update)
	students.Post("/:id/guardians", manage, ctrl.AttachGuardian)
	students.Delete("/:id", manage, ctrl.Delete)
}
