package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	admissionController "sekolahku_backend/internals/features/school/admissions/controller"
	featureMiddleware "sekolahku_backend/internals/middlewares/features"
)

func AdmissionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := admissionController.NewAdmissionController(db)

	view := featureMiddleware.RequirePermission(db, constants.PermAdmissionView, constants.PermAdmissionManage)
	manage := featureMiddleware.RequirePermission(db, constants.PermAdmissionManage)
	approve := featureMiddleware.RequirePermission(db, constants.PermAdmissionApprove)

	admissions := api.Group("/admissions")
	admissions.Post("/", manage, ctrl.Create)
	admissions.Get("/", view, ctrl.GetAll)
	admissions.Get("/:id", view, ctrl.GetByID)
	admissions.Post("/:id/approve", approve, ctrl.Approve)
	admissions.Post("/:id/reject", approve, ctrl.Reject)
}
