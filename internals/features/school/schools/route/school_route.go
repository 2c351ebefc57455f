package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	schoolController "sekolahku_backend/internals/features/school/schools/controller"
	featureMiddleware "sekolahku_backend/internals/middlewares/features"
)

// SchoolPublicRoutes: tanpa login (landing page butuh nama+tema sekolah).
func SchoolPublicRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := schoolController.NewSchoolController(db)
	pub := app.Group("/api/public/schools")
	pub.Get("/slug/:slug", ctrl.GetBySlug)
}

// SchoolRoutes: manajemen tenant (login + izin).
func SchoolRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := schoolController.NewSchoolController(db)

	schools := api.Group("/schools")
	schools.Post("/",
		featureMiddleware.RequirePermission(db, constants.PermSchoolManage),
		ctrl.Create)
	schools.Get("/",
		featureMiddleware.RequirePermission(db, constants.PermSchoolManage),
		ctrl.GetAll)
	schools.Get("/:id", ctrl.GetByID)
	schools.Put("/:id",
		featureMiddleware.RequirePermission(db, constants.PermSchoolManage),
		ctrl.Update)
	schools.Put("/:id/subscription",
		featureMiddleware.RequirePermission(db, constants.PermSubscriptionManage),
		ctrl.UpdateSubscription)
	schools.Delete("/:id",
		featureMiddleware.RequirePermission(db, constants.PermSchoolManage),
		ctrl.Delete)
}
