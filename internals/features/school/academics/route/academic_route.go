package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	academicController "sekolahku_backend/internals/features/school/academics/controller"
	featureMiddleware "sekolahku_backend/internals/middlewares/features"
)

func AcademicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := academicController.NewAcademicController(db)

	view := featureMiddleware.RequirePermission(db, constants.PermAcademicView, constants.PermAcademicManage)
	manage := featureMiddleware.RequirePermission(db, constants.PermAcademicManage)

	years := api.Group("/academic-years")
	years.Post("/", manage, ctrl.CreateAcademicYear)
	years.Get("/", view, ctrl.GetAcademicYears)

	classes := api.Group("/classes")
	classes.Post("/", manage, ctrl.CreateClass)
	classes.Get("/", view, ctrl.GetClasses)

	sections := api.Group("/class-sections")
	sections.Post("/", manage, ctrl.CreateClassSection)
	sections.Get("/", view, ctrl.GetClassSections)

	subjects := api.Group("/subjects")
	subjects.Post("/", manage, ctrl.CreateSubject)
	subjects.Get("/", view, ctrl.GetSubjects)
}
