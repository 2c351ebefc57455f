package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	userController "sekolahku_backend/internals/features/users/user/controller"
	featureMiddleware "sekolahku_backend/internals/middlewares/features"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := api.Group("/users")
	users.Get("/me", ctrl.Me)
	users.Put("/me", ctrl.UpdateMe)

	manage := featureMiddleware.RequirePermission(db, constants.PermSchoolManage)
	users.Get("/", manage, ctrl.GetAll)
	users.Get("/:id", manage, ctrl.GetByID)
	users.Put("/:id/active", manage, ctrl.SetActive)
	users.Post("/:id/roles", manage, ctrl.GrantRole)
}
