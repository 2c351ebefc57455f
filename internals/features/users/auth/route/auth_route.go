package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "sekolahku_backend/internals/features/users/auth/controller"
	"sekolahku_backend/internals/middlewares"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// AuthRoutes: rute publik (login/register/refresh) + rute ber-login
// (logout/change-password).
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	baseAuth := app.Group("/api/auth")
	baseAuth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	baseAuth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	baseAuth.Post("/refresh-token", ctrl.RefreshToken)

	protected := baseAuth.Group("/", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", ctrl.Logout)
	protected.Post("/change-password", ctrl.ChangePassword)
}
