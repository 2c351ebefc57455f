// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subscriptionRoute "sekolahku_backend/internals/features/finance/subscriptions/route"
	schoolRoute "sekolahku_backend/internals/features/school/schools/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	featureMiddleware "sekolahku_backend/internals/middlewares/features"
	"sekolahku_backend/internals/route/details"
)

// SetupRoutes merakit seluruh rute aplikasi.
//
// Dua lapis:
//  1. publik — auth, landing sekolah by slug, webhook pembayaran
//  2. ber-login — AuthMiddleware (JWT) lalu SubscriptionGate (tenant dalam
//     good standing), baru permission per rute di masing-masing feature
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===== Publik =====
	authRoute.AuthRoutes(app, db)
	schoolRoute.SchoolPublicRoutes(app, db)
	subscriptionRoute.SubscriptionWebhookRoute(app, db)

	// ===== Ber-login =====
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	// Rute langganan dipasang SEBELUM SubscriptionGate: sekolah pending /
	// kedaluwarsa justru harus tetap bisa checkout supaya bisa aktif lagi.
	subscriptionRoute.SubscriptionRoutes(api, db)

	api.Use(featureMiddleware.SubscriptionGate(db))
	details.ProtectedRoutes(api, db)
}
