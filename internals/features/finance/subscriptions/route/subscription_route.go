package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	subscriptionController "sekolahku_backend/internals/features/finance/subscriptions/controller"
	featureMiddleware "sekolahku_backend/internals/middlewares/features"
)

// SubscriptionWebhookRoute dipasang di luar AuthMiddleware: Midtrans memanggil
// endpoint ini langsung, keasliannya dicek lewat signature.
func SubscriptionWebhookRoute(app *fiber.App, db *gorm.DB) {
	ctrl := subscriptionController.NewSubscriptionController(db)
	app.Post("/api/subscriptions/notification", ctrl.Notification)
}

// SubscriptionRoutes dipasang di belakang AuthMiddleware tapi DI DEPAN
// SubscriptionGate (lihat route/index.go): admin sekolah pending/expired
// harus tetap bisa membayar langganannya.
func SubscriptionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := subscriptionController.NewSubscriptionController(db)

	subs := api.Group("/subscriptions")
	subs.Get("/plans", ctrl.GetPlans)
	subs.Post("/checkout",
		featureMiddleware.RequirePermission(db, constants.PermSubscriptionManage),
		ctrl.Checkout)
	subs.Get("/payments",
		featureMiddleware.RequirePermission(db, constants.PermSubscriptionManage),
		ctrl.GetPayments)
}
