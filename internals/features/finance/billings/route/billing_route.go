package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	billingController "sekolahku_backend/internals/features/finance/billings/controller"
	featureMiddleware "sekolahku_backend/internals/middlewares/features"
)

func BillingRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := billingController.NewBillingController(db)

	view := featureMiddleware.RequirePermission(db, constants.PermFeeView, constants.PermFeeManage)
	manage := featureMiddleware.RequirePermission(db, constants.PermFeeManage)

	bills := api.Group("/bills")
	bills.Post("/", manage, ctrl.Create)
	bills.Get("/", view, ctrl.GetAll)
	bills.Post("/:id/pay", manage, ctrl.MarkPaid)
	bills.Post("/:id/cancel", manage, ctrl.Cancel)
}
