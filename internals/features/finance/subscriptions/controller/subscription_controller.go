package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subscriptionModel "sekolahku_backend/internals/features/finance/subscriptions/model"
	subscriptionService "sekolahku_backend/internals/features/finance/subscriptions/service"
	schoolModel "sekolahku_backend/internals/features/school/schools/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type SubscriptionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{DB: db, Validate: validator.New()}
}

/* =======================================
   Katalog plan
======================================= */

func (ctrl *SubscriptionController) GetPlans(c *fiber.Ctx) error {
	var plans []subscriptionModel.SubscriptionPlanModel
	if err := ctrl.DB.
		Where("plan_is_active = TRUE").
		Order("plan_price_idr ASC").
		Find(&plans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil katalog plan")
	}
	return helper.JsonOK(c, "OK", plans)
}

/* =======================================
   Checkout (Snap token)
======================================= */

type checkoutRequest struct {
	PlanCode string `json:"plan_code" validate:"required,oneof=basic standard premium"`
	Email    string `json:"billing_email" validate:"required,email"`
	Phone    string `json:"billing_phone,omitempty"`
}

func (ctrl *SubscriptionController) Checkout(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	var school schoolModel.SchoolModel
	if err := ctrl.DB.Where("school_id = ?", schoolID).First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sekolah")
	}

	payment, err := subscriptionService.CreateSubscriptionCheckout(ctrl.DB, subscriptionService.CheckoutInput{
		SchoolID:     schoolID,
		SchoolName:   school.SchoolName,
		BillingEmail: strings.TrimSpace(req.Email),
		BillingPhone: strings.TrimSpace(req.Phone),
		PlanCode:     schoolModel.SubscriptionPlan(req.PlanCode),
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}
	return helper.JsonCreated(c, "Transaksi dibuat", payment)
}

/* =======================================
   Riwayat pembayaran tenant
======================================= */

func (ctrl *SubscriptionController) GetPayments(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var payments []subscriptionModel.SubscriptionPaymentModel
	if err := ctrl.DB.
		Where("subscription_payment_school_id = ?", schoolID).
		Order("subscription_payment_created_at DESC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat pembayaran")
	}
	return helper.JsonOK(c, "OK", payments)
}

/* =======================================
   Webhook Midtrans (tanpa auth — verifikasi signature)
======================================= */

func (ctrl *SubscriptionController) Notification(c *fiber.Ctx) error {
	var payload subscriptionService.NotificationPayload
	if err := c.BodyParser(&payload); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification payload")
	}
	if !subscriptionService.VerifySignature(payload) {
		log.Printf("[SUBSCRIPTION] signature mismatch order_id=%s", payload.OrderID)
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid signature")
	}

	if err := subscriptionService.HandleNotification(ctrl.DB, payload); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Order tidak dikenal")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses notifikasi")
	}
	return helper.JsonOK(c, "Notification processed", nil)
}
