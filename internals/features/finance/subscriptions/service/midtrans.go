// file: internals/features/finance/subscriptions/service/midtrans.go
package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	subscriptionModel "sekolahku_backend/internals/features/finance/subscriptions/model"
	schoolModel "sekolahku_backend/internals/features/school/schools/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

var serverKey string

// InitMidtrans dipanggil saat bootstrap app. MIDTRANS_ENV=production
// mengarahkan ke environment Production, selain itu Sandbox.
func InitMidtrans(key string) {
	serverKey = key
	if strings.EqualFold(configs.GetEnv("MIDTRANS_ENV"), "production") {
		SnapClient.New(key, midtrans.Production)
	} else {
		SnapClient.New(key, midtrans.Sandbox)
	}
}

/* =========================================================
   Checkout
========================================================= */

type CheckoutInput struct {
	SchoolID     uuid.UUID
	SchoolName   string
	BillingEmail string
	BillingPhone string
	PlanCode     schoolModel.SubscriptionPlan
}

// CreateSubscriptionCheckout membuat row payment pending + Snap token.
func CreateSubscriptionCheckout(db *gorm.DB, in CheckoutInput) (*subscriptionModel.SubscriptionPaymentModel, error) {
	var plan subscriptionModel.SubscriptionPlanModel
	if err := db.
		Where("plan_code = ? AND plan_is_active = TRUE", in.PlanCode).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("plan tidak dikenal atau nonaktif")
		}
		return nil, err
	}

	payment := subscriptionModel.SubscriptionPaymentModel{
		SubscriptionPaymentSchoolID:  in.SchoolID,
		SubscriptionPaymentOrderID:   fmt.Sprintf("SUB-%s-%d", in.SchoolID.String()[:8], time.Now().UnixNano()),
		SubscriptionPaymentPlanCode:  plan.PlanCode,
		SubscriptionPaymentAmountIDR: plan.PlanPriceIDR,
		SubscriptionPaymentStatus:    subscriptionModel.SubscriptionPaymentPending,
	}
	if err := db.Create(&payment).Error; err != nil {
		return nil, err
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  payment.SubscriptionPaymentOrderID,
			GrossAmt: plan.PlanPriceIDR,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: in.SchoolName,
			Email: in.BillingEmail,
			Phone: in.BillingPhone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       string(plan.PlanCode),
				Price:    plan.PlanPriceIDR,
				Qty:      1,
				Name:     fmt.Sprintf("Langganan %s (%d hari)", plan.PlanName, plan.PlanDurationDays),
				Category: "Subscription",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return nil, err
	}

	payment.SubscriptionPaymentSnapToken = &resp.Token
	payment.SubscriptionPaymentRedirectURL = &resp.RedirectURL
	if err := db.Save(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

/* =========================================================
   Webhook notification
========================================================= */

type NotificationPayload struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
}

// VerifySignature: sha512(order_id + status_code + gross_amount + serverKey)
// harus sama dengan signature_key yang dikirim Midtrans.
func VerifySignature(p NotificationPayload) bool {
	h := sha512.Sum512([]byte(p.OrderID + p.StatusCode + p.GrossAmount + serverKey))
	return hex.EncodeToString(h[:]) == strings.ToLower(strings.TrimSpace(p.SignatureKey))
}

// HandleNotification memproses webhook: payment paid → perpanjang langganan
// sekolah (ends_at berjalan dari max(now, ends_at lama)). Idempotent: payment
// yang sudah paid tidak memperpanjang dua kali.
func HandleNotification(db *gorm.DB, p NotificationPayload) error {
	var payment subscriptionModel.SubscriptionPaymentModel
	if err := db.
		Where("subscription_payment_order_id = ?", p.OrderID).
		First(&payment).Error; err != nil {
		return err
	}

	switch p.TransactionStatus {
	case "capture", "settlement":
		if p.FraudStatus == "deny" {
			return markPayment(db, &payment, subscriptionModel.SubscriptionPaymentFailed)
		}
		if payment.SubscriptionPaymentStatus == subscriptionModel.SubscriptionPaymentPaid {
			return nil
		}
		return applyPaid(db, &payment)
	case "deny", "cancel", "failure":
		return markPayment(db, &payment, subscriptionModel.SubscriptionPaymentFailed)
	case "expire":
		return markPayment(db, &payment, subscriptionModel.SubscriptionPaymentExpired)
	default:
		// pending dkk: biarkan
		return nil
	}
}

func markPayment(db *gorm.DB, payment *subscriptionModel.SubscriptionPaymentModel, status subscriptionModel.SubscriptionPaymentStatus) error {
	payment.SubscriptionPaymentStatus = status
	return db.Save(payment).Error
}

func applyPaid(db *gorm.DB, payment *subscriptionModel.SubscriptionPaymentModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var plan subscriptionModel.SubscriptionPlanModel
		if err := tx.
			Where("plan_code = ?", payment.SubscriptionPaymentPlanCode).
			First(&plan).Error; err != nil {
			return err
		}

		var school schoolModel.SchoolModel
		if err := tx.
			Where("school_id = ?", payment.SubscriptionPaymentSchoolID).
			First(&school).Error; err != nil {
			return err
		}

		now := time.Now()
		base := now
		if school.SchoolSubscriptionEndsAt != nil && school.SchoolSubscriptionEndsAt.After(now) {
			base = *school.SchoolSubscriptionEndsAt
		}
		endsAt := base.AddDate(0, 0, plan.PlanDurationDays)

		school.SchoolSubscriptionPlan = plan.PlanCode
		school.SchoolSubscriptionEndsAt = &endsAt
		if school.SchoolStatus == schoolModel.SchoolPending {
			school.SchoolStatus = schoolModel.SchoolActive
		}
		if err := tx.Save(&school).Error; err != nil {
			return err
		}

		payment.SubscriptionPaymentStatus = subscriptionModel.SubscriptionPaymentPaid
		payment.SubscriptionPaymentPaidAt = &now
		return tx.Save(payment).Error
	})
}
