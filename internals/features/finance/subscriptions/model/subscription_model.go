package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "sekolahku_backend/internals/features/school/schools/model"
)

/* =======================================
   Katalog plan
======================================= */

// SubscriptionPlanModel: katalog harga per plan berbayar (seed saat deploy).
type SubscriptionPlanModel struct {
	PlanID   uuid.UUID                    `gorm:"column:plan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"plan_id"`
	PlanCode schoolModel.SubscriptionPlan `gorm:"column:plan_code;type:text;not null;uniqueIndex" json:"plan_code"`

	PlanName         string `gorm:"column:plan_name;type:varchar(60);not null" json:"plan_name"`
	PlanPriceIDR     int64  `gorm:"column:plan_price_idr;not null" json:"plan_price_idr"`
	PlanDurationDays int    `gorm:"column:plan_duration_days;not null;default:30" json:"plan_duration_days"`
	PlanIsActive     bool   `gorm:"column:plan_is_active;not null;default:true" json:"plan_is_active"`

	PlanCreatedAt time.Time `gorm:"column:plan_created_at;type:timestamptz;autoCreateTime" json:"plan_created_at"`
	PlanUpdatedAt time.Time `gorm:"column:plan_updated_at;type:timestamptz;autoUpdateTime" json:"plan_updated_at"`
}

func (SubscriptionPlanModel) TableName() string { return "subscription_plans" }

/* =======================================
   Pembayaran langganan
======================================= */

type SubscriptionPaymentStatus string

const (
	SubscriptionPaymentPending SubscriptionPaymentStatus = "pending"
	SubscriptionPaymentPaid    SubscriptionPaymentStatus = "paid"
	SubscriptionPaymentFailed  SubscriptionPaymentStatus = "failed"
	SubscriptionPaymentExpired SubscriptionPaymentStatus = "expired"
)

var validSubscriptionPaymentStatus = map[SubscriptionPaymentStatus]struct{}{
	SubscriptionPaymentPending: {},
	SubscriptionPaymentPaid:    {},
	SubscriptionPaymentFailed:  {},
	SubscriptionPaymentExpired: {},
}

// SubscriptionPaymentModel: satu tagihan Snap per perpanjangan langganan.
// OrderID dikirim ke Midtrans dan dipakai webhook untuk mencocokkan kembali.
type SubscriptionPaymentModel struct {
	SubscriptionPaymentID       uuid.UUID `gorm:"column:subscription_payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subscription_payment_id"`
	SubscriptionPaymentSchoolID uuid.UUID `gorm:"column:subscription_payment_school_id;type:uuid;not null;index" json:"subscription_payment_school_id"`

	SubscriptionPaymentOrderID  string                       `gorm:"column:subscription_payment_order_id;type:varchar(64);not null;uniqueIndex" json:"subscription_payment_order_id"`
	SubscriptionPaymentPlanCode schoolModel.SubscriptionPlan `gorm:"column:subscription_payment_plan_code;type:text;not null" json:"subscription_payment_plan_code"`

	SubscriptionPaymentAmountIDR int64                     `gorm:"column:subscription_payment_amount_idr;not null" json:"subscription_payment_amount_idr"`
	SubscriptionPaymentStatus    SubscriptionPaymentStatus `gorm:"column:subscription_payment_status;type:text;not null;default:'pending'" json:"subscription_payment_status"`

	SubscriptionPaymentSnapToken   *string    `gorm:"column:subscription_payment_snap_token;type:text" json:"subscription_payment_snap_token,omitempty"`
	SubscriptionPaymentRedirectURL *string    `gorm:"column:subscription_payment_redirect_url;type:text" json:"subscription_payment_redirect_url,omitempty"`
	SubscriptionPaymentPaidAt      *time.Time `gorm:"column:subscription_payment_paid_at;type:timestamptz" json:"subscription_payment_paid_at,omitempty"`

	SubscriptionPaymentCreatedAt time.Time `gorm:"column:subscription_payment_created_at;type:timestamptz;autoCreateTime" json:"subscription_payment_created_at"`
	SubscriptionPaymentUpdatedAt time.Time `gorm:"column:subscription_payment_updated_at;type:timestamptz;autoUpdateTime" json:"subscription_payment_updated_at"`
}

func (SubscriptionPaymentModel) TableName() string { return "subscription_payments" }

func (m *SubscriptionPaymentModel) BeforeCreate(tx *gorm.DB) error { return m.validate() }
func (m *SubscriptionPaymentModel) BeforeSave(tx *gorm.DB) error   { return m.validate() }

func (m *SubscriptionPaymentModel) validate() error {
	if _, ok := validSubscriptionPaymentStatus[m.SubscriptionPaymentStatus]; !ok {
		return errors.New("invalid subscription_payment_status")
	}
	return nil
}
