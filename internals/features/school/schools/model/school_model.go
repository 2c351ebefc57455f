// file: internals/features/school/schools/model/school_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================
   ENUM & VALIDATOR
======================================= */

type SchoolStatus string

const (
	SchoolActive    SchoolStatus = "active"
	SchoolInactive  SchoolStatus = "inactive"
	SchoolSuspended SchoolStatus = "suspended"
	SchoolPending   SchoolStatus = "pending"
)

var validSchoolStatus = map[SchoolStatus]struct{}{
	SchoolActive:    {},
	SchoolInactive:  {},
	SchoolSuspended: {},
	SchoolPending:   {},
}

type SubscriptionPlan string

const (
	PlanFree     SubscriptionPlan = "free"
	PlanBasic    SubscriptionPlan = "basic"
	PlanStandard SubscriptionPlan = "standard"
	PlanPremium  SubscriptionPlan = "premium"
)

var validSubscriptionPlan = map[SubscriptionPlan]struct{}{
	PlanFree:     {},
	PlanBasic:    {},
	PlanStandard: {},
	PlanPremium:  {},
}

/* =======================================
   Model: schools (tenant / root scope)
======================================= */

// SchoolModel adalah akar isolasi data: semua entitas lain menempel ke satu
// school dan tidak pernah terbaca/tertulis lintas tenant.
type SchoolModel struct {
	SchoolID uuid.UUID `gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_id"`

	SchoolName string `gorm:"column:school_name;type:varchar(100);not null" json:"school_name"`
	SchoolSlug string `gorm:"column:school_slug;type:varchar(100);not null;uniqueIndex" json:"school_slug"`

	SchoolStatus SchoolStatus `gorm:"column:school_status;type:text;not null;default:'pending'" json:"school_status"`

	// Langganan. SchoolSubscriptionEndsAt NULL = tidak pernah kedaluwarsa.
	// Plan free tidak pernah dicek expiry-nya.
	SchoolSubscriptionPlan   SubscriptionPlan `gorm:"column:school_subscription_plan;type:text;not null;default:'free'" json:"school_subscription_plan"`
	SchoolSubscriptionEndsAt *time.Time       `gorm:"column:school_subscription_ends_at;type:timestamptz" json:"school_subscription_ends_at,omitempty"`

	// Theming (warna, logo, dsb) — JSONB bebas, dipelihara frontend
	SchoolTheme datatypes.JSON `gorm:"column:school_theme;type:jsonb;not null;default:'{}'" json:"school_theme"`

	SchoolLogoURL *string `gorm:"column:school_logo_url;type:text" json:"school_logo_url,omitempty"`
	SchoolAddress *string `gorm:"column:school_address;type:text" json:"school_address,omitempty"`
	SchoolPhone   *string `gorm:"column:school_phone;type:varchar(30)" json:"school_phone,omitempty"`

	SchoolCreatedAt time.Time      `gorm:"column:school_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"column:school_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index" json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }

/* =======================================
   Hooks ringan (mirror aturan SQL)
======================================= */

func (m *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if len(m.SchoolTheme) == 0 {
		m.SchoolTheme = datatypes.JSON([]byte("{}"))
	}
	return m.validateEnums()
}

func (m *SchoolModel) BeforeSave(tx *gorm.DB) error {
	if len(m.SchoolTheme) == 0 {
		m.SchoolTheme = datatypes.JSON([]byte("{}"))
	}
	return m.validateEnums()
}

func (m *SchoolModel) validateEnums() error {
	if _, ok := validSchoolStatus[m.SchoolStatus]; !ok {
		return errors.New("invalid school_status")
	}
	if _, ok := validSubscriptionPlan[m.SchoolSubscriptionPlan]; !ok {
		return errors.New("invalid school_subscription_plan")
	}
	return nil
}
