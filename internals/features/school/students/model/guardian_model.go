package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================
   ENUM & VALIDATOR
======================================= */

type GuardianRelation string

const (
	RelationFather   GuardianRelation = "father"
	RelationMother   GuardianRelation = "mother"
	RelationGuardian GuardianRelation = "guardian"
	RelationOther    GuardianRelation = "other"
)

var validGuardianRelation = map[GuardianRelation]struct{}{
	RelationFather:   {},
	RelationMother:   {},
	RelationGuardian: {},
	RelationOther:    {},
}

// MapGuardianRelation memetakan teks bebas dari form PPDB ke enum.
// Case-sensitive exact match; selain tiga nilai baku jatuh ke "other".
func MapGuardianRelation(raw string) GuardianRelation {
	switch raw {
	case "Father":
		return RelationFather
	case "Mother":
		return RelationMother
	case "Guardian":
		return RelationGuardian
	default:
		return RelationOther
	}
}

/* =======================================
   Model: guardians
======================================= */

// GuardianModel: profil wali per tenant yang membungkus satu akun User.
// Satu wali bisa terhubung ke banyak siswa (kakak-adik).
type GuardianModel struct {
	GuardianID       uuid.UUID `gorm:"column:guardian_id;type:uuid;default:gen_random_uuid();primaryKey" json:"guardian_id"`
	GuardianSchoolID uuid.UUID `gorm:"column:guardian_school_id;type:uuid;not null;index;uniqueIndex:uq_guardians_school_user" json:"guardian_school_id"`
	GuardianUserID   uuid.UUID `gorm:"column:guardian_user_id;type:uuid;not null;uniqueIndex:uq_guardians_school_user" json:"guardian_user_id"`

	GuardianOccupation *string          `gorm:"column:guardian_occupation;type:varchar(80)" json:"guardian_occupation,omitempty"`
	GuardianRelation   GuardianRelation `gorm:"column:guardian_relation;type:text;not null;default:'other'" json:"guardian_relation"`

	GuardianCreatedAt time.Time      `gorm:"column:guardian_created_at;type:timestamptz;autoCreateTime" json:"guardian_created_at"`
	GuardianUpdatedAt time.Time      `gorm:"column:guardian_updated_at;type:timestamptz;autoUpdateTime" json:"guardian_updated_at"`
	GuardianDeletedAt gorm.DeletedAt `gorm:"column:guardian_deleted_at;index" json:"guardian_deleted_at,omitempty"`
}

func (GuardianModel) TableName() string { return "guardians" }

func (m *GuardianModel) BeforeCreate(tx *gorm.DB) error { return m.validate() }
func (m *GuardianModel) BeforeSave(tx *gorm.DB) error   { return m.validate() }

func (m *GuardianModel) validate() error {
	if _, ok := validGuardianRelation[m.GuardianRelation]; !ok {
		return errors.New("invalid guardian_relation")
	}
	return nil
}
