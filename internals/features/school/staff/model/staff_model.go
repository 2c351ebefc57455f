package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffRole string

const (
	StaffTeacher StaffRole = "teacher"
	StaffAdmin   StaffRole = "admin"
	StaffSupport StaffRole = "support"
)

var validStaffRole = map[StaffRole]struct{}{
	StaffTeacher: {},
	StaffAdmin:   {},
	StaffSupport: {},
}

// StaffModel: pegawai sekolah (guru/TU), membungkus akun User seperti Guardian.
type StaffModel struct {
	StaffID       uuid.UUID `gorm:"column:staff_id;type:uuid;default:gen_random_uuid();primaryKey" json:"staff_id"`
	StaffSchoolID uuid.UUID `gorm:"column:staff_school_id;type:uuid;not null;index;uniqueIndex:uq_staff_school_user" json:"staff_school_id"`
	StaffUserID   uuid.UUID `gorm:"column:staff_user_id;type:uuid;not null;uniqueIndex:uq_staff_school_user" json:"staff_user_id"`

	StaffNumber   *string    `gorm:"column:staff_number;type:varchar(40)" json:"staff_number,omitempty"`
	StaffRole     StaffRole  `gorm:"column:staff_role;type:text;not null;default:'teacher'" json:"staff_role"`
	StaffPosition *string    `gorm:"column:staff_position;type:varchar(80)" json:"staff_position,omitempty"`
	StaffHiredAt  *time.Time `gorm:"column:staff_hired_at;type:date" json:"staff_hired_at,omitempty"`
	StaffIsActive bool       `gorm:"column:staff_is_active;not null;default:true" json:"staff_is_active"`

	StaffCreatedAt time.Time      `gorm:"column:staff_created_at;type:timestamptz;autoCreateTime" json:"staff_created_at"`
	StaffUpdatedAt time.Time      `gorm:"column:staff_updated_at;type:timestamptz;autoUpdateTime" json:"staff_updated_at"`
	StaffDeletedAt gorm.DeletedAt `gorm:"column:staff_deleted_at;index" json:"staff_deleted_at,omitempty"`
}

func (StaffModel) TableName() string { return "staff" }

func (m *StaffModel) BeforeCreate(tx *gorm.DB) error { return m.validate() }
func (m *StaffModel) BeforeSave(tx *gorm.DB) error   { return m.validate() }

func (m *StaffModel) validate() error {
	if _, ok := validStaffRole[m.StaffRole]; !ok {
		return errors.New("invalid staff_role")
	}
	return nil
}
