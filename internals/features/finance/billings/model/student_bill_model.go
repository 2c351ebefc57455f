package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BillStatus string

const (
	BillUnpaid   BillStatus = "unpaid"
	BillPaid     BillStatus = "paid"
	BillCanceled BillStatus = "canceled"
)

var validBillStatus = map[BillStatus]struct{}{
	BillUnpaid:   {},
	BillPaid:     {},
	BillCanceled: {},
}

// StudentBillModel: tagihan biaya sekolah per siswa (SPP, seragam, dsb).
type StudentBillModel struct {
	BillID        uuid.UUID `gorm:"column:bill_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bill_id"`
	BillSchoolID  uuid.UUID `gorm:"column:bill_school_id;type:uuid;not null;index" json:"bill_school_id"`
	BillStudentID uuid.UUID `gorm:"column:bill_student_id;type:uuid;not null;index" json:"bill_student_id"`

	BillTitle     string     `gorm:"column:bill_title;type:varchar(120);not null" json:"bill_title"`
	BillAmountIDR int64      `gorm:"column:bill_amount_idr;not null" json:"bill_amount_idr"`
	BillDueDate   *time.Time `gorm:"column:bill_due_date;type:date" json:"bill_due_date,omitempty"`
	BillStatus    BillStatus `gorm:"column:bill_status;type:text;not null;default:'unpaid'" json:"bill_status"`
	BillPaidAt    *time.Time `gorm:"column:bill_paid_at;type:timestamptz" json:"bill_paid_at,omitempty"`
	BillNote      *string    `gorm:"column:bill_note;type:text" json:"bill_note,omitempty"`

	BillCreatedAt time.Time      `gorm:"column:bill_created_at;type:timestamptz;autoCreateTime" json:"bill_created_at"`
	BillUpdatedAt time.Time      `gorm:"column:bill_updated_at;type:timestamptz;autoUpdateTime" json:"bill_updated_at"`
	BillDeletedAt gorm.DeletedAt `gorm:"column:bill_deleted_at;index" json:"bill_deleted_at,omitempty"`
}

func (StudentBillModel) TableName() string { return "student_bills" }

func (m *StudentBillModel) BeforeCreate(tx *gorm.DB) error { return m.validate() }
func (m *StudentBillModel) BeforeSave(tx *gorm.DB) error   { return m.validate() }

func (m *StudentBillModel) validate() error {
	if _, ok := validBillStatus[m.BillStatus]; !ok {
		return errors.New("invalid bill_status")
	}
	if m.BillAmountIDR < 0 {
		return errors.New("bill_amount_idr must not be negative")
	}
	return nil
}
