package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceSick    AttendanceStatus = "sick"
	AttendanceLeave   AttendanceStatus = "leave"
	AttendanceLate    AttendanceStatus = "late"
)

var validAttendanceStatus = map[AttendanceStatus]struct{}{
	AttendancePresent: {},
	AttendanceAbsent:  {},
	AttendanceSick:    {},
	AttendanceLeave:   {},
	AttendanceLate:    {},
}

// AttendanceModel: presensi harian per siswa. Satu baris per (siswa, tanggal).
type AttendanceModel struct {
	AttendanceID        uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceSchoolID  uuid.UUID `gorm:"column:attendance_school_id;type:uuid;not null;index" json:"attendance_school_id"`
	AttendanceStudentID uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;index;uniqueIndex:uq_attendances_student_date" json:"attendance_student_id"`

	AttendanceDate   time.Time        `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendances_student_date" json:"attendance_date"`
	AttendanceStatus AttendanceStatus `gorm:"column:attendance_status;type:text;not null" json:"attendance_status"`
	AttendanceNote   *string          `gorm:"column:attendance_note;type:text" json:"attendance_note,omitempty"`

	AttendanceMarkedBy *uuid.UUID `gorm:"column:attendance_marked_by;type:uuid" json:"attendance_marked_by,omitempty"`

	AttendanceCreatedAt time.Time      `gorm:"column:attendance_created_at;type:timestamptz;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"column:attendance_updated_at;type:timestamptz;autoUpdateTime" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index" json:"attendance_deleted_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error { return m.validate() }
func (m *AttendanceModel) BeforeSave(tx *gorm.DB) error   { return m.validate() }

func (m *AttendanceModel) validate() error {
	if _, ok := validAttendanceStatus[m.AttendanceStatus]; !ok {
		return errors.New("invalid attendance_status")
	}
	return nil
}
