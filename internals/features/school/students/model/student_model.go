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

type StudentStatus string

const (
	StudentActive      StudentStatus = "active"
	StudentInactive    StudentStatus = "inactive"
	StudentGraduated   StudentStatus = "graduated"
	StudentTransferred StudentStatus = "transferred"
)

var validStudentStatus = map[StudentStatus]struct{}{
	StudentActive:      {},
	StudentInactive:    {},
	StudentGraduated:   {},
	StudentTransferred: {},
}

/* =======================================
   Model: students
======================================= */

// StudentModel: pelajar aktif, one-to-one dengan akun User (login siswa).
// student_application_id unik → satu aplikasi PPDB hanya bisa jadi satu siswa.
type StudentModel struct {
	StudentID       uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentSchoolID uuid.UUID `gorm:"column:student_school_id;type:uuid;not null;index;uniqueIndex:uq_students_school_admission" json:"student_school_id"`
	StudentUserID   uuid.UUID `gorm:"column:student_user_id;type:uuid;not null;uniqueIndex" json:"student_user_id"`

	// sumber konversi (NULL utk siswa yang dibuat langsung, bukan dari PPDB)
	StudentApplicationID *uuid.UUID `gorm:"column:student_application_id;type:uuid;uniqueIndex" json:"student_application_id,omitempty"`

	StudentAdmissionNumber string    `gorm:"column:student_admission_number;type:varchar(40);not null;uniqueIndex:uq_students_school_admission" json:"student_admission_number"`
	StudentAdmissionDate   time.Time `gorm:"column:student_admission_date;type:timestamptz;not null" json:"student_admission_date"`

	StudentFirstName  string     `gorm:"column:student_first_name;type:varchar(60);not null" json:"student_first_name"`
	StudentLastName   string     `gorm:"column:student_last_name;type:varchar(60);not null" json:"student_last_name"`
	StudentGender     *string    `gorm:"column:student_gender;type:varchar(12)" json:"student_gender,omitempty"`
	StudentBirthDate  *time.Time `gorm:"column:student_birth_date;type:date" json:"student_birth_date,omitempty"`
	StudentBirthPlace *string    `gorm:"column:student_birth_place;type:varchar(80)" json:"student_birth_place,omitempty"`
	StudentAddress    *string    `gorm:"column:student_address;type:text" json:"student_address,omitempty"`
	StudentPhone      *string    `gorm:"column:student_phone;type:varchar(30)" json:"student_phone,omitempty"`

	StudentClassID        *uuid.UUID `gorm:"column:student_class_id;type:uuid;index" json:"student_class_id,omitempty"`
	StudentAcademicYearID *uuid.UUID `gorm:"column:student_academic_year_id;type:uuid;index" json:"student_academic_year_id,omitempty"`

	StudentStatus StudentStatus `gorm:"column:student_status;type:text;not null;default:'active'" json:"student_status"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;type:timestamptz;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;type:timestamptz;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error { return m.validate() }
func (m *StudentModel) BeforeSave(tx *gorm.DB) error   { return m.validate() }

func (m *StudentModel) validate() error {
	if _, ok := validStudentStatus[m.StudentStatus]; !ok {
		return errors.New("invalid student_status")
	}
	return nil
}
