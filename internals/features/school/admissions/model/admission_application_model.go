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

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

var validApplicationStatus = map[ApplicationStatus]struct{}{
	ApplicationPending:  {},
	ApplicationApproved: {},
	ApplicationRejected: {},
}

/* =======================================
   Model: admission_applications
======================================= */

// AdmissionApplicationModel: pendaftaran calon siswa (PPDB) per tenant.
// application_seq (bigserial) dipakai untuk sintesis email siswa yang
// deterministik saat pendaftar tidak punya email sendiri.
type AdmissionApplicationModel struct {
	ApplicationID       uuid.UUID `gorm:"column:application_id;type:uuid;default:gen_random_uuid();primaryKey" json:"application_id"`
	ApplicationSeq      int64     `gorm:"column:application_seq;autoIncrement;uniqueIndex" json:"application_seq"`
	ApplicationSchoolID uuid.UUID `gorm:"column:application_school_id;type:uuid;not null;index;uniqueIndex:uq_applications_school_number" json:"application_school_id"`

	ApplicationNumber string            `gorm:"column:application_number;type:varchar(40);not null;uniqueIndex:uq_applications_school_number" json:"application_number"`
	ApplicationStatus ApplicationStatus `gorm:"column:application_status;type:text;not null;default:'pending'" json:"application_status"`

	// data calon siswa
	ApplicantFirstName  string     `gorm:"column:applicant_first_name;type:varchar(60);not null" json:"applicant_first_name"`
	ApplicantLastName   string     `gorm:"column:applicant_last_name;type:varchar(60);not null" json:"applicant_last_name"`
	ApplicantEmail      *string    `gorm:"column:applicant_email;type:varchar(120)" json:"applicant_email,omitempty"`
	ApplicantGender     *string    `gorm:"column:applicant_gender;type:varchar(12)" json:"applicant_gender,omitempty"`
	ApplicantBirthDate  *time.Time `gorm:"column:applicant_birth_date;type:date" json:"applicant_birth_date,omitempty"`
	ApplicantBirthPlace *string    `gorm:"column:applicant_birth_place;type:varchar(80)" json:"applicant_birth_place,omitempty"`
	ApplicantAddress    *string    `gorm:"column:applicant_address;type:text" json:"applicant_address,omitempty"`
	ApplicantPhone      *string    `gorm:"column:applicant_phone;type:varchar(30)" json:"applicant_phone,omitempty"`

	// data wali (teks bebas dari form)
	GuardianName       string  `gorm:"column:guardian_name;type:varchar(120);not null" json:"guardian_name"`
	GuardianEmail      string  `gorm:"column:guardian_email;type:varchar(120);not null" json:"guardian_email"`
	GuardianPhone      *string `gorm:"column:guardian_phone;type:varchar(30)" json:"guardian_phone,omitempty"`
	GuardianOccupation *string `gorm:"column:guardian_occupation;type:varchar(80)" json:"guardian_occupation,omitempty"`
	GuardianRelation   string  `gorm:"column:guardian_relation;type:varchar(40);not null;default:''" json:"guardian_relation"`

	// tujuan pendaftaran
	RequestedClassID        *uuid.UUID `gorm:"column:requested_class_id;type:uuid" json:"requested_class_id,omitempty"`
	RequestedAcademicYearID *uuid.UUID `gorm:"column:requested_academic_year_id;type:uuid" json:"requested_academic_year_id,omitempty"`

	ApplicationCreatedAt time.Time      `gorm:"column:application_created_at;type:timestamptz;autoCreateTime" json:"application_created_at"`
	ApplicationUpdatedAt time.Time      `gorm:"column:application_updated_at;type:timestamptz;autoUpdateTime" json:"application_updated_at"`
	ApplicationDeletedAt gorm.DeletedAt `gorm:"column:application_deleted_at;index" json:"application_deleted_at,omitempty"`
}

func (AdmissionApplicationModel) TableName() string { return "admission_applications" }

func (m *AdmissionApplicationModel) BeforeCreate(tx *gorm.DB) error { return m.validate() }
func (m *AdmissionApplicationModel) BeforeSave(tx *gorm.DB) error   { return m.validate() }

func (m *AdmissionApplicationModel) validate() error {
	if _, ok := validApplicationStatus[m.ApplicationStatus]; !ok {
		return errors.New("invalid application_status")
	}
	return nil
}
