package dto

import (
	"time"

	"github.com/google/uuid"

	studentModel "sekolahku_backend/internals/features/school/students/model"
)

/* ===== Request ===== */

type StudentCreateRequest struct {
	FirstName       string     `json:"student_first_name" validate:"required,min=1,max=60"`
	LastName        string     `json:"student_last_name" validate:"required,min=1,max=60"`
	Email           *string    `json:"student_email,omitempty" validate:"omitempty,email"`
	AdmissionNumber string     `json:"student_admission_number" validate:"required,min=1,max=40"`
	Gender          *string    `json:"student_gender,omitempty"`
	BirthDate       *time.Time `json:"student_birth_date,omitempty"`
	BirthPlace      *string    `json:"student_birth_place,omitempty"`
	Address         *string    `json:"student_address,omitempty"`
	Phone           *string    `json:"student_phone,omitempty"`
	ClassID         *string    `json:"student_class_id,omitempty" validate:"omitempty,uuid"`
	AcademicYearID  *string    `json:"student_academic_year_id,omitempty" validate:"omitempty,uuid"`
}

type StudentUpdateRequest struct {
	Status         *string    `json:"student_status,omitempty"`
	Gender         *string    `json:"student_gender,omitempty"`
	BirthDate      *time.Time `json:"student_birth_date,omitempty"`
	BirthPlace     *string    `json:"student_birth_place,omitempty"`
	Address        *string    `json:"student_address,omitempty"`
	Phone          *string    `json:"student_phone,omitempty"`
	ClassID        *string    `json:"student_class_id,omitempty" validate:"omitempty,uuid"`
	AcademicYearID *string    `json:"student_academic_year_id,omitempty" validate:"omitempty,uuid"`
}

type GuardianAttachRequest struct {
	GuardianID         string `json:"guardian_id" validate:"required,uuid"`
	Relationship       string `json:"relationship" validate:"max=40"`
	IsEmergencyContact bool   `json:"is_emergency_contact"`
}

/* ===== Response ===== */

type GuardianLinkResponse struct {
	GuardianID         uuid.UUID `json:"guardian_id"`
	GuardianUserID     uuid.UUID `json:"guardian_user_id"`
	Relation           string    `json:"guardian_relation"`
	Occupation         *string   `json:"guardian_occupation,omitempty"`
	Relationship       string    `json:"relationship"`
	IsEmergencyContact bool      `json:"is_emergency_contact"`
}

type StudentResponse struct {
	StudentID       uuid.UUID              `json:"student_id"`
	SchoolID        uuid.UUID              `json:"student_school_id"`
	UserID          uuid.UUID              `json:"student_user_id"`
	ApplicationID   *uuid.UUID             `json:"student_application_id,omitempty"`
	AdmissionNumber string                 `json:"student_admission_number"`
	AdmissionDate   time.Time              `json:"student_admission_date"`
	FirstName       string                 `json:"student_first_name"`
	LastName        string                 `json:"student_last_name"`
	Gender          *string                `json:"student_gender,omitempty"`
	BirthDate       *time.Time             `json:"student_birth_date,omitempty"`
	BirthPlace      *string                `json:"student_birth_place,omitempty"`
	Address         *string                `json:"student_address,omitempty"`
	Phone           *string                `json:"student_phone,omitempty"`
	ClassID         *uuid.UUID             `json:"student_class_id,omitempty"`
	AcademicYearID  *uuid.UUID             `json:"student_academic_year_id,omitempty"`
	Status          string                 `json:"student_status"`
	Guardians       []GuardianLinkResponse `json:"guardians,omitempty"`
	CreatedAt       time.Time              `json:"student_created_at"`
}

func FromModel(m *studentModel.StudentModel) *StudentResponse {
	return &StudentResponse{
		StudentID:       m.StudentID,
		SchoolID:        m.StudentSchoolID,
		UserID:          m.StudentUserID,
		ApplicationID:   m.StudentApplicationID,
		AdmissionNumber: m.StudentAdmissionNumber,
		AdmissionDate:   m.StudentAdmissionDate,
		FirstName:       m.StudentFirstName,
		LastName:        m.StudentLastName,
		Gender:          m.StudentGender,
		BirthDate:       m.StudentBirthDate,
		BirthPlace:      m.StudentBirthPlace,
		Address:         m.StudentAddress,
		Phone:           m.StudentPhone,
		ClassID:         m.StudentClassID,
		AcademicYearID:  m.StudentAcademicYearID,
		Status:          string(m.StudentStatus),
		CreatedAt:       m.StudentCreatedAt,
	}
}

func FromModels(ms []studentModel.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}
