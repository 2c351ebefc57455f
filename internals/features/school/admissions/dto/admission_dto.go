package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	admissionModel "sekolahku_backend/internals/features/school/admissions/model"
)

/* ===== Request ===== */

type AdmissionApplyRequest struct {
	ApplicationNumber string `json:"application_number" validate:"required,min=1,max=40"`

	ApplicantFirstName  string     `json:"applicant_first_name" validate:"required,min=1,max=60"`
	ApplicantLastName   string     `json:"applicant_last_name" validate:"required,min=1,max=60"`
	ApplicantEmail      *string    `json:"applicant_email,omitempty" validate:"omitempty,email"`
	ApplicantGender     *string    `json:"applicant_gender,omitempty"`
	ApplicantBirthDate  *time.Time `json:"applicant_birth_date,omitempty"`
	ApplicantBirthPlace *string    `json:"applicant_birth_place,omitempty"`
	ApplicantAddress    *string    `json:"applicant_address,omitempty"`
	ApplicantPhone      *string    `json:"applicant_phone,omitempty"`

	GuardianName       string  `json:"guardian_name" validate:"required,min=1,max=120"`
	GuardianEmail      string  `json:"guardian_email" validate:"required,email"`
	GuardianPhone      *string `json:"guardian_phone,omitempty"`
	GuardianOccupation *string `json:"guardian_occupation,omitempty"`
	GuardianRelation   string  `json:"guardian_relation" validate:"max=40"`

	RequestedClassID        *string `json:"requested_class_id,omitempty" validate:"omitempty,uuid"`
	RequestedAcademicYearID *string `json:"requested_academic_year_id,omitempty" validate:"omitempty,uuid"`
}

func (r *AdmissionApplyRequest) ToModel(schoolID uuid.UUID) (*admissionModel.AdmissionApplicationModel, error) {
	m := &admissionModel.AdmissionApplicationModel{
		ApplicationSchoolID: schoolID,
		ApplicationNumber:   strings.TrimSpace(r.ApplicationNumber),
		ApplicationStatus:   admissionModel.ApplicationPending,

		ApplicantFirstName:  strings.TrimSpace(r.ApplicantFirstName),
		ApplicantLastName:   strings.TrimSpace(r.ApplicantLastName),
		ApplicantEmail:      r.ApplicantEmail,
		ApplicantGender:     r.ApplicantGender,
		ApplicantBirthDate:  r.ApplicantBirthDate,
		ApplicantBirthPlace: r.ApplicantBirthPlace,
		ApplicantAddress:    r.ApplicantAddress,
		ApplicantPhone:      r.ApplicantPhone,

		GuardianName:       strings.TrimSpace(r.GuardianName),
		GuardianEmail:      strings.ToLower(strings.TrimSpace(r.GuardianEmail)),
		GuardianPhone:      r.GuardianPhone,
		GuardianOccupation: r.GuardianOccupation,
		GuardianRelation:   strings.TrimSpace(r.GuardianRelation),
	}
	if r.RequestedClassID != nil {
		id, err := uuid.Parse(*r.RequestedClassID)
		if err != nil {
			return nil, err
		}
		m.RequestedClassID = &id
	}
	if r.RequestedAcademicYearID != nil {
		id, err := uuid.Parse(*r.RequestedAcademicYearID)
		if err != nil {
			return nil, err
		}
		m.RequestedAcademicYearID = &id
	}
	return m, nil
}
