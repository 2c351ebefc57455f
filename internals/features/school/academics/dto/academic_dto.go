package dto

import "time"

/* ===== Academic Year ===== */

type AcademicYearCreateRequest struct {
	Name      string    `json:"academic_year_name" validate:"required,min=4,max=30"`
	StartDate time.Time `json:"academic_year_start_date" validate:"required"`
	EndDate   time.Time `json:"academic_year_end_date" validate:"required"`
	IsActive  bool      `json:"academic_year_is_active"`
}

/* ===== Class & Section ===== */

type ClassCreateRequest struct {
	Name  string `json:"class_name" validate:"required,min=1,max=60"`
	Level int    `json:"class_level" validate:"gte=0,lte=20"`
}

type ClassSectionCreateRequest struct {
	ClassID   string  `json:"class_section_class_id" validate:"required,uuid"`
	Name      string  `json:"class_section_name" validate:"required,min=1,max=30"`
	Capacity  int     `json:"class_section_capacity" validate:"gte=0,lte=200"`
	TeacherID *string `json:"class_section_teacher_id,omitempty" validate:"omitempty,uuid"`
}

/* ===== Subject ===== */

type SubjectCreateRequest struct {
	Code string `json:"subject_code" validate:"required,min=1,max=20"`
	Name string `json:"subject_name" validate:"required,min=2,max=80"`
}
