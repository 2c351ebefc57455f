package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademicYearModel: periode ajaran per sekolah, satu saja yang aktif.
type AcademicYearModel struct {
	AcademicYearID       uuid.UUID `gorm:"column:academic_year_id;type:uuid;default:gen_random_uuid();primaryKey" json:"academic_year_id"`
	AcademicYearSchoolID uuid.UUID `gorm:"column:academic_year_school_id;type:uuid;not null;index;uniqueIndex:uq_academic_years_school_name" json:"academic_year_school_id"`

	AcademicYearName      string    `gorm:"column:academic_year_name;type:varchar(30);not null;uniqueIndex:uq_academic_years_school_name" json:"academic_year_name"` // ex: "2026/2027"
	AcademicYearStartDate time.Time `gorm:"column:academic_year_start_date;type:date;not null" json:"academic_year_start_date"`
	AcademicYearEndDate   time.Time `gorm:"column:academic_year_end_date;type:date;not null" json:"academic_year_end_date"`
	AcademicYearIsActive  bool      `gorm:"column:academic_year_is_active;not null;default:false" json:"academic_year_is_active"`

	AcademicYearCreatedAt time.Time      `gorm:"column:academic_year_created_at;type:timestamptz;autoCreateTime" json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time      `gorm:"column:academic_year_updated_at;type:timestamptz;autoUpdateTime" json:"academic_year_updated_at"`
	AcademicYearDeletedAt gorm.DeletedAt `gorm:"column:academic_year_deleted_at;index" json:"academic_year_deleted_at,omitempty"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }

func (m *AcademicYearModel) BeforeSave(tx *gorm.DB) error {
	if !m.AcademicYearEndDate.After(m.AcademicYearStartDate) {
		return errors.New("academic_year_end_date must be after start_date")
	}
	return nil
}
