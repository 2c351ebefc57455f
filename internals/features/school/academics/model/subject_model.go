package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID       uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`
	SubjectSchoolID uuid.UUID `gorm:"column:subject_school_id;type:uuid;not null;index;uniqueIndex:uq_subjects_school_code" json:"subject_school_id"`

	SubjectCode string `gorm:"column:subject_code;type:varchar(20);not null;uniqueIndex:uq_subjects_school_code" json:"subject_code"`
	SubjectName string `gorm:"column:subject_name;type:varchar(80);not null" json:"subject_name"`

	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;type:timestamptz;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;type:timestamptz;autoUpdateTime" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
