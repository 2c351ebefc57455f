package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel: tingkat/kelas (mis. "Kelas 7"). Section ada di tabel terpisah.
type ClassModel struct {
	ClassID       uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassSchoolID uuid.UUID `gorm:"column:class_school_id;type:uuid;not null;index;uniqueIndex:uq_classes_school_name" json:"class_school_id"`

	ClassName  string `gorm:"column:class_name;type:varchar(60);not null;uniqueIndex:uq_classes_school_name" json:"class_name"`
	ClassLevel int    `gorm:"column:class_level;not null;default:0" json:"class_level"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;type:timestamptz;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;type:timestamptz;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

// ClassSectionModel: rombongan belajar di bawah satu kelas (7A, 7B, ...).
type ClassSectionModel struct {
	ClassSectionID       uuid.UUID `gorm:"column:class_section_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_section_id"`
	ClassSectionSchoolID uuid.UUID `gorm:"column:class_section_school_id;type:uuid;not null;index" json:"class_section_school_id"`
	ClassSectionClassID  uuid.UUID `gorm:"column:class_section_class_id;type:uuid;not null;index;uniqueIndex:uq_class_sections_class_name" json:"class_section_class_id"`

	ClassSectionName     string     `gorm:"column:class_section_name;type:varchar(30);not null;uniqueIndex:uq_class_sections_class_name" json:"class_section_name"`
	ClassSectionCapacity int        `gorm:"column:class_section_capacity;not null;default:0" json:"class_section_capacity"`
	ClassSectionTeacher  *uuid.UUID `gorm:"column:class_section_teacher_id;type:uuid" json:"class_section_teacher_id,omitempty"`

	ClassSectionCreatedAt time.Time      `gorm:"column:class_section_created_at;type:timestamptz;autoCreateTime" json:"class_section_created_at"`
	ClassSectionUpdatedAt time.Time      `gorm:"column:class_section_updated_at;type:timestamptz;autoUpdateTime" json:"class_section_updated_at"`
	ClassSectionDeletedAt gorm.DeletedAt `gorm:"column:class_section_deleted_at;index" json:"class_section_deleted_at,omitempty"`
}

func (ClassSectionModel) TableName() string { return "class_sections" }
