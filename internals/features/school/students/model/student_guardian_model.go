package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentGuardianModel: join siswa↔wali. Label relationship bebas (teks dari
// form), is_emergency_contact boleh true di banyak baris sekaligus.
type StudentGuardianModel struct {
	StudentGuardianID         uuid.UUID `gorm:"column:student_guardian_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_guardian_id"`
	StudentGuardianStudentID  uuid.UUID `gorm:"column:student_guardian_student_id;type:uuid;not null;index;uniqueIndex:uq_student_guardians_pair" json:"student_guardian_student_id"`
	StudentGuardianGuardianID uuid.UUID `gorm:"column:student_guardian_guardian_id;type:uuid;not null;index;uniqueIndex:uq_student_guardians_pair" json:"student_guardian_guardian_id"`

	StudentGuardianRelationship       string `gorm:"column:student_guardian_relationship;type:varchar(40);not null;default:''" json:"student_guardian_relationship"`
	StudentGuardianIsEmergencyContact bool   `gorm:"column:student_guardian_is_emergency_contact;not null;default:false" json:"student_guardian_is_emergency_contact"`

	StudentGuardianCreatedAt time.Time      `gorm:"column:student_guardian_created_at;type:timestamptz;autoCreateTime" json:"student_guardian_created_at"`
	StudentGuardianUpdatedAt time.Time      `gorm:"column:student_guardian_updated_at;type:timestamptz;autoUpdateTime" json:"student_guardian_updated_at"`
	StudentGuardianDeletedAt gorm.DeletedAt `gorm:"column:student_guardian_deleted_at;index" json:"student_guardian_deleted_at,omitempty"`
}

func (StudentGuardianModel) TableName() string { return "student_guardians" }
