// file: internals/features/users/user/model/role_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// RoleModel: kumpulan capability bernama. User memegang nol-atau-lebih role;
// effective permission set user = union permission semua role yang dipegang.
type RoleModel struct {
	RoleID   uuid.UUID `gorm:"column:role_id;type:uuid;default:gen_random_uuid();primaryKey" json:"role_id"`
	RoleName string    `gorm:"column:role_name;type:varchar(50);not null;uniqueIndex" json:"role_name"`

	RoleCreatedAt time.Time `gorm:"column:role_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"role_created_at"`
}

func (RoleModel) TableName() string { return "roles" }

// PermissionModel: capability tunggal bernama (mis. "student.manage").
type PermissionModel struct {
	PermissionID   uuid.UUID `gorm:"column:permission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"permission_id"`
	PermissionName string    `gorm:"column:permission_name;type:varchar(80);not null;uniqueIndex" json:"permission_name"`

	PermissionCreatedAt time.Time `gorm:"column:permission_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"permission_created_at"`
}

func (PermissionModel) TableName() string { return "permissions" }

// RolePermissionModel: join role ↔ permission.
type RolePermissionModel struct {
	RolePermissionID uuid.UUID `gorm:"column:role_permission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"role_permission_id"`
	RoleID           uuid.UUID `gorm:"column:role_id;type:uuid;not null;uniqueIndex:uq_role_permissions" json:"role_id"`
	PermissionID     uuid.UUID `gorm:"column:permission_id;type:uuid;not null;uniqueIndex:uq_role_permissions" json:"permission_id"`
}

func (RolePermissionModel) TableName() string { return "role_permissions" }

// UserRoleModel: join user ↔ role, opsional dibatasi per sekolah.
type UserRoleModel struct {
	UserRoleID uuid.UUID  `gorm:"column:user_role_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_role_id"`
	UserID     uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	RoleID     uuid.UUID  `gorm:"column:role_id;type:uuid;not null" json:"role_id"`
	SchoolID   *uuid.UUID `gorm:"column:school_id;type:uuid" json:"school_id,omitempty"`
	AssignedAt *time.Time `gorm:"column:assigned_at" json:"assigned_at,omitempty"`
	AssignedBy *uuid.UUID `gorm:"column:assigned_by;type:uuid" json:"assigned_by,omitempty"`
	DeletedAt  *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
}

func (UserRoleModel) TableName() string { return "user_roles" }
