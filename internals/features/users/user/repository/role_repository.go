// file: internals/features/users/user/repository/role_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

/* ==========================
   Role store — dipakai gate & workflow.
   Semua query dievaluasi fresh per pemanggilan (tanpa cache keputusan).
========================== */

// FindOrCreateRole mengambil role by name, buat kalau belum ada.
func FindOrCreateRole(db *gorm.DB, name string) (*userModel.RoleModel, error) {
	var role userModel.RoleModel
	err := db.Where("role_name = ?", name).First(&role).Error
	if err == nil {
		return &role, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	role = userModel.RoleModel{RoleName: name}
	if err := db.Create(&role).Error; err != nil {
		// kemungkinan race insert paralel → re-read
		if rerr := db.Where("role_name = ?", name).First(&role).Error; rerr == nil {
			return &role, nil
		}
		return nil, err
	}
	return &role, nil
}

// GrantRole menambahkan role ke user (idempotent: skip kalau sudah dipegang).
func GrantRole(db *gorm.DB, userID uuid.UUID, roleName string, schoolID *uuid.UUID) error {
	role, err := FindOrCreateRole(db, roleName)
	if err != nil {
		return err
	}

	var cnt int64
	q := db.Model(&userModel.UserRoleModel{}).
		Where("user_id = ? AND role_id = ? AND deleted_at IS NULL", userID, role.RoleID)
	if schoolID != nil {
		q = q.Where("school_id = ?", *schoolID)
	} else {
		q = q.Where("school_id IS NULL")
	}
	if err := q.Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	now := time.Now().UTC()
	return db.Create(&userModel.UserRoleModel{
		UserID:     userID,
		RoleID:     role.RoleID,
		SchoolID:   schoolID,
		AssignedAt: &now,
	}).Error
}

// UserHasRole: apakah user memegang role (di scope manapun).
func UserHasRole(db *gorm.DB, userID uuid.UUID, roleName string) (bool, error) {
	var cnt int64
	err := db.Table("user_roles ur").
		Joins("JOIN roles r ON r.role_id = ur.role_id").
		Where("ur.user_id = ? AND ur.deleted_at IS NULL AND r.role_name = ?", userID, roleName).
		Count(&cnt).Error
	return cnt > 0, err
}

// UserRoleNames: semua nama role yang dipegang user.
func UserRoleNames(db *gorm.DB, userID uuid.UUID) ([]string, error) {
	var names []string
	err := db.Table("user_roles ur").
		Joins("JOIN roles r ON r.role_id = ur.role_id").
		Where("ur.user_id = ? AND ur.deleted_at IS NULL", userID).
		Order("r.role_name ASC").
		Pluck("r.role_name", &names).Error
	return names, err
}

// EffectivePermissions: union permission dari semua role user.
func EffectivePermissions(db *gorm.DB, userID uuid.UUID) ([]string, error) {
	var names []string
	err := db.Table("user_roles ur").
		Joins("JOIN role_permissions rp ON rp.role_id = ur.role_id").
		Joins("JOIN permissions p ON p.permission_id = rp.permission_id").
		Where("ur.user_id = ? AND ur.deleted_at IS NULL", userID).
		Distinct().
		Pluck("p.permission_name", &names).Error
	return names, err
}

// GrantPermissionToRole: tambahkan permission ke role (idempotent).
func GrantPermissionToRole(db *gorm.DB, roleName, permissionName string) error {
	role, err := FindOrCreateRole(db, roleName)
	if err != nil {
		return err
	}

	var perm userModel.PermissionModel
	err = db.Where("permission_name = ?", permissionName).First(&perm).Error
	if err == gorm.ErrRecordNotFound {
		perm = userModel.PermissionModel{PermissionName: permissionName}
		if err := db.Create(&perm).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var cnt int64
	if err := db.Model(&userModel.RolePermissionModel{}).
		Where("role_id = ? AND permission_id = ?", role.RoleID, perm.PermissionID).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}
	return db.Create(&userModel.RolePermissionModel{
		RoleID:       role.RoleID,
		PermissionID: perm.PermissionID,
	}).Error
}
