package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	staffDTO "sekolahku_backend/internals/features/school/staff/dto"
	staffModel "sekolahku_backend/internals/features/school/staff/model"
	authHelper "sekolahku_backend/internals/features/users/auth/helper"
	userModel "sekolahku_backend/internals/features/users/user/model"
	userRepo "sekolahku_backend/internals/features/users/user/repository"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type StaffController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db, Validate: validator.New()}
}

// roleForStaff memetakan jabatan ke role RBAC yang relevan.
func roleForStaff(r staffModel.StaffRole) string {
	switch r {
	case staffModel.StaffTeacher:
		return constants.RoleTeacher
	case staffModel.StaffAdmin:
		return constants.RoleAdmin
	default:
		return constants.RoleStaff
	}
}

/* =======================================
   CREATE: akun User + profil staff, satu transaksi
======================================= */

func (ctrl *StaffController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req staffDTO.StaffCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	var staff staffModel.StaffModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		passwordHash, err := authHelper.HashPassword(helper.RandomSecret(24))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
		}

		user := userModel.UserModel{
			UserSchoolID: &schoolID,
			UserName:     strings.TrimSpace(req.Name),
			UserEmail:    strings.ToLower(strings.TrimSpace(req.Email)),
			UserPassword: passwordHash,
			UserPhone:    req.Phone,
		}
		if err := userRepo.CreateUser(tx, &user); err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar di sekolah ini")
			}
			return err
		}

		role := staffModel.StaffRole(req.Role)
		if err := userRepo.GrantRole(tx, user.UserID, roleForStaff(role), &schoolID); err != nil {
			return err
		}

		staff = staffModel.StaffModel{
			StaffSchoolID: schoolID,
			StaffUserID:   user.UserID,
			StaffNumber:   req.Number,
			StaffRole:     role,
			StaffPosition: req.Position,
			StaffHiredAt:  req.HiredAt,
			StaffIsActive: true,
		}
		return tx.Create(&staff).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat staff")
	}
	return helper.JsonCreated(c, "Staff berhasil dibuat", staff)
}

/* =======================================
   READ / UPDATE / DELETE
======================================= */

func (ctrl *StaffController) GetAll(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&staffModel.StaffModel{}).
		Where("staff_school_id = ?", schoolID)
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("staff_role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung staff")
	}

	var staffs []staffModel.StaffModel
	if err := q.Order("staff_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&staffs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil staff")
	}
	return helper.JsonList(c, "OK", staffs, helper.BuildPagination(p.Page, p.PerPage, total))
}

func (ctrl *StaffController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID staff tidak valid")
	}

	var req staffDTO.StaffUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	var staff staffModel.StaffModel
	if err := ctrl.DB.
		Where("staff_id = ? AND staff_school_id = ?", id, schoolID).
		First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Staff tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil staff")
	}

	if req.Number != nil {
		staff.StaffNumber = req.Number
	}
	if req.Role != nil {
		staff.StaffRole = staffModel.StaffRole(*req.Role)
	}
	if req.Position != nil {
		staff.StaffPosition = req.Position
	}
	if req.HiredAt != nil {
		staff.StaffHiredAt = req.HiredAt
	}
	if req.IsActive != nil {
		staff.StaffIsActive = *req.IsActive
		// nonaktif staff → nonaktif juga loginnya
		if err := userRepo.SetUserActive(ctrl.DB, staff.StaffUserID, *req.IsActive); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ubah status akun staff")
		}
	}

	if err := ctrl.DB.Save(&staff).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui staff")
	}
	return helper.JsonUpdated(c, "Staff berhasil diperbarui", staff)
}

func (ctrl *StaffController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID staff tidak valid")
	}

	res := ctrl.DB.
		Where("staff_id = ? AND staff_school_id = ?", id, schoolID).
		Delete(&staffModel.StaffModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus staff")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Staff tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Staff berhasil dihapus", fiber.Map{"staff_id": id})
}
