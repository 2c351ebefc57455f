package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	userDTO "sekolahku_backend/internals/features/users/user/dto"
	userModel "sekolahku_backend/internals/features/users/user/model"
	userRepo "sekolahku_backend/internals/features/users/user/repository"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

/* =======================================
   Profil sendiri
======================================= */

func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	user, err := userRepo.FindUserByID(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	roles, err := userRepo.UserRoleNames(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil roles")
	}
	return helper.JsonOK(c, "OK", userDTO.FromModel(user, roles))
}

func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req userDTO.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	user, err := userRepo.FindUserByID(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if req.UserName != nil {
		user.UserName = strings.TrimSpace(*req.UserName)
	}
	if req.UserPhone != nil {
		user.UserPhone = req.UserPhone
	}
	if req.UserAvatarURL != nil {
		user.UserAvatarURL = req.UserAvatarURL
	}
	if err := ctrl.DB.Save(user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui profil")
	}
	return helper.JsonUpdated(c, "Profil diperbarui", userDTO.FromModel(user, nil))
}

/* =======================================
   Manajemen user tenant (admin sekolah)
======================================= */

func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_school_id = ?", schoolID)
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(user_email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []userModel.UserModel
	if err := q.Order("user_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	out := make([]userDTO.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *userDTO.FromModel(&users[i], nil))
	}
	return helper.JsonList(c, "OK", out, helper.BuildPagination(p.Page, p.PerPage, total))
}

// tenantUser memuat user milik tenant request (404 kalau lintas tenant).
func (ctrl *UserController) tenantUser(c *fiber.Ctx) (*userModel.UserModel, error) {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID user tidak valid")
	}

	var user userModel.UserModel
	if err := ctrl.DB.
		Where("user_id = ? AND user_school_id = ?", id, schoolID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return &user, nil
}

func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	user, err := ctrl.tenantUser(c)
	if err != nil {
		return err
	}
	roles, err := userRepo.UserRoleNames(ctrl.DB, user.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil roles")
	}
	return helper.JsonOK(c, "OK", userDTO.FromModel(user, roles))
}

func (ctrl *UserController) SetActive(c *fiber.Ctx) error {
	user, err := ctrl.tenantUser(c)
	if err != nil {
		return err
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := userRepo.SetUserActive(ctrl.DB, user.UserID, req.IsActive); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status user")
	}
	return helper.JsonUpdated(c, "Status user diperbarui", fiber.Map{
		"user_id":   user.UserID,
		"is_active": req.IsActive,
	})
}

// GrantRole menambah role user dalam scope tenant. Role super-admin tidak
// pernah bisa diberikan lewat endpoint ini.
func (ctrl *UserController) GrantRole(c *fiber.Ctx) error {
	user, err := ctrl.tenantUser(c)
	if err != nil {
		return err
	}

	var req userDTO.RoleGrantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	roleName := strings.ToLower(strings.TrimSpace(req.RoleName))
	if !constants.IsValidRole(roleName) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Role tidak dikenal")
	}
	if roleName == constants.RoleSuperAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Role super-admin tidak bisa diberikan dari sini")
	}

	if err := userRepo.GrantRole(ctrl.DB, user.UserID, roleName, user.UserSchoolID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memberikan role")
	}
	return helper.JsonUpdated(c, "Role diberikan", fiber.Map{
		"user_id": user.UserID,
		"role":    roleName,
	})
}
