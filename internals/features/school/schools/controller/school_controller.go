package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolDTO "sekolahku_backend/internals/features/school/schools/dto"
	schoolModel "sekolahku_backend/internals/features/school/schools/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type SchoolController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db, Validate: validator.New()}
}

/* =======================================
   CREATE (super-admin / platform onboarding)
======================================= */

func (ctrl *SchoolController) Create(c *fiber.Ctx) error {
	var req schoolDTO.SchoolCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	m := req.ToModel()
	m.SchoolStatus = schoolModel.SchoolPending
	m.SchoolSubscriptionPlan = schoolModel.PlanFree

	// slug unik case-insensitive dari nama
	base := helper.Slugify(m.SchoolName, 100)
	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "schools", "school_slug", base, nil, 100)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	m.SchoolSlug = slug

	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sekolah")
	}
	return helper.JsonCreated(c, "Sekolah berhasil dibuat", schoolDTO.FromModel(m))
}

/* =======================================
   READ
======================================= */

func (ctrl *SchoolController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&schoolModel.SchoolModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var schools []schoolModel.SchoolModel
	if err := ctrl.DB.
		Order("school_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&schools).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sekolah")
	}

	return helper.JsonList(c, "OK", schoolDTO.FromModels(schools), helper.BuildPagination(p.Page, p.PerPage, total))
}

func (ctrl *SchoolController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sekolah tidak valid")
	}

	// non super-admin hanya boleh melihat sekolahnya sendiri
	if !helperAuth.IsSuperAdmin(c) {
		if own := helperAuth.GetSchoolIDFromLocals(c); own != id {
			return helper.JsonError(c, fiber.StatusForbidden, "Akses sekolah lain ditolak")
		}
	}

	var school schoolModel.SchoolModel
	if err := ctrl.DB.Where("school_id = ?", id).First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sekolah")
	}
	return helper.JsonOK(c, "OK", schoolDTO.FromModel(&school))
}

// GetBySlug dipakai halaman publik (landing / theming) tanpa login.
func (ctrl *SchoolController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug wajib diisi")
	}

	var school schoolModel.SchoolModel
	if err := ctrl.DB.Where("LOWER(school_slug) = LOWER(?)", slug).First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sekolah")
	}
	return helper.JsonOK(c, "OK", schoolDTO.FromModel(&school))
}

/* =======================================
   UPDATE
======================================= */

func (ctrl *SchoolController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sekolah tidak valid")
	}
	if !helperAuth.IsSuperAdmin(c) {
		if own := helperAuth.GetSchoolIDFromLocals(c); own != id {
			return helper.JsonError(c, fiber.StatusForbidden, "Akses sekolah lain ditolak")
		}
	}

	var req schoolDTO.SchoolUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}
	// perubahan status tenant hanya oleh super-admin
	if req.SchoolStatus != nil && !helperAuth.IsSuperAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Perubahan status hanya oleh super-admin")
	}

	var school schoolModel.SchoolModel
	if err := ctrl.DB.Where("school_id = ?", id).First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sekolah")
	}

	req.ApplyToModel(&school)
	if err := ctrl.DB.Save(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui sekolah")
	}
	return helper.JsonUpdated(c, "Sekolah berhasil diperbarui", schoolDTO.FromModel(&school))
}

// UpdateSubscription mengubah plan & tanggal berakhir langganan (super-admin /
// callback pembayaran memakai jalur service terpisah).
func (ctrl *SchoolController) UpdateSubscription(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sekolah tidak valid")
	}

	var req schoolDTO.SchoolSubscriptionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	var school schoolModel.SchoolModel
	if err := ctrl.DB.Where("school_id = ?", id).First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sekolah")
	}

	school.SchoolSubscriptionPlan = schoolModel.SubscriptionPlan(strings.ToLower(strings.TrimSpace(req.Plan)))
	school.SchoolSubscriptionEndsAt = req.EndsAt
	if err := ctrl.DB.Save(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui langganan")
	}
	return helper.JsonUpdated(c, "Langganan berhasil diperbarui", schoolDTO.FromModel(&school))
}

/* =======================================
   DELETE (soft)
======================================= */

func (ctrl *SchoolController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sekolah tidak valid")
	}

	res := ctrl.DB.Where("school_id = ?", id).Delete(&schoolModel.SchoolModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sekolah")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Sekolah berhasil dihapus", fiber.Map{"school_id": id})
}
