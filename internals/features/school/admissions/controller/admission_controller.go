package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	admissionDTO "sekolahku_backend/internals/features/school/admissions/dto"
	admissionModel "sekolahku_backend/internals/features/school/admissions/model"
	admissionService "sekolahku_backend/internals/features/school/admissions/service"
	studentDTO "sekolahku_backend/internals/features/school/students/dto"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AdmissionController struct {
	DB       *gorm.DB
	Validate *validator.Validate

	// kebijakan nomor induk; default: nomor pendaftaran dibawa verbatim
	NumberPolicy admissionService.AdmissionNumberPolicy
}

func NewAdmissionController(db *gorm.DB) *AdmissionController {
	return &AdmissionController{
		DB:           db,
		Validate:     validator.New(),
		NumberPolicy: admissionService.CarryOverAdmissionNumber,
	}
}

/* =======================================
   CREATE (pendaftaran)
======================================= */

func (ctrl *AdmissionController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req admissionDTO.AdmissionApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	m, err := req.ToModel(schoolID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Referensi kelas/tahun ajaran tidak valid")
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor pendaftaran sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pendaftaran")
	}
	return helper.JsonCreated(c, "Pendaftaran berhasil disimpan", m)
}

/* =======================================
   READ
======================================= */

func (ctrl *AdmissionController) GetAll(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&admissionModel.AdmissionApplicationModel{}).
		Where("application_school_id = ?", schoolID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("application_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pendaftaran")
	}

	var apps []admissionModel.AdmissionApplicationModel
	if err := q.Order("application_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&apps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}
	return helper.JsonList(c, "OK", apps, helper.BuildPagination(p.Page, p.PerPage, total))
}

func (ctrl *AdmissionController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID aplikasi tidak valid")
	}

	var app admissionModel.AdmissionApplicationModel
	if err := ctrl.DB.
		Where("application_id = ? AND application_school_id = ?", id, schoolID).
		First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aplikasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil aplikasi")
	}
	return helper.JsonOK(c, "OK", app)
}

/* =======================================
   APPROVE → konversi 6 langkah
======================================= */

func (ctrl *AdmissionController) Approve(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID aplikasi tidak valid")
	}

	student, err := admissionService.ConvertApplication(ctrl.DB, id, schoolID, ctrl.NumberPolicy)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Konversi pendaftaran gagal")
	}
	return helper.JsonCreated(c, "Pendaftaran disetujui, siswa berhasil dibuat", studentDTO.FromModel(student))
}

/* =======================================
   REJECT
======================================= */

func (ctrl *AdmissionController) Reject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID aplikasi tidak valid")
	}

	var app admissionModel.AdmissionApplicationModel
	if err := ctrl.DB.
		Where("application_id = ? AND application_school_id = ?", id, schoolID).
		First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aplikasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil aplikasi")
	}
	if app.ApplicationStatus == admissionModel.ApplicationApproved {
		return helper.JsonError(c, fiber.StatusConflict, "Aplikasi sudah disetujui, tidak bisa ditolak")
	}

	if err := ctrl.DB.Model(&app).
		Update("application_status", admissionModel.ApplicationRejected).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menolak aplikasi")
	}
	return helper.JsonUpdated(c, "Aplikasi ditolak", app)
}
