package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	academicDTO "sekolahku_backend/internals/features/school/academics/dto"
	academicModel "sekolahku_backend/internals/features/school/academics/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AcademicController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAcademicController(db *gorm.DB) *AcademicController {
	return &AcademicController{DB: db, Validate: validator.New()}
}

func isDuplicateErr(err error) bool {
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}

/* =======================================
   ACADEMIC YEARS
======================================= */

func (ctrl *AcademicController) CreateAcademicYear(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req academicDTO.AcademicYearCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	m := academicModel.AcademicYearModel{
		AcademicYearSchoolID:  schoolID,
		AcademicYearName:      strings.TrimSpace(req.Name),
		AcademicYearStartDate: req.StartDate,
		AcademicYearEndDate:   req.EndDate,
		AcademicYearIsActive:  req.IsActive,
	}

	// hanya satu tahun ajaran aktif per sekolah
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if m.AcademicYearIsActive {
			if err := tx.Model(&academicModel.AcademicYearModel{}).
				Where("academic_year_school_id = ?", schoolID).
				Update("academic_year_is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Tahun ajaran sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tahun ajaran")
	}
	return helper.JsonCreated(c, "Tahun ajaran berhasil dibuat", m)
}

func (ctrl *AcademicController) GetAcademicYears(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var years []academicModel.AcademicYearModel
	if err := ctrl.DB.
		Where("academic_year_school_id = ?", schoolID).
		Order("academic_year_start_date DESC").
		Find(&years).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tahun ajaran")
	}
	return helper.JsonOK(c, "OK", years)
}

/* =======================================
   CLASSES & SECTIONS
======================================= */

func (ctrl *AcademicController) CreateClass(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req academicDTO.ClassCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	m := academicModel.ClassModel{
		ClassSchoolID: schoolID,
		ClassName:     strings.TrimSpace(req.Name),
		ClassLevel:    req.Level,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kelas sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat", m)
}

func (ctrl *AcademicController) GetClasses(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var classes []academicModel.ClassModel
	if err := ctrl.DB.
		Where("class_school_id = ?", schoolID).
		Order("class_level ASC, class_name ASC").
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}
	return helper.JsonOK(c, "OK", classes)
}

func (ctrl *AcademicController) CreateClassSection(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req academicDTO.ClassSectionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_section_class_id tidak valid")
	}

	// kelas harus milik tenant yang sama
	var class academicModel.ClassModel
	if err := ctrl.DB.
		Where("class_id = ? AND class_school_id = ?", classID, schoolID).
		First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kelas")
	}

	m := academicModel.ClassSectionModel{
		ClassSectionSchoolID: schoolID,
		ClassSectionClassID:  classID,
		ClassSectionName:     strings.TrimSpace(req.Name),
		ClassSectionCapacity: req.Capacity,
	}
	if req.TeacherID != nil {
		tid, err := uuid.Parse(*req.TeacherID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_section_teacher_id tidak valid")
		}
		m.ClassSectionTeacher = &tid
	}

	if err := ctrl.DB.Create(&m).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama rombel sudah dipakai di kelas ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat rombel")
	}
	return helper.JsonCreated(c, "Rombel berhasil dibuat", m)
}

func (ctrl *AcademicController) GetClassSections(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("class_section_school_id = ?", schoolID)
	if raw := strings.TrimSpace(c.Query("class_id")); raw != "" {
		classID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		q = q.Where("class_section_class_id = ?", classID)
	}

	var sections []academicModel.ClassSectionModel
	if err := q.Order("class_section_name ASC").Find(&sections).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rombel")
	}
	return helper.JsonOK(c, "OK", sections)
}

/* =======================================
   SUBJECTS
======================================= */

func (ctrl *AcademicController) CreateSubject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req academicDTO.SubjectCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	m := academicModel.SubjectModel{
		SubjectSchoolID: schoolID,
		SubjectCode:     strings.ToUpper(strings.TrimSpace(req.Code)),
		SubjectName:     strings.TrimSpace(req.Name),
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode mapel sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat mapel")
	}
	return helper.JsonCreated(c, "Mapel berhasil dibuat", m)
}

func (ctrl *AcademicController) GetSubjects(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var subjects []academicModel.SubjectModel
	if err := ctrl.DB.
		Where("subject_school_id = ?", schoolID).
		Order("subject_code ASC").
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil mapel")
	}
	return helper.JsonOK(c, "OK", subjects)
}
