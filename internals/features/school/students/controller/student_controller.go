package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	studentDTO "sekolahku_backend/internals/features/school/students/dto"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	authHelper "sekolahku_backend/internals/features/users/auth/helper"
	userModel "sekolahku_backend/internals/features/users/user/model"
	userRepo "sekolahku_backend/internals/features/users/user/repository"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

/* =======================================
   CREATE (jalur langsung, di luar PPDB)
======================================= */

// Create membuat siswa tanpa lewat aplikasi PPDB: akun User + row Student
// dalam satu transaksi. Email wajib di jalur ini (tidak ada application id
// untuk sintesis email).
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req studentDTO.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}
	if req.Email == nil || strings.TrimSpace(*req.Email) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_email wajib diisi untuk pembuatan langsung")
	}

	var student studentModel.StudentModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		passwordHash, err := authHelper.HashPassword(helper.RandomSecret(24))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
		}

		user := userModel.UserModel{
			UserSchoolID: &schoolID,
			UserName:     strings.TrimSpace(req.FirstName + " " + req.LastName),
			UserEmail:    strings.ToLower(strings.TrimSpace(*req.Email)),
			UserPassword: passwordHash,
		}
		if err := userRepo.CreateUser(tx, &user); err != nil {
			if isDuplicateErr(err) {
				return fiber.NewError(fiber.StatusConflict, "Email siswa sudah terdaftar di sekolah ini")
			}
			return err
		}
		if err := userRepo.GrantRole(tx, user.UserID, constants.RoleStudent, &schoolID); err != nil {
			return err
		}

		student = studentModel.StudentModel{
			StudentSchoolID:        schoolID,
			StudentUserID:          user.UserID,
			StudentAdmissionNumber: strings.TrimSpace(req.AdmissionNumber),
			StudentAdmissionDate:   time.Now(),
			StudentFirstName:       strings.TrimSpace(req.FirstName),
			StudentLastName:        strings.TrimSpace(req.LastName),
			StudentGender:          req.Gender,
			StudentBirthDate:       req.BirthDate,
			StudentBirthPlace:      req.BirthPlace,
			StudentAddress:         req.Address,
			StudentPhone:           req.Phone,
			StudentStatus:          studentModel.StudentActive,
		}
		if req.ClassID != nil {
			id, err := uuid.Parse(*req.ClassID)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "student_class_id tidak valid")
			}
			student.StudentClassID = &id
		}
		if req.AcademicYearID != nil {
			id, err := uuid.Parse(*req.AcademicYearID)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "student_academic_year_id tidak valid")
			}
			student.StudentAcademicYearID = &id
		}

		if err := tx.Create(&student).Error; err != nil {
			if isDuplicateErr(err) {
				return fiber.NewError(fiber.StatusConflict, "Nomor induk sudah dipakai")
			}
			return err
		}
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat siswa")
	}

	return helper.JsonCreated(c, "Siswa berhasil dibuat", studentDTO.FromModel(&student))
}

/* =======================================
   READ
======================================= */

func (ctrl *StudentController) GetAll(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_school_id = ?", schoolID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("student_status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(student_first_name) LIKE ? OR LOWER(student_last_name) LIKE ? OR LOWER(student_admission_number) LIKE ?",
			like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}

	var students []studentModel.StudentModel
	if err := q.Order("student_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	return helper.JsonList(c, "OK", studentDTO.FromModels(students), helper.BuildPagination(p.Page, p.PerPage, total))
}

func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	resp := studentDTO.FromModel(&student)
	links, err := ctrl.loadGuardianLinks(student.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data wali")
	}
	resp.Guardians = links

	return helper.JsonOK(c, "OK", resp)
}

func (ctrl *StudentController) loadGuardianLinks(studentID uuid.UUID) ([]studentDTO.GuardianLinkResponse, error) {
	type row struct {
		GuardianID         uuid.UUID
		GuardianUserID     uuid.UUID
		GuardianRelation   string
		GuardianOccupation *string
		Relationship       string
		IsEmergencyContact bool
	}
	var rows []row
	err := ctrl.DB.Table("student_guardians sg").
		Select(`g.guardian_id, g.guardian_user_id, g.guardian_relation, g.guardian_occupation,
			sg.student_guardian_relationship AS relationship,
			sg.student_guardian_is_emergency_contact AS is_emergency_contact`).
		Joins("JOIN guardians g ON g.guardian_id = sg.student_guardian_guardian_id").
		Where("sg.student_guardian_student_id = ? AND sg.student_guardian_deleted_at IS NULL", studentID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]studentDTO.GuardianLinkResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, studentDTO.GuardianLinkResponse{
			GuardianID:         r.GuardianID,
			GuardianUserID:     r.GuardianUserID,
			Relation:           r.GuardianRelation,
			Occupation:         r.GuardianOccupation,
			Relationship:       r.Relationship,
			IsEmergencyContact: r.IsEmergencyContact,
		})
	}
	return out, nil
}

/* =======================================
   UPDATE
======================================= */

func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var req studentDTO.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	if req.Status != nil {
		student.StudentStatus = studentModel.StudentStatus(strings.TrimSpace(*req.Status))
	}
	if req.Gender != nil {
		student.StudentGender = req.Gender
	}
	if req.BirthDate != nil {
		student.StudentBirthDate = req.BirthDate
	}
	if req.BirthPlace != nil {
		student.StudentBirthPlace = req.BirthPlace
	}
	if req.Address != nil {
		student.StudentAddress = req.Address
	}
	if req.Phone != nil {
		student.StudentPhone = req.Phone
	}
	if req.ClassID != nil {
		cid, err := uuid.Parse(*req.ClassID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_class_id tidak valid")
		}
		student.StudentClassID = &cid
	}
	if req.AcademicYearID != nil {
		ayid, err := uuid.Parse(*req.AcademicYearID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_academic_year_id tidak valid")
		}
		student.StudentAcademicYearID = &ayid
	}

	if err := ctrl.DB.Save(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui siswa")
	}
	return helper.JsonUpdated(c, "Siswa berhasil diperbarui", studentDTO.FromModel(&student))
}

/* =======================================
   GUARDIAN LINK
======================================= */

// AttachGuardian menautkan wali yang sudah ada ke siswa (idempotent pada
// pasangan yang sama lewat unique index).
func (ctrl *StudentController) AttachGuardian(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var req studentDTO.GuardianAttachRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}
	guardianID, err := uuid.Parse(req.GuardianID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "guardian_id tidak valid")
	}

	// keduanya harus milik tenant yang sama
	var student studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_id = ? AND student_school_id = ?", studentID, schoolID).
		First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	var guardian studentModel.GuardianModel
	if err := ctrl.DB.
		Where("guardian_id = ? AND guardian_school_id = ?", guardianID, schoolID).
		First(&guardian).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Wali tidak ditemukan")
	}

	link := studentModel.StudentGuardianModel{
		StudentGuardianStudentID:          studentID,
		StudentGuardianGuardianID:         guardianID,
		StudentGuardianRelationship:       strings.TrimSpace(req.Relationship),
		StudentGuardianIsEmergencyContact: req.IsEmergencyContact,
	}
	if err := ctrl.DB.Create(&link).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Wali sudah tertaut ke siswa ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menautkan wali")
	}
	return helper.JsonCreated(c, "Wali berhasil ditautkan", link)
}

/* =======================================
   DELETE (soft)
======================================= */

func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	res := ctrl.DB.
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		Delete(&studentModel.StudentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus siswa")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Siswa berhasil dihapus", fiber.Map{"student_id": id})
}

func isDuplicateErr(err error) bool {
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}
