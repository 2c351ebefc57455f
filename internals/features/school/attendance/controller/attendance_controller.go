package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attendanceDTO "sekolahku_backend/internals/features/school/attendance/dto"
	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validate: validator.New()}
}

// Mark: presensi batch satu tanggal. Upsert pada (siswa, tanggal) supaya
// submit ulang menimpa status lama, bukan error.
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req attendanceDTO.AttendanceMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	var markedBy *uuid.UUID
	if uid, err := helperAuth.GetUserIDFromLocals(c); err == nil {
		markedBy = &uid
	}

	rows := make([]attendanceModel.AttendanceModel, 0, len(req.Items))
	for _, it := range req.Items {
		sid, err := uuid.Parse(it.StudentID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid: "+it.StudentID)
		}
		rows = append(rows, attendanceModel.AttendanceModel{
			AttendanceSchoolID:  schoolID,
			AttendanceStudentID: sid,
			AttendanceDate:      req.Date,
			AttendanceStatus:    attendanceModel.AttendanceStatus(it.Status),
			AttendanceNote:      it.Note,
			AttendanceMarkedBy:  markedBy,
		})
	}

	// semua siswa harus milik tenant ini
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.AttendanceStudentID)
	}
	var cnt int64
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_id IN ? AND student_school_id = ?", ids, schoolID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa siswa")
	}
	if cnt != int64(len(ids)) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ada siswa di luar sekolah Anda")
	}

	err = ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "attendance_student_id"}, {Name: "attendance_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_status", "attendance_note", "attendance_marked_by", "attendance_updated_at",
		}),
	}).Create(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan presensi")
	}
	return helper.JsonCreated(c, "Presensi tersimpan", fiber.Map{"count": len(rows)})
}

// GetByDate: rekap presensi satu tanggal (opsional filter student_id).
func (ctrl *AttendanceController) GetByDate(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	dateStr := strings.TrimSpace(c.Query("date"))
	if dateStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query ?date=YYYY-MM-DD wajib diisi")
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal salah (YYYY-MM-DD)")
	}

	q := ctrl.DB.
		Where("attendance_school_id = ? AND attendance_date = ?", schoolID, date)
	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		sid, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("attendance_student_id = ?", sid)
	}

	var rows []attendanceModel.AttendanceModel
	if err := q.Order("attendance_created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil presensi")
	}
	return helper.JsonOK(c, "OK", rows)
}
