package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	billingModel "sekolahku_backend/internals/features/finance/billings/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type BillingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBillingController(db *gorm.DB) *BillingController {
	return &BillingController{DB: db, Validate: validator.New()}
}

type billCreateRequest struct {
	StudentID string     `json:"bill_student_id" validate:"required,uuid"`
	Title     string     `json:"bill_title" validate:"required,min=2,max=120"`
	AmountIDR int64      `json:"bill_amount_idr" validate:"required,gt=0"`
	DueDate   *time.Time `json:"bill_due_date,omitempty"`
	Note      *string    `json:"bill_note,omitempty"`
}

func (ctrl *BillingController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req billCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "bill_student_id tidak valid")
	}

	var cnt int64
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ? AND student_school_id = ?", studentID, schoolID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa siswa")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	bill := billingModel.StudentBillModel{
		BillSchoolID:  schoolID,
		BillStudentID: studentID,
		BillTitle:     strings.TrimSpace(req.Title),
		BillAmountIDR: req.AmountIDR,
		BillDueDate:   req.DueDate,
		BillStatus:    billingModel.BillUnpaid,
		BillNote:      req.Note,
	}
	if err := ctrl.DB.Create(&bill).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tagihan")
	}
	return helper.JsonCreated(c, "Tagihan berhasil dibuat", bill)
}

func (ctrl *BillingController) GetAll(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&billingModel.StudentBillModel{}).
		Where("bill_school_id = ?", schoolID)
	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		sid, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("bill_student_id = ?", sid)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("bill_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung tagihan")
	}

	var bills []billingModel.StudentBillModel
	if err := q.Order("bill_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&bills).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}
	return helper.JsonList(c, "OK", bills, helper.BuildPagination(p.Page, p.PerPage, total))
}

// MarkPaid: pelunasan manual (transfer/kasir). Idempotent untuk yang sudah paid.
func (ctrl *BillingController) MarkPaid(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tagihan tidak valid")
	}

	var bill billingModel.StudentBillModel
	if err := ctrl.DB.
		Where("bill_id = ? AND bill_school_id = ?", id, schoolID).
		First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}
	if bill.BillStatus == billingModel.BillCanceled {
		return helper.JsonError(c, fiber.StatusConflict, "Tagihan sudah dibatalkan")
	}
	if bill.BillStatus == billingModel.BillPaid {
		return helper.JsonOK(c, "Tagihan sudah lunas", bill)
	}

	now := time.Now()
	bill.BillStatus = billingModel.BillPaid
	bill.BillPaidAt = &now
	if err := ctrl.DB.Save(&bill).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui tagihan")
	}
	return helper.JsonUpdated(c, "Tagihan ditandai lunas", bill)
}

func (ctrl *BillingController) Cancel(c *fiber.Ctx) error {
	schoolID, err := helperAuth.RequireSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tagihan tidak valid")
	}

	res := ctrl.DB.Model(&billingModel.StudentBillModel{}).
		Where("bill_id = ? AND bill_school_id = ? AND bill_status = ?", id, schoolID, billingModel.BillUnpaid).
		Update("bill_status", billingModel.BillCanceled)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membatalkan tagihan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Tagihan tidak ditemukan atau sudah diproses")
	}
	return helper.JsonUpdated(c, "Tagihan dibatalkan", fiber.Map{"bill_id": id})
}
