// file: internals/features/school/admissions/service/admission_service.go
//
// Konversi aplikasi PPDB → siswa hidup: akun User siswa, akun+profil wali
// (cari-atau-buat), row Student, tautan siswa↔wali, lalu aplikasi ditandai
// approved. Enam langkah itu berjalan dalam SATU transaksi; gagal di langkah
// manapun membatalkan semuanya.
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/constants"
	admissionModel "sekolahku_backend/internals/features/school/admissions/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	authHelper "sekolahku_backend/internals/features/users/auth/helper"
	userModel "sekolahku_backend/internals/features/users/user/model"
	userRepo "sekolahku_backend/internals/features/users/user/repository"
	helper "sekolahku_backend/internals/helpers"
)

/* =======================================
   Email sintesis & kebijakan nomor induk
======================================= */

// SynthesizeStudentEmail membentuk email akun siswa secara deterministik dari
// nama + nomor urut aplikasi, untuk pendaftar tanpa email sendiri.
// "Ann" + "Lee" + 42 → ann.lee42@school.com
func SynthesizeStudentEmail(firstName, lastName string, seq int64) string {
	clean := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		return strings.ReplaceAll(s, " ", "")
	}
	return fmt.Sprintf("%s.%s%d@school.com", clean(firstName), clean(lastName), seq)
}

// AdmissionNumberPolicy menentukan nomor induk siswa dari aplikasinya.
// Default: nomor pendaftaran dibawa apa adanya. Sekolah yang ingin skema
// penomoran sendiri tinggal mengganti policy ini.
type AdmissionNumberPolicy func(app *admissionModel.AdmissionApplicationModel) string

func CarryOverAdmissionNumber(app *admissionModel.AdmissionApplicationModel) string {
	return app.ApplicationNumber
}

/* =======================================
   Konversi
======================================= */

var (
	ErrAlreadyConverted    = fiber.NewError(fiber.StatusConflict, "Aplikasi sudah dikonversi menjadi siswa")
	ErrApplicationRejected = fiber.NewError(fiber.StatusConflict, "Aplikasi sudah ditolak")
)

// ConvertApplication menjalankan enam langkah konversi dalam satu transaksi.
// Guard anti-dobel: aplikasi berstatus approved, atau yang sudah dirujuk
// sebuah row Student, ditolak sebelum transaksi dimulai (dan unique index
// student_application_id menutup race dua approve paralel).
func ConvertApplication(db *gorm.DB, applicationID uuid.UUID, schoolID uuid.UUID, policy AdmissionNumberPolicy) (*studentModel.StudentModel, error) {
	if policy == nil {
		policy = CarryOverAdmissionNumber
	}

	var app admissionModel.AdmissionApplicationModel
	if err := db.
		Where("application_id = ? AND application_school_id = ?", applicationID, schoolID).
		First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Aplikasi tidak ditemukan")
		}
		return nil, err
	}

	if app.ApplicationStatus == admissionModel.ApplicationApproved {
		return nil, ErrAlreadyConverted
	}
	if app.ApplicationStatus == admissionModel.ApplicationRejected {
		return nil, ErrApplicationRejected
	}
	var converted int64
	if err := db.Model(&studentModel.StudentModel{}).
		Where("student_application_id = ?", app.ApplicationID).
		Count(&converted).Error; err != nil {
		return nil, err
	}
	if converted > 0 {
		return nil, ErrAlreadyConverted
	}

	var student studentModel.StudentModel
	err := db.Transaction(func(tx *gorm.DB) error {
		// 1) akun User siswa
		studentUser, err := createStudentUser(tx, &app)
		if err != nil {
			return err
		}

		// 2) akun User wali (cari-atau-buat by email dalam tenant) + role parent
		guardianUser, err := resolveGuardianUser(tx, &app)
		if err != nil {
			return err
		}

		// 3) profil Guardian (cari-atau-buat by user+tenant)
		guardian, err := resolveGuardianProfile(tx, &app, guardianUser.UserID)
		if err != nil {
			return err
		}

		// 4) row Student — field demografis disalin verbatim dari aplikasi
		student = studentModel.StudentModel{
			StudentSchoolID:        app.ApplicationSchoolID,
			StudentUserID:          studentUser.UserID,
			StudentApplicationID:   &app.ApplicationID,
			StudentAdmissionNumber: policy(&app),
			StudentAdmissionDate:   time.Now(),
			StudentFirstName:       app.ApplicantFirstName,
			StudentLastName:        app.ApplicantLastName,
			StudentGender:          app.ApplicantGender,
			StudentBirthDate:       app.ApplicantBirthDate,
			StudentBirthPlace:      app.ApplicantBirthPlace,
			StudentAddress:         app.ApplicantAddress,
			StudentPhone:           app.ApplicantPhone,
			StudentClassID:         app.RequestedClassID,
			StudentAcademicYearID:  app.RequestedAcademicYearID,
			StudentStatus:          studentModel.StudentActive,
		}
		if err := tx.Create(&student).Error; err != nil {
			return err
		}

		// 5) tautan siswa↔wali; selalu emergency contact (boleh lebih dari satu)
		if err := tx.Create(&studentModel.StudentGuardianModel{
			StudentGuardianStudentID:          student.StudentID,
			StudentGuardianGuardianID:         guardian.GuardianID,
			StudentGuardianRelationship:       app.GuardianRelation,
			StudentGuardianIsEmergencyContact: true,
		}).Error; err != nil {
			return err
		}

		// 6) tandai approved (idempotent kalau sudah approved)
		return tx.Model(&admissionModel.AdmissionApplicationModel{}).
			Where("application_id = ?", app.ApplicationID).
			Update("application_status", admissionModel.ApplicationApproved).Error
	})
	if err != nil {
		return nil, err
	}
	return &student, nil
}

/* =======================================
   Langkah 1: akun siswa
======================================= */

func createStudentUser(tx *gorm.DB, app *admissionModel.AdmissionApplicationModel) (*userModel.UserModel, error) {
	email := ""
	if app.ApplicantEmail != nil {
		email = strings.TrimSpace(*app.ApplicantEmail)
	}
	if email == "" {
		email = SynthesizeStudentEmail(app.ApplicantFirstName, app.ApplicantLastName, app.ApplicationSeq)
	}

	// password acak — tidak pernah dikembalikan ke caller; kredensial
	// disampaikan ke siswa lewat kanal lain
	passwordHash, err := authHelper.HashPassword(helper.RandomSecret(24))
	if err != nil {
		return nil, err
	}

	user := userModel.UserModel{
		UserSchoolID: &app.ApplicationSchoolID,
		UserName:     strings.TrimSpace(app.ApplicantFirstName + " " + app.ApplicantLastName),
		UserEmail:    strings.ToLower(email),
		UserPassword: passwordHash,
		UserPhone:    app.ApplicantPhone,
	}
	if err := userRepo.CreateUser(tx, &user); err != nil {
		return nil, err
	}
	if err := userRepo.GrantRole(tx, user.UserID, constants.RoleStudent, &app.ApplicationSchoolID); err != nil {
		return nil, err
	}
	return &user, nil
}

/* =======================================
   Langkah 2: akun wali (get-or-insert)
======================================= */

// insertIgnoringConflict: INSERT ... ON CONFLICT DO NOTHING. Unique violation
// biasa akan meng-abort seluruh transaksi Postgres, jadi kalah race harus
// dideteksi lewat RowsAffected == 0, bukan lewat error.
func insertIgnoringConflict(tx *gorm.DB, value any) *gorm.DB {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(value)
}

// resolveGuardianUser: lookup by (tenant, email). Kalau belum ada, insert;
// insert yang kalah race unique (tenant,email) di-resolve dengan re-read.
func resolveGuardianUser(tx *gorm.DB, app *admissionModel.AdmissionApplicationModel) (*userModel.UserModel, error) {
	schoolID := app.ApplicationSchoolID
	email := strings.ToLower(strings.TrimSpace(app.GuardianEmail))

	user, err := userRepo.FindUserByEmailInSchool(tx, email, &schoolID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if user == nil {
		passwordHash, err := authHelper.HashPassword(helper.RandomSecret(24))
		if err != nil {
			return nil, err
		}
		created := userModel.UserModel{
			UserSchoolID: &schoolID,
			UserName:     strings.TrimSpace(app.GuardianName),
			UserEmail:    email,
			UserPassword: passwordHash,
			UserPhone:    app.GuardianPhone,
		}
		res := insertIgnoringConflict(tx, &created)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			// kalah race: baris dengan email ini baru saja dibuat → pakai itu
			existing, rerr := userRepo.FindUserByEmailInSchool(tx, email, &schoolID)
			if rerr != nil {
				return nil, rerr
			}
			user = existing
		} else {
			user = &created
		}
	}

	if err := userRepo.GrantRole(tx, user.UserID, constants.RoleParent, &schoolID); err != nil {
		return nil, err
	}
	return user, nil
}

/* =======================================
   Langkah 3: profil wali (get-or-insert)
======================================= */

func resolveGuardianProfile(tx *gorm.DB, app *admissionModel.AdmissionApplicationModel, guardianUserID uuid.UUID) (*studentModel.GuardianModel, error) {
	var guardian studentModel.GuardianModel
	err := tx.
		Where("guardian_user_id = ? AND guardian_school_id = ?", guardianUserID, app.ApplicationSchoolID).
		First(&guardian).Error
	if err == nil {
		return &guardian, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	guardian = studentModel.GuardianModel{
		GuardianSchoolID:   app.ApplicationSchoolID,
		GuardianUserID:     guardianUserID,
		GuardianOccupation: app.GuardianOccupation,
		GuardianRelation:   studentModel.MapGuardianRelation(app.GuardianRelation),
	}
	res := insertIgnoringConflict(tx, &guardian)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// kalah race pada unique (school,user) → re-read
		var existing studentModel.GuardianModel
		if rerr := tx.
			Where("guardian_user_id = ? AND guardian_school_id = ?", guardianUserID, app.ApplicationSchoolID).
			First(&existing).Error; rerr != nil {
			return nil, rerr
		}
		return &existing, nil
	}
	return &guardian, nil
}
