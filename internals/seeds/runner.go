package seeds

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	schoolModel "sekolahku_backend/internals/features/school/schools/model"
	authHelpers "sekolahku_backend/internals/features/users/auth/helper"
	userModel "sekolahku_backend/internals/features/users/user/model"
	userRepo "sekolahku_backend/internals/features/users/user/repository"
	helper "sekolahku_backend/internals/helpers"
)

// RunAllSeeds mengisi data awal untuk lingkungan dev/demo. Semua langkah
// idempotent: aman dijalankan berulang.
func RunAllSeeds(db *gorm.DB) {
	seedSuperAdmin(db)
	seedDemoSchool(db)
}

// seedSuperAdmin: satu akun platform (tanpa tenant) dengan role super-admin.
// Password diambil dari SEED_SUPERADMIN_PASSWORD kalau di-set; kalau tidak,
// digenerate acak dan dicetak sekali ke log.
func seedSuperAdmin(db *gorm.DB) {
	const email = "superadmin@sekolahku.id"

	_, err := userRepo.FindUserByEmailInSchool(db, email, nil)
	if err == nil {
		log.Println("ℹ️ Super-admin sudah ada, lewati...")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("seed super-admin err: %v", err)
		return
	}

	password := helper.RandomSecret(16)
	hashed, err := authHelpers.HashPassword(password)
	if err != nil {
		log.Printf("seed super-admin hash err: %v", err)
		return
	}

	user := userModel.UserModel{
		UserName:     "Platform Admin",
		UserEmail:    email,
		UserPassword: hashed,
	}
	if err := userRepo.CreateUser(db, &user); err != nil {
		log.Printf("seed super-admin create err: %v", err)
		return
	}
	if err := userRepo.GrantRole(db, user.UserID, constants.RoleSuperAdmin, nil); err != nil {
		log.Printf("seed super-admin role err: %v", err)
		return
	}
	log.Printf("✅ Super-admin dibuat: %s (password awal: %s — segera ganti)", email, password)
}

// seedDemoSchool: satu tenant demo aktif + akun admin sekolahnya.
func seedDemoSchool(db *gorm.DB) {
	const slug = "sekolah-demo"

	var school schoolModel.SchoolModel
	err := db.Where("school_slug = ?", slug).First(&school).Error
	if err == nil {
		log.Println("ℹ️ Sekolah demo sudah ada, lewati...")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("seed school err: %v", err)
		return
	}

	school = schoolModel.SchoolModel{
		SchoolName:             "Sekolah Demo",
		SchoolSlug:             slug,
		SchoolStatus:           schoolModel.SchoolActive,
		SchoolSubscriptionPlan: schoolModel.PlanFree,
	}
	if err := db.Create(&school).Error; err != nil {
		log.Printf("seed school create err: %v", err)
		return
	}

	password := helper.RandomSecret(16)
	hashed, err := authHelpers.HashPassword(password)
	if err != nil {
		log.Printf("seed school admin hash err: %v", err)
		return
	}
	admin := userModel.UserModel{
		UserSchoolID: &school.SchoolID,
		UserName:     "Admin Sekolah Demo",
		UserEmail:    "admin@sekolah-demo.sch.id",
		UserPassword: hashed,
	}
	if err := userRepo.CreateUser(db, &admin); err != nil {
		log.Printf("seed school admin create err: %v", err)
		return
	}
	if err := userRepo.GrantRole(db, admin.UserID, constants.RoleAdmin, &school.SchoolID); err != nil {
		log.Printf("seed school admin role err: %v", err)
		return
	}

	log.Printf("✅ Sekolah demo dibuat (%s) per %s; admin: %s (password awal: %s)",
		slug, time.Now().Format("2006-01-02"), admin.UserEmail, password)
}
