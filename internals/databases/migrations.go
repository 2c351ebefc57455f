package database

import (
	"log"

	"sekolahku_backend/internals/constants"
	billingModel "sekolahku_backend/internals/features/finance/billings/model"
	subscriptionModel "sekolahku_backend/internals/features/finance/subscriptions/model"
	academicModel "sekolahku_backend/internals/features/school/academics/model"
	admissionModel "sekolahku_backend/internals/features/school/admissions/model"
	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	schoolModel "sekolahku_backend/internals/features/school/schools/model"
	staffModel "sekolahku_backend/internals/features/school/staff/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	userRepo "sekolahku_backend/internals/features/users/user/repository"
)

// AutoMigrate menjalankan migrasi skema seluruh model. Urutan mengikuti
// dependensi FK logis (tenant dulu, baru entitas di bawahnya).
func AutoMigrate() {
	err := DB.AutoMigrate(
		&schoolModel.SchoolModel{},

		&userModel.UserModel{},
		&userModel.RoleModel{},
		&userModel.PermissionModel{},
		&userModel.RolePermissionModel{},
		&userModel.UserRoleModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},

		&academicModel.AcademicYearModel{},
		&academicModel.ClassModel{},
		&academicModel.ClassSectionModel{},
		&academicModel.SubjectModel{},

		&admissionModel.AdmissionApplicationModel{},
		&studentModel.StudentModel{},
		&studentModel.GuardianModel{},
		&studentModel.StudentGuardianModel{},

		&attendanceModel.AttendanceModel{},
		&staffModel.StaffModel{},

		&subscriptionModel.SubscriptionPlanModel{},
		&subscriptionModel.SubscriptionPaymentModel{},
		&billingModel.StudentBillModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	for _, ddl := range extraIndexes {
		if err := DB.Exec(ddl).Error; err != nil {
			log.Fatalf("❌ Index tambahan gagal: %v", err)
		}
	}
	log.Println("✅ Migrasi skema selesai.")
}

// extraIndexes: DDL yang tidak bisa diekspresikan lewat tag GORM.
// uq_users_platform_email — unik email untuk user scope platform
// (user_school_id NULL). Composite unique biasa menganggap NULL distinct,
// jadi tanpa index parsial ini registrasi ganda di scope platform lolos.
var extraIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_platform_email
	 ON users (LOWER(user_email))
	 WHERE user_school_id IS NULL AND user_deleted_at IS NULL`,
}

// SeedDefaults mengisi data dasar yang idempotent: pemetaan role→permission
// dan katalog plan berbayar.
func SeedDefaults() {
	grants := map[string][]string{
		constants.RoleAdmin: {
			constants.PermSchoolManage,
			constants.PermStudentView, constants.PermStudentManage,
			constants.PermStaffManage,
			constants.PermAcademicView, constants.PermAcademicManage,
			constants.PermAdmissionView, constants.PermAdmissionManage, constants.PermAdmissionApprove,
			constants.PermAttendanceView, constants.PermAttendanceManage,
			constants.PermFeeView, constants.PermFeeManage,
			constants.PermSubscriptionManage,
		},
		constants.RoleTeacher: {
			constants.PermStudentView,
			constants.PermAcademicView,
			constants.PermAttendanceView, constants.PermAttendanceManage,
		},
		constants.RoleStaff: {
			constants.PermStudentView,
			constants.PermAdmissionView, constants.PermAdmissionManage,
			constants.PermFeeView, constants.PermFeeManage,
		},
		constants.RoleParent:  {constants.PermFeeView},
		constants.RoleStudent: {constants.PermAcademicView},
	}
	for role, perms := range grants {
		for _, perm := range perms {
			if err := userRepo.GrantPermissionToRole(DB, role, perm); err != nil {
				log.Printf("seed role-permission %s→%s err: %v", role, perm, err)
			}
		}
	}

	plans := []subscriptionModel.SubscriptionPlanModel{
		{PlanCode: schoolModel.PlanBasic, PlanName: "Basic", PlanPriceIDR: 150_000, PlanDurationDays: 30},
		{PlanCode: schoolModel.PlanStandard, PlanName: "Standard", PlanPriceIDR: 350_000, PlanDurationDays: 30},
		{PlanCode: schoolModel.PlanPremium, PlanName: "Premium", PlanPriceIDR: 750_000, PlanDurationDays: 30},
	}
	for _, p := range plans {
		var cnt int64
		if err := DB.Model(&subscriptionModel.SubscriptionPlanModel{}).
			Where("plan_code = ?", p.PlanCode).
			Count(&cnt).Error; err != nil {
			log.Printf("seed plan %s err: %v", p.PlanCode, err)
			continue
		}
		if cnt > 0 {
			continue
		}
		p.PlanIsActive = true
		if err := DB.Create(&p).Error; err != nil {
			log.Printf("seed plan %s err: %v", p.PlanCode, err)
		}
	}
	log.Println("✅ Seed data dasar selesai.")
}
