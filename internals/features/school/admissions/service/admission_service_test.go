package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	admissionModel "sekolahku_backend/internals/features/school/admissions/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

func TestSynthesizeStudentEmail(t *testing.T) {
	// kontrak deterministik: nama lower-case + nomor urut aplikasi
	assert.Equal(t, "ann.lee42@school.com", SynthesizeStudentEmail("Ann", "Lee", 42))
	assert.Equal(t, "budi.santoso7@school.com", SynthesizeStudentEmail("Budi", "Santoso", 7))
}

func TestSynthesizeStudentEmail_Normalisasi(t *testing.T) {
	// spasi di dalam/ujung nama tidak boleh bocor ke alamat email
	assert.Equal(t, "ann.lee42@school.com", SynthesizeStudentEmail("  Ann ", " Lee  ", 42))
	assert.Equal(t, "sitinur.azizah3@school.com", SynthesizeStudentEmail("Siti Nur", "Azizah", 3))
}

func TestCarryOverAdmissionNumber(t *testing.T) {
	app := &admissionModel.AdmissionApplicationModel{ApplicationNumber: "PPDB-2026-0042"}
	assert.Equal(t, "PPDB-2026-0042", CarryOverAdmissionNumber(app))
}

func TestAdmissionNumberPolicy_BisaDiganti(t *testing.T) {
	custom := AdmissionNumberPolicy(func(app *admissionModel.AdmissionApplicationModel) string {
		return "NIS-" + app.ApplicationNumber
	})
	app := &admissionModel.AdmissionApplicationModel{ApplicationNumber: "0042"}
	assert.Equal(t, "NIS-0042", custom(app))
}

// Insert wali yang kalah race harus memakai ON CONFLICT DO NOTHING: unique
// violation biasa meng-abort seluruh transaksi Postgres, sehingga re-read
// recovery di dalam transaksi yang sama tidak akan pernah jalan.
func TestInsertIgnoringConflict_PakaiOnConflictDoNothing(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	u := userModel.UserModel{
		UserName:     "Wali Murid",
		UserEmail:    "wali@mail.com",
		UserPassword: "hashed",
	}
	res := insertIgnoringConflict(db, &u)
	require.NoError(t, res.Error)
	assert.Contains(t, res.Statement.SQL.String(), "ON CONFLICT DO NOTHING")
}
