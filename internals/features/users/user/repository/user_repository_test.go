// file: internals/features/users/user/repository/user_repository_test.go
package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

// schoolID nil harus berarti "scope platform" (user_school_id IS NULL),
// bukan pencarian lintas sekolah. Tanpa klausa ini, pre-check registrasi
// platform tidak pernah menemukan duplikat.
func TestEmailScope_NilSchoolBerartiScopePlatform(t *testing.T) {
	db := dryRunDB(t)

	stmt := db.Scopes(emailScope(" Budi@Mail.com ", nil)).
		Find(&[]userModel.UserModel{}).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "user_school_id IS NULL")
	assert.Contains(t, sql, "LOWER(user_email) = ?")
	assert.Contains(t, stmt.Vars, "budi@mail.com")
}

func TestEmailScope_DenganSchoolID(t *testing.T) {
	db := dryRunDB(t)
	schoolID := uuid.New()

	stmt := db.Scopes(emailScope("budi@mail.com", &schoolID)).
		Find(&[]userModel.UserModel{}).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "user_school_id = ?")
	assert.NotContains(t, sql, "user_school_id IS NULL")
	assert.Contains(t, stmt.Vars, schoolID)
}
