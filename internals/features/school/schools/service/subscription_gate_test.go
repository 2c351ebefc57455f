package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	schoolModel "sekolahku_backend/internals/features/school/schools/model"
)

func activeSchool(plan schoolModel.SubscriptionPlan, endsAt *time.Time) *schoolModel.SchoolModel {
	return &schoolModel.SchoolModel{
		SchoolStatus:             schoolModel.SchoolActive,
		SchoolSubscriptionPlan:   plan,
		SchoolSubscriptionEndsAt: endsAt,
	}
}

func TestEvaluateSchoolAccess_PlanBerbayarKedaluwarsa(t *testing.T) {
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)

	err := EvaluateSchoolAccess(activeSchool(schoolModel.PlanPremium, &yesterday), now)
	require.Error(t, err)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
	assert.Equal(t, MsgSubscriptionExpired, fe.Message)
}

func TestEvaluateSchoolAccess_EndsAtNullBerartiNonExpiring(t *testing.T) {
	now := time.Now()
	assert.NoError(t, EvaluateSchoolAccess(activeSchool(schoolModel.PlanPremium, nil), now))
}

func TestEvaluateSchoolAccess_PlanFreeTidakPernahExpired(t *testing.T) {
	// ends_at basi pada plan free adalah inkonsistensi data; tetap lolos
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	assert.NoError(t, EvaluateSchoolAccess(activeSchool(schoolModel.PlanFree, &yesterday), now))
}

func TestEvaluateSchoolAccess_StatusDiperiksaSebelumExpiry(t *testing.T) {
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)

	school := activeSchool(schoolModel.PlanPremium, &yesterday)
	school.SchoolStatus = schoolModel.SchoolSuspended

	err := EvaluateSchoolAccess(school, now)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, MsgSchoolInactive, fe.Message)
}

func TestEvaluateSchoolAccess_TanpaSekolah(t *testing.T) {
	err := EvaluateSchoolAccess(nil, time.Now())
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, MsgNoSchool, fe.Message)
}

func TestSubscriptionActive(t *testing.T) {
	now := time.Now()
	tomorrow := now.Add(24 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)

	assert.True(t, SubscriptionActive(activeSchool(schoolModel.PlanBasic, &tomorrow), now))
	assert.False(t, SubscriptionActive(activeSchool(schoolModel.PlanBasic, &yesterday), now))
}
