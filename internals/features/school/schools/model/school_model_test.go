package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEnums(t *testing.T) {
	m := SchoolModel{
		SchoolStatus:           SchoolActive,
		SchoolSubscriptionPlan: PlanFree,
	}
	assert.NoError(t, m.validateEnums())

	m.SchoolStatus = "archived"
	assert.Error(t, m.validateEnums())

	m.SchoolStatus = SchoolPending
	m.SchoolSubscriptionPlan = "enterprise"
	assert.Error(t, m.validateEnums())
}
