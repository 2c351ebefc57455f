package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapGuardianRelation(t *testing.T) {
	assert.Equal(t, RelationFather, MapGuardianRelation("Father"))
	assert.Equal(t, RelationMother, MapGuardianRelation("Mother"))
	assert.Equal(t, RelationGuardian, MapGuardianRelation("Guardian"))
}

func TestMapGuardianRelation_SelainTigaBakuJadiOther(t *testing.T) {
	// exact match case-sensitive: varian huruf kecil pun jatuh ke other
	assert.Equal(t, RelationOther, MapGuardianRelation("father"))
	assert.Equal(t, RelationOther, MapGuardianRelation("MOTHER"))
	assert.Equal(t, RelationOther, MapGuardianRelation("Paman"))
	assert.Equal(t, RelationOther, MapGuardianRelation(""))
	assert.Equal(t, RelationOther, MapGuardianRelation(" Father "))
}

func TestGuardianValidate(t *testing.T) {
	g := GuardianModel{GuardianRelation: RelationMother}
	assert.NoError(t, g.validate())

	g.GuardianRelation = "stepmother"
	assert.Error(t, g.validate())
}
