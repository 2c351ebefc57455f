package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "sd-negeri-1-jakarta", Slugify("SD Negeri 1 Jakarta", 100))
	assert.Equal(t, "ecole-francaise", Slugify("École Française", 100))
	assert.Equal(t, "a-b-c", Slugify("a---b___c", 100))
}

func TestSlugify_Fallback(t *testing.T) {
	assert.Equal(t, "item", Slugify("", 100))
	assert.Equal(t, "item", Slugify("!!!", 100))
}

func TestSlugify_MaxLen(t *testing.T) {
	got := Slugify("sekolah menengah pertama islam terpadu nurul hikmah", 20)
	assert.LessOrEqual(t, len(got), 20)
	assert.NotEqual(t, "-", got[len(got)-1:])
}

func TestRandomSecret(t *testing.T) {
	a := RandomSecret(24)
	b := RandomSecret(24)

	assert.Len(t, a, 24)
	assert.Len(t, b, 24)
	assert.NotEqual(t, a, b)

	// default saat n tidak masuk akal
	assert.Len(t, RandomSecret(0), 32)
}
