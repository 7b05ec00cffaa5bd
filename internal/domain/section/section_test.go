package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults_OrderIsContiguous(t *testing.T) {
	defaults := Defaults()
	assert.Len(t, defaults, 7)
	for i, s := range defaults {
		assert.Equal(t, i+1, s.Order)
		assert.True(t, s.Enabled)
	}
}

func TestNormalize_RemovesGapsAndDuplicates(t *testing.T) {
	in := []Config{
		{ID: "c", Order: 9},
		{ID: "a", Order: 2},
		{ID: "b", Order: 2},
	}
	out := Normalize(in)

	assert.Equal(t, []string{"a", "b", "c"}, []string{out[0].ID, out[1].ID, out[2].ID})
	for i, s := range out {
		assert.Equal(t, i+1, s.Order)
	}
	// Input is not mutated.
	assert.Equal(t, 9, in[0].Order)
}

func TestSorted_DoesNotMutateInput(t *testing.T) {
	in := []Config{{ID: "b", Order: 2}, {ID: "a", Order: 1}}
	out := Sorted(in)

	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", in[0].ID)
}

func TestIsCustom(t *testing.T) {
	assert.True(t, Config{ID: "custom_123"}.IsCustom())
	assert.False(t, Config{ID: "perfil"}.IsCustom())
}
