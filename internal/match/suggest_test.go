package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest(t *testing.T) {
	t.Parallel()

	registered := []string{"add_int64", "upper", "clamp_float64"}

	assert.Equal(t, []string{"add_int64"}, Closest("ad_int64", registered, 3))
	assert.Equal(t, []string{"upper"}, Closest("uper", registered, 3))

	// Normalization bridges naming styles.
	assert.Equal(t, []string{"add_int64"}, Closest("AddInt64", registered, 3))

	// Nothing close enough.
	assert.Empty(t, Closest("zzzzzzzz", registered, 3))
}

func TestClosestLimit(t *testing.T) {
	t.Parallel()

	registered := []string{"scale1", "scale2", "scale3", "scale4"}

	got := Closest("scale", registered, 2)
	assert.Len(t, got, 2)
}

func TestClosestOrdering(t *testing.T) {
	t.Parallel()

	registered := []string{"scales", "scale_all", "scale"}

	got := Closest("scale", registered, 3)
	assert.Equal(t, "scale", got[0])
}
