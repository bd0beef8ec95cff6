package fnr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_Gender(t *testing.T) {
	t.Run("odd individual number is male", func(t *testing.T) {
		n := MustParse(validOrdinary, DefaultOptions()) // individual 123
		assert.Equal(t, GenderMale, n.Gender())
		assert.Equal(t, "male", n.Gender().String())
	})

	t.Run("even individual number is female", func(t *testing.T) {
		n, err := ParseAt("01019912449", DefaultOptions(), testNow) // individual 124
		require.NoError(t, err)
		assert.Equal(t, GenderFemale, n.Gender())
		assert.Equal(t, "female", n.Gender().String())
	})
}

func TestNumber_IsOver18(t *testing.T) {
	adult := MustParse(validOrdinary, DefaultOptions()) // born 1999-01-01
	minor, err := ParseAt(born2020, DefaultOptions(), testNow)
	require.NoError(t, err)

	assert.True(t, adult.IsOver18(testNow))
	assert.False(t, minor.IsOver18(testNow))

	// Exact 18th birthday counts as adult.
	assert.True(t, minor.IsOver18(time.Date(2038, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, minor.IsOver18(time.Date(2037, time.December, 31, 0, 0, 0, 0, time.UTC)))
}
