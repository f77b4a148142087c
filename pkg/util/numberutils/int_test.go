package numberutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToIntWithDefault(t *testing.T) {
	value, err := ToIntWithDefault("", 7)
	require.NoError(t, err)
	require.Equal(t, 7, value)

	value, err = ToIntWithDefault(" 3 ", 7)
	require.NoError(t, err)
	require.Equal(t, 3, value)

	_, err = ToIntWithDefault("three", 7)
	require.Error(t, err)
}

func TestIsIntInRange(t *testing.T) {
	require.True(t, IsIntInRange(1, 1, 5))
	require.True(t, IsIntInRange(5, 1, 5))
	require.False(t, IsIntInRange(6, 1, 5))
}
