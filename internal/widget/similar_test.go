package widget

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClosestMatch(t *testing.T) {
	prior := []string{"Coffee", "Green Tea", "Water"}

	got, ok := ClosestMatch("coffe", prior)
	require.True(t, ok)
	require.Equal(t, "Coffee", got)

	got, ok = ClosestMatch("Coffee", prior)
	require.True(t, ok, "an exact duplicate is the closest possible match")
	require.Equal(t, "Coffee", got)

	_, ok = ClosestMatch("Lemonade", prior)
	require.False(t, ok)

	_, ok = ClosestMatch("   ", prior)
	require.False(t, ok)

	_, ok = ClosestMatch("anything", nil)
	require.False(t, ok)
}
