package widget

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShuffleLeavesTrivialSequencesUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var empty []string
	Shuffle(empty, rng)
	require.Empty(t, empty)

	one := []string{"only"}
	Shuffle(one, rng)
	require.Equal(t, []string{"only"}, one)
}

func TestShufflePreservesElements(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := []string{"a", "b", "c", "d", "e", "f"}
	Shuffle(s, rng)

	sorted := append([]string(nil), s...)
	sort.Strings(sorted)
	require.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, sorted)
}

// With a seeded source, 9996 shuffles of a 3-element sequence should land
// close to 1666 per ordering. Bounds are wide; this guards against gross
// bias (off-by-one in the walk), not statistical perfection.
func TestShuffleIsUnbiasedOverSmallSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const trials = 9996

	counts := make(map[string]int, 6)
	for i := 0; i < trials; i++ {
		s := []string{"a", "b", "c"}
		Shuffle(s, rng)
		counts[strings.Join(s, "")]++
	}

	require.Len(t, counts, 6, "all 3! orderings should occur")
	for perm, count := range counts {
		require.Greater(t, count, 1300, "ordering %s undersampled", perm)
		require.Less(t, count, 2100, "ordering %s oversampled", perm)
	}
}
