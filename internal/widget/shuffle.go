package widget

import "math/rand"

// Shuffle permutes s in place with a Fisher-Yates walk: for each index i
// from the end down to 1, swap s[i] with s[j] for j drawn uniformly from
// [0, i]. Every permutation is equally likely given a uniform source.
// Sequences of length 0 or 1 are returned untouched.
//
// Shuffle mutates its argument. Callers holding a canonical ordering must
// pass a copy; the list store never hands out its backing slice for this
// reason.
func Shuffle[T any](s []T, rng *rand.Rand) {
	if len(s) < 2 {
		return
	}
	for i := len(s) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
