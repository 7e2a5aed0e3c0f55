package widget

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// similarityThreshold is the maximum normalized edit distance for two items
// to count as near-duplicates.
const similarityThreshold = 0.25

// ClosestMatch scans prior for the nearest near-duplicate of item,
// case-insensitively. It returns the stored spelling and true when one is
// within the threshold. Duplicates are legal, so this only ever feeds a
// hint, never a rejection.
func ClosestMatch(item string, prior []string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(item))
	if needle == "" {
		return "", false
	}
	best := ""
	bestScore := similarityThreshold
	for _, candidate := range prior {
		haystack := strings.ToLower(strings.TrimSpace(candidate))
		if haystack == "" {
			continue
		}
		longest := max(len(needle), len(haystack))
		score := float64(levenshtein.ComputeDistance(needle, haystack)) / float64(longest)
		if score <= bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best, best != ""
}
