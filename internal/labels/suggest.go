package labels

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to input, or "" when nothing is
// close enough to be a plausible typo. Two swapped neighbouring letters
// count as a single edit.
func Suggest(input string, candidates []string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}
	best, bestDist := "", -1
	for _, c := range candidates {
		d := distance(input, strings.ToLower(c))
		if d > suggestLimit(len([]rune(c))) {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func distance(a, b string) int {
	d := levenshtein.ComputeDistance(a, b)
	if d == 2 && adjacentSwap([]rune(a), []rune(b)) {
		return 1
	}
	return d
}

// adjacentSwap reports whether a becomes b by exchanging one pair of
// neighbouring runes.
func adjacentSwap(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	i := 0
	for i < len(a) && a[i] == b[i] {
		i++
	}
	if i+1 >= len(a) || a[i] != b[i+1] || a[i+1] != b[i] {
		return false
	}
	return string(a[i+2:]) == string(b[i+2:])
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
