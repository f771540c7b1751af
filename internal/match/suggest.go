package match

import (
	"cmp"
	"slices"
)

// DefaultThreshold is the minimum KeySimilarity for a candidate to be offered
// as a suggestion.
const DefaultThreshold = 0.6

// Suggestion is one ranked candidate.
type Suggestion struct {
	Name  string
	Score float64
}

// Rank scores every candidate against input and returns those reaching
// threshold, best first. Equal scores keep alphabetical order so the result is
// stable across runs.
func Rank(input string, candidates []string, threshold float64) []Suggestion {
	var out []Suggestion

	for _, c := range candidates {
		score := KeySimilarity(input, c)
		if score >= threshold {
			out = append(out, Suggestion{Name: c, Score: score})
		}
	}

	slices.SortFunc(out, func(a, b Suggestion) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return out
}

// Suggest returns at most limit candidate names closest to input.
func Suggest(input string, candidates []string, limit int) []string {
	ranked := Rank(input, candidates, DefaultThreshold)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	names := make([]string, len(ranked))
	for i, s := range ranked {
		names[i] = s.Name
	}

	return names
}
