package match

import (
	"cmp"
	"slices"
)

// MinSuggestScore is the lowest similarity a candidate needs to be suggested.
const MinSuggestScore = 0.5

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates similar to name, best first.
// Ties are broken by candidate name. A non-positive limit means no limit.
func Suggest(name string, candidates []string, limit int) []string {
	var ranked []scored

	for _, c := range candidates {
		s := NormalizedLevenshteinScore(name, c)
		if s < MinSuggestScore {
			continue
		}

		ranked = append(ranked, scored{name: c, score: s})
	}

	slices.SortFunc(ranked, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}

		return cmp.Compare(a.name, b.name)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.name)
	}

	return out
}
