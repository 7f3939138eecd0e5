package match

import "sort"

// minScore is the similarity floor below which a candidate is not worth
// suggesting.
const minScore = 0.5

type scoredName struct {
	name  string
	score float64
}

// Closest returns up to limit candidate names ranked by normalized
// Levenshtein similarity against name. Candidates scoring below the
// suggestion floor are dropped.
func Closest(name string, candidates []string, limit int) []string {
	target := NormalizeIdent(name)

	scored := make([]scoredName, 0, len(candidates))

	for _, candidate := range candidates {
		score := LevenshteinNormalized(target, NormalizeIdent(candidate))
		if score >= minScore {
			scored = append(scored, scoredName{name: candidate, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}

		return scored[i].name < scored[j].name
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.name
	}

	return out
}
