package similarity

import (
	"cmp"
	"slices"
)

// Ranked is a corpus position with its similarity to the query row.
type Ranked struct {
	Position int
	Score    float64
}

// TopK ranks every position except idx by its similarity to idx and
// returns at most k of them (all when k <= 0). Higher scores come first;
// equal scores keep ascending corpus position.
func TopK(m *Matrix, idx, k int) []Ranked {
	ranked := make([]Ranked, 0, max(m.n-1, 0))
	for j := 0; j < m.n; j++ {
		if j == idx {
			continue
		}
		ranked = append(ranked, Ranked{Position: j, Score: m.At(idx, j)})
	}
	return sortAndCut(ranked, k)
}

// TopKScores ranks an arbitrary score row, e.g. a query against the corpus.
func TopKScores(scores []float64, k int) []Ranked {
	ranked := make([]Ranked, len(scores))
	for j, s := range scores {
		ranked[j] = Ranked{Position: j, Score: s}
	}
	return sortAndCut(ranked, k)
}

func sortAndCut(ranked []Ranked, k int) []Ranked {
	slices.SortFunc(ranked, func(a, b Ranked) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Position, b.Position)
	})
	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
