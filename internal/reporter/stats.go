// Package reporter summarizes trained similarity scores for people: word
// count statistics, model-versus-curation comparisons, tables, charts and
// report files.
package reporter

import (
	"fmt"
	"math"
	"strings"

	"specsim/internal/catalog"
	"specsim/internal/corpus"
	"specsim/internal/extract"
)

// WordCountStats summarizes the specification word counts of a catalog.
type WordCountStats struct {
	Count int     `json:"count"`
	RMS   float64 `json:"rms"`
	Mean  float64 `json:"mean"`
	Max   int     `json:"max"`
	Min   int     `json:"min"`
}

// WordCounts counts whitespace-separated words in every product
// specification, in catalog order. With refine set only sections count.
func WordCounts(snap *catalog.Snapshot, refine bool, sections []string) ([]int, error) {
	field := "specification"
	if refine {
		field = corpus.RefinedSpecification
	}
	if len(sections) == 0 {
		sections = extract.RefinedSections
	}

	products := snap.All()
	counts := make([]int, len(products))
	for i, p := range products {
		text, err := corpus.Text(p, field, sections)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", p.ID, err)
		}
		counts[i] = len(strings.Fields(text))
	}
	return counts, nil
}

// Summarize computes the RMS, mean, max and min of counts.
func Summarize(counts []int) WordCountStats {
	stats := WordCountStats{Count: len(counts)}
	if len(counts) == 0 {
		return stats
	}

	stats.Max, stats.Min = counts[0], counts[0]
	var sum, squares float64
	for _, c := range counts {
		sum += float64(c)
		squares += float64(c) * float64(c)
		stats.Max = max(stats.Max, c)
		stats.Min = min(stats.Min, c)
	}
	n := float64(len(counts))
	stats.Mean = sum / n
	stats.RMS = math.Sqrt(squares / n)
	return stats
}
