package reporter

import (
	"math"
	"slices"

	"specsim/internal/core"
	"specsim/internal/models"
)

// MatchingScore is 1 when item is one of parent's curated related items
// and 0 otherwise.
func MatchingScore(parent models.Product, itemID int) float64 {
	if slices.Contains(parent.Baseline(), itemID) {
		return 1
	}
	return 0
}

// ComparisonRow sets the model's score for one neighbor against curation.
type ComparisonRow struct {
	ProductID  int     `json:"product_id"`
	Similarity float64 `json:"similarity"`
	Matching   float64 `json:"matching"`
}

// Comparison compares a product's neighbors with its curated baseline.
type Comparison struct {
	ParentID int             `json:"parent_id"`
	Rows     []ComparisonRow `json:"rows"`
	MeanDiff float64         `json:"mean_diff"`
}

// CompareScores pairs every neighbor's similarity with its matching score.
// MeanDiff is |mean(similarity - matching)|.
func CompareScores(parent models.Product, list models.NeighborList) Comparison {
	cmp := Comparison{ParentID: parent.ID, Rows: make([]ComparisonRow, len(list))}
	var diff float64
	for i, n := range list {
		row := ComparisonRow{
			ProductID:  n.ProductID,
			Similarity: n.Score,
			Matching:   MatchingScore(parent, n.ProductID),
		}
		cmp.Rows[i] = row
		diff += row.Similarity - row.Matching
	}
	if len(list) > 0 {
		cmp.MeanDiff = math.Abs(diff / float64(len(list)))
	}
	return cmp
}

// CoverageRow reports whether the model ranked a curated item.
type CoverageRow struct {
	ProductID int     `json:"product_id"`
	Score     float64 `json:"score"`
	Ranked    bool    `json:"ranked"`
	Rank      int     `json:"rank,omitempty"`
}

// Coverage looks up every curated related item of parent in list.
func Coverage(parent models.Product, list models.NeighborList) []CoverageRow {
	baseline := parent.Baseline()
	rows := make([]CoverageRow, len(baseline))
	for i, id := range baseline {
		rows[i] = CoverageRow{ProductID: id}
		if score, ok := core.ScoreOf(id, list); ok {
			rows[i].Score = score
			rows[i].Ranked = true
			rows[i].Rank = slices.IndexFunc(list, func(n models.Neighbor) bool { return n.ProductID == id }) + 1
		}
	}
	return rows
}
