package core

import "specsim/internal/models"

// ScoreOf returns the score of productID within list. The second value is
// false when the product is not in the list, which is routine: a curated
// related item may fall outside the model's top neighbors.
func ScoreOf(productID int, list models.NeighborList) (float64, bool) {
	n, ok := PairOf(productID, list)
	return n.Score, ok
}

// PairOf is ScoreOf returning the whole (score, product id) pair.
func PairOf(productID int, list models.NeighborList) (models.Neighbor, bool) {
	for _, n := range list {
		if n.ProductID == productID {
			return n, true
		}
	}
	return models.Neighbor{}, false
}
