// Package similarity computes pairwise cosine similarity over sparse
// document vectors and ranks the nearest neighbors of each document.
package similarity

import (
	"math"

	"specsim/internal/tfidf"
)

// Norm returns the euclidean length of v.
func Norm(v tfidf.Vector) float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Dot returns the dot product of two sparse vectors with ascending indices.
func Dot(a, b tfidf.Vector) float64 {
	var dot float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			dot += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return dot
}

// Cosine returns the cosine similarity of a and b, clamped to [0, 1].
// It is 0 when either vector is zero.
func Cosine(a, b tfidf.Vector) float64 {
	return cosine(a, b, Norm(a), Norm(b))
}

func cosine(a, b tfidf.Vector, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	return clamp(Dot(a, b) / (normA * normB))
}

func clamp(s float64) float64 {
	switch {
	case s > 1:
		return 1
	case s < 0:
		return 0
	}
	return s
}
