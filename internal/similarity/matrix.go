package similarity

import (
	"runtime"

	"specsim/internal/tfidf"

	"github.com/sourcegraph/conc/pool"
)

// Matrix is a dense, symmetric N×N similarity matrix with a unit diagonal.
type Matrix struct {
	n    int
	data []float64
}

// Pairwise computes the cosine similarity of every pair of rows. Rows are
// spread over at most workers goroutines (GOMAXPROCS when workers <= 0);
// the result does not depend on the worker count.
func Pairwise(rows []tfidf.Vector, workers int) *Matrix {
	n := len(rows)
	m := &Matrix{n: n, data: make([]float64, n*n)}
	if n == 0 {
		return m
	}

	norms := make([]float64, n)
	for i, row := range rows {
		norms[i] = Norm(row)
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := pool.New().WithMaxGoroutines(workers)
	for i := 0; i < n; i++ {
		i := i // per-iteration copy; go 1.21 loop variables are shared
		p.Go(func() {
			// Task i owns the upper-triangle cells of row i and their mirrors.
			m.data[i*n+i] = 1
			for j := i + 1; j < n; j++ {
				s := cosine(rows[i], rows[j], norms[i], norms[j])
				m.data[i*n+j] = s
				m.data[j*n+i] = s
			}
		})
	}
	p.Wait()

	return m
}

// Len returns N.
func (m *Matrix) Len() int {
	return m.n
}

// At returns the similarity of rows i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	row := make([]float64, m.n)
	copy(row, m.data[i*m.n:(i+1)*m.n])
	return row
}
