// Package core trains the similarity engine and serves neighbor lookups.
package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"specsim/internal/catalog"
	"specsim/internal/config"
	"specsim/internal/corpus"
	"specsim/internal/models"
	"specsim/internal/similarity"
	"specsim/internal/tfidf"

	"github.com/rs/zerolog/log"
)

// DefaultNeighborLimit is the number of neighbors kept per product.
const DefaultNeighborLimit = 64

var (
	// ErrEmptyCorpus is returned when training finds no products.
	ErrEmptyCorpus = errors.New("cannot train on an empty corpus")
	// ErrNotTrained is returned by queries made before the first Train.
	ErrNotTrained = errors.New("engine has not been trained")
)

// Engine owns one fitted model and the neighbor lists derived from it.
type Engine struct {
	source catalog.Source
	cfg    config.EngineConfig

	// trainMu serializes Train; mu guards the trained state below.
	trainMu sync.Mutex
	mu      sync.RWMutex

	field     string
	trainedAt time.Time
	snapshot  *catalog.Snapshot
	model     *tfidf.Model
	corpus    *corpus.Corpus
	matrix    *similarity.Matrix
	neighbors map[int]models.NeighborList
}

// NewEngine creates an untrained engine reading products from source.
func NewEngine(source catalog.Source, cfg config.EngineConfig) *Engine {
	if cfg.NeighborLimit <= 0 {
		cfg.NeighborLimit = DefaultNeighborLimit
	}
	return &Engine{
		source:    source,
		cfg:       cfg,
		neighbors: make(map[int]models.NeighborList),
	}
}

// Train rebuilds the corpus from field, fits the vectorizer with
// vectorizerOptions, computes the similarity matrix and ranks the
// neighbors of every product. The previous model is replaced only when
// every step succeeds.
func (e *Engine) Train(ctx context.Context, field string, vectorizerOptions map[string]any) (*tfidf.Model, error) {
	e.trainMu.Lock()
	defer e.trainMu.Unlock()

	opts, err := tfidf.ParseOptions(vectorizerOptions)
	if err != nil {
		return nil, err
	}

	snap, err := e.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	c, err := corpus.Build(snap, field, corpus.WithSections(e.cfg.RefinedSections...))
	if err != nil {
		return nil, fmt.Errorf("failed to build corpus: %w", err)
	}
	if c.Len() == 0 {
		return nil, ErrEmptyCorpus
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	model, err := tfidf.Fit(c.Texts(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fit vectorizer: %w", err)
	}
	log.Info().Int("terms", len(model.Terms)).Dur("elapsed", time.Since(start)).Msg("Engine trained")

	start = time.Now()
	matrix := similarity.Pairwise(model.Matrix, e.cfg.Workers)
	neighbors := rankAll(c, matrix, e.cfg.NeighborLimit)
	log.Info().Int("products", c.Len()).Int("limit", e.cfg.NeighborLimit).Dur("elapsed", time.Since(start)).Msg("Similarities computed")

	e.mu.Lock()
	e.field = field
	e.trainedAt = time.Now()
	e.snapshot = snap
	e.model = model
	e.corpus = c
	e.matrix = matrix
	e.neighbors = neighbors
	e.mu.Unlock()

	return model, nil
}

func rankAll(c *corpus.Corpus, m *similarity.Matrix, limit int) map[int]models.NeighborList {
	ids := c.IDs()
	out := make(map[int]models.NeighborList, len(ids))
	for idx, id := range ids {
		ranked := similarity.TopK(m, idx, limit)
		list := make(models.NeighborList, len(ranked))
		for i, r := range ranked {
			list[i] = models.Neighbor{Score: r.Score, ProductID: ids[r.Position]}
		}
		out[id] = list
	}
	return out
}

// NeighborsOf returns the ranked neighbors of a product. The second value
// is false when the product was not in the trained corpus.
func (e *Engine) NeighborsOf(productID int) (models.NeighborList, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	list, ok := e.neighbors[productID]
	if !ok {
		return nil, false
	}
	out := make(models.NeighborList, len(list))
	copy(out, list)
	return out, true
}

// Similar ranks the corpus against free text using the fitted vocabulary.
func (e *Engine) Similar(text string, k int) (models.NeighborList, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.model == nil {
		return nil, ErrNotTrained
	}

	query := e.model.Transform(text)
	queryNorm := similarity.Norm(query)
	scores := make([]float64, len(e.model.Matrix))
	if queryNorm > 0 {
		for i, row := range e.model.Matrix {
			scores[i] = similarity.Cosine(query, row)
		}
	}

	ranked := similarity.TopKScores(scores, k)
	list := make(models.NeighborList, len(ranked))
	for i, r := range ranked {
		list[i] = models.Neighbor{Score: r.Score, ProductID: e.corpus.At(r.Position).ProductID}
	}
	return list, nil
}

// Similarity returns the score between two trained products.
func (e *Engine) Similarity(a, b int) (float64, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.corpus == nil {
		return 0, false
	}
	i, okA := e.corpus.Position(a)
	j, okB := e.corpus.Position(b)
	if !okA || !okB {
		return 0, false
	}
	return e.matrix.At(i, j), true
}

// Product returns a product of the catalog the engine was trained on.
func (e *Engine) Product(id int) (models.Product, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.snapshot == nil {
		return models.Product{}, ErrNotTrained
	}
	return e.snapshot.FindByID(id)
}

// Corpus returns the corpus of the last training run, or nil.
func (e *Engine) Corpus() *corpus.Corpus {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.corpus
}

// Matrix returns the similarity matrix of the last training run, or nil.
func (e *Engine) Matrix() *similarity.Matrix {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.matrix
}

// Model returns the fitted model, or nil.
func (e *Engine) Model() *tfidf.Model {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.model
}

// Field returns the field used by the last training run.
func (e *Engine) Field() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.field
}

// TrainedAt returns when the last training run finished.
func (e *Engine) TrainedAt() time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.trainedAt
}

// NeighborLimit returns the maximum neighbor list length.
func (e *Engine) NeighborLimit() int {
	return e.cfg.NeighborLimit
}
