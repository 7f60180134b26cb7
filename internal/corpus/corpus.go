// Package corpus builds the ordered (product id, text) table fed to the vectorizer.
package corpus

import (
	"fmt"
	"strings"
	"time"

	"specsim/internal/catalog"
	"specsim/internal/extract"
	"specsim/internal/models"

	"github.com/rs/zerolog/log"
)

// RefinedSpecification is the reserved field key that restricts the
// specification to the refined sections before rendering text.
const RefinedSpecification = "refined_specification"

// Corpus is an ordered list of entries. Position i is row i of every
// matrix derived from it, and the product id is kept alongside.
type Corpus struct {
	entries []models.CorpusEntry
	index   map[int]int
}

type options struct {
	sections []string
}

// Option customizes Build.
type Option func(*options)

// WithSections overrides the sections used for RefinedSpecification.
func WithSections(ids ...string) Option {
	return func(o *options) {
		if len(ids) > 0 {
			o.sections = ids
		}
	}
}

// Build extracts field from every product of snap, in snapshot order.
func Build(snap *catalog.Snapshot, field string, opts ...Option) (*Corpus, error) {
	o := options{sections: extract.RefinedSections}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	products := snap.All()
	c := &Corpus{
		entries: make([]models.CorpusEntry, 0, len(products)),
		index:   make(map[int]int, len(products)),
	}

	for _, p := range products {
		text, err := Text(p, field, o.sections)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", p.ID, err)
		}
		c.index[p.ID] = len(c.entries)
		c.entries = append(c.entries, models.CorpusEntry{ProductID: p.ID, Text: text})
	}

	log.Info().Str("field", field).Int("products", len(c.entries)).Dur("elapsed", time.Since(start)).Msg("Text parsed")
	return c, nil
}

// Text returns the lowercased text of one product field. For
// RefinedSpecification only the given sections of the specification count.
func Text(p models.Product, field string, sections []string) (string, error) {
	if field == RefinedSpecification {
		raw, err := extract.Field(p, "specification")
		if err != nil {
			return "", err
		}
		fragment, err := extract.Sections(raw, sections)
		if err != nil {
			return "", err
		}
		return strings.ToLower(extract.Render(fragment, extract.ModeText)), nil
	}

	raw, err := extract.Field(p, field)
	if err != nil {
		return "", err
	}
	return strings.ToLower(extract.Render(raw, extract.ModeText)), nil
}

// Len returns the number of entries.
func (c *Corpus) Len() int {
	return len(c.entries)
}

// At returns the entry at position i.
func (c *Corpus) At(i int) models.CorpusEntry {
	return c.entries[i]
}

// Entries returns a copy of all entries in order.
func (c *Corpus) Entries() []models.CorpusEntry {
	out := make([]models.CorpusEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// IDs returns the product ids in corpus order.
func (c *Corpus) IDs() []int {
	ids := make([]int, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.ProductID
	}
	return ids
}

// Texts returns the texts in corpus order.
func (c *Corpus) Texts() []string {
	texts := make([]string, len(c.entries))
	for i, e := range c.entries {
		texts[i] = e.Text
	}
	return texts
}

// Position returns the corpus position of a product id.
func (c *Corpus) Position(id int) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}
