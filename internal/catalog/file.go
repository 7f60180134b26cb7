package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"specsim/internal/models"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// FileSource reads a JSON array of product records from disk.
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load reads and decodes the catalog file.
func (f *FileSource) Load(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer file.Close()

	products, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", f.Path, err)
	}

	snap, err := NewSnapshot(products)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("path", f.Path).Int("products", snap.Len()).Dur("elapsed", time.Since(start)).Msg("Catalog loaded")
	return snap, nil
}

// Decode reads a JSON array of product records. Numbers inside free-form
// fields are kept as json.Number so they render exactly as written.
func Decode(r io.Reader) ([]models.Product, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var products []models.Product
	if err := dec.Decode(&products); err != nil {
		return nil, err
	}
	return products, nil
}

func decodeProduct(doc string) (models.Product, error) {
	dec := json.NewDecoder(strings.NewReader(doc))
	dec.UseNumber()

	var p models.Product
	if err := dec.Decode(&p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}
