package reporter

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"specsim/internal/config"
	"specsim/internal/models"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// TrainingSummary provides a high-level overview of a training run.
type TrainingSummary struct {
	Field         string    `json:"field"`
	Products      int       `json:"products"`
	Terms         int       `json:"terms"`
	NeighborLimit int       `json:"neighbor_limit"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	TotalDuration string    `json:"total_duration"`
}

// Report is the top-level structure for the training report.
type Report struct {
	Summary       TrainingSummary             `json:"summary"`
	Configuration *config.Settings            `json:"configuration"`
	Neighbors     map[int]models.NeighborList `json:"neighbors"`
}

// Exporter writes a report somewhere.
type Exporter interface {
	Export(report Report) error
}

// JSONExporter handles the creation of the JSON report file.
type JSONExporter struct {
	OutputPath string
}

// NewJSONExporter creates a new exporter that will write to the specified path.
func NewJSONExporter(outputPath string) (*JSONExporter, error) {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &JSONExporter{OutputPath: outputPath}, nil
}

// Export generates and saves the JSON report.
func (e *JSONExporter) Export(report Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	if err := os.WriteFile(e.OutputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write JSON report to file: %w", err)
	}

	log.Info().Str("path", e.OutputPath).Msg("JSON report saved successfully.")
	return nil
}

// TxtExporter handles the creation of the TXT report file.
type TxtExporter struct {
	OutputPath string
}

// NewTxtExporter creates a new exporter that will write to the specified path.
func NewTxtExporter(outputPath string) (*TxtExporter, error) {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &TxtExporter{OutputPath: outputPath}, nil
}

// Export generates and saves the TXT report. Neighbor lists are written in
// ascending product id order.
func (e *TxtExporter) Export(report Report) error {
	file, err := os.Create(e.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create TXT report file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	summary := report.Summary
	fmt.Fprintln(w, "Training Report")
	fmt.Fprintln(w, "===================================")
	fmt.Fprintln(w, "Summary")
	fmt.Fprintln(w, "-----------------------------------")
	fmt.Fprintf(w, "Field:               %s\n", summary.Field)
	fmt.Fprintf(w, "Products:            %d\n", summary.Products)
	fmt.Fprintf(w, "Vocabulary Terms:    %d\n", summary.Terms)
	fmt.Fprintf(w, "Neighbor Limit:      %d\n", summary.NeighborLimit)
	fmt.Fprintf(w, "Start Time:          %s\n", summary.StartTime.Format(time.RFC3339))
	fmt.Fprintf(w, "End Time:            %s\n", summary.EndTime.Format(time.RFC3339))
	fmt.Fprintf(w, "Total Duration:      %s\n", summary.TotalDuration)
	fmt.Fprintln(w, "===================================")

	if cfg := report.Configuration; cfg != nil {
		fmt.Fprintln(w, "Configuration")
		fmt.Fprintln(w, "-----------------------------------")
		source := cfg.Catalog.Path
		if cfg.Catalog.Redis.Enabled {
			source = cfg.Catalog.Redis.URL + " " + cfg.Catalog.Redis.Key
		}
		fmt.Fprintf(w, "Catalog:             %s\n", source)
		fmt.Fprintf(w, "Refined Sections:    %v\n", cfg.Engine.RefinedSections)
		fmt.Fprintf(w, "Workers:             %d\n", cfg.Engine.Workers)
		fmt.Fprintf(w, "Vectorizer:          %v\n", cfg.Engine.Vectorizer)
		fmt.Fprintln(w, "===================================")
	}

	fmt.Fprintln(w, "Neighbors")
	fmt.Fprintln(w, "-----------------------------------")
	if len(report.Neighbors) == 0 {
		fmt.Fprintln(w, "\nNo products trained.")
	}
	ids := make([]int, 0, len(report.Neighbors))
	for id := range report.Neighbors {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		fmt.Fprintf(w, "\nProduct %d\n", id)
		for i, n := range report.Neighbors[id] {
			fmt.Fprintf(w, "  %3d. %-10d %.4f\n", i+1, n.ProductID, n.Score)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write TXT report: %w", err)
	}

	log.Info().Str("path", e.OutputPath).Msg("TXT report saved successfully.")
	return nil
}
