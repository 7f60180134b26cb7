package reporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ChartConfig holds configuration for charts.
type ChartConfig struct {
	Title  string
	Width  string
	Height string
	Theme  string
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:  "900px",
		Height: "500px",
		Theme:  "light",
	}
}

func globalOptions(cfg ChartConfig, yLabel string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:  cfg.Width,
			Height: cfg.Height,
			Theme:  cfg.Theme,
		}),
		charts.WithTitleOpts(opts.Title{Title: cfg.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: yLabel}),
	}
}

// ScoreChart draws matching and similarity scores side by side per product.
func ScoreChart(cmp Comparison, cfg ChartConfig) *charts.Bar {
	if cfg.Title == "" {
		cfg.Title = "Matching and similarity scores"
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(cfg, "Scores")...)

	labels := make([]string, len(cmp.Rows))
	matching := make([]opts.BarData, len(cmp.Rows))
	similarity := make([]opts.BarData, len(cmp.Rows))
	for i, r := range cmp.Rows {
		labels[i] = strconv.Itoa(r.ProductID)
		matching[i] = opts.BarData{Value: r.Matching}
		similarity[i] = opts.BarData{Value: r.Similarity}
	}

	bar.SetXAxis(labels).
		AddSeries("Matching score", matching).
		AddSeries("Similarity score", similarity)
	return bar
}

// WordCountChart draws each product's word count as an area against the RMS.
func WordCountChart(counts []int, stats WordCountStats, cfg ChartConfig) *charts.Line {
	if cfg.Title == "" {
		cfg.Title = "Word count for each product spec."
	}
	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions(cfg, "Word count")...)

	labels := make([]string, len(counts))
	words := make([]opts.LineData, len(counts))
	rms := make([]opts.LineData, len(counts))
	for i, c := range counts {
		labels[i] = strconv.Itoa(i)
		words[i] = opts.LineData{Value: c}
		rms[i] = opts.LineData{Value: stats.RMS}
	}

	line.SetXAxis(labels).
		AddSeries("Word count", words, charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.4)})).
		AddSeries("RMS", rms)
	return line
}

type renderer interface {
	Render(w io.Writer) error
}

// WriteChart renders chart into an HTML file, creating parent directories.
func WriteChart(chart renderer, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := chart.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
