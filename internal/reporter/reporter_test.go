package reporter

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"specsim/internal/catalog"
	"specsim/internal/config"
	"specsim/internal/models"

	"github.com/goccy/go-json"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		want   WordCountStats
	}{
		{name: "empty", counts: nil, want: WordCountStats{}},
		{name: "single", counts: []int{4}, want: WordCountStats{Count: 1, RMS: 4, Mean: 4, Max: 4, Min: 4}},
		{name: "several", counts: []int{3, 4}, want: WordCountStats{Count: 2, RMS: math.Sqrt(12.5), Mean: 3.5, Max: 4, Min: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.counts)
			if got.Count != tt.want.Count || got.Max != tt.want.Max || got.Min != tt.want.Min {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
			if math.Abs(got.RMS-tt.want.RMS) > 1e-9 || math.Abs(got.Mean-tt.want.Mean) > 1e-9 {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWordCounts(t *testing.T) {
	snap, err := catalog.NewSnapshot([]models.Product{
		{ID: 1, Specification: `<ul id="general"><li>OS: Android</li></ul><ul id="Extra"><li>one two three</li></ul>`},
		{ID: 2, Specification: `<ul id="general"><li>OS: iOS 17</li></ul>`},
	})
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}

	counts, err := WordCounts(snap, false, nil)
	if err != nil {
		t.Fatalf("WordCounts() error = %v", err)
	}
	if len(counts) != 2 || counts[0] != 5 || counts[1] != 3 {
		t.Errorf("WordCounts() = %v, want [5 3]", counts)
	}

	refined, err := WordCounts(snap, true, []string{"general"})
	if err != nil {
		t.Fatalf("WordCounts(refine) error = %v", err)
	}
	if refined[0] != 2 || refined[1] != 3 {
		t.Errorf("WordCounts(refine) = %v, want [2 3]", refined)
	}

	if _, err := WordCounts(snap, true, nil); err == nil {
		t.Error("WordCounts(refine, default sections) error = nil, want missing section")
	}
}

func TestCompareScores(t *testing.T) {
	parent := models.Product{ID: 1, Related: []int{2, 3}, Curated: []int{2}}
	list := models.NeighborList{
		{Score: 0.9, ProductID: 2},
		{Score: 0.5, ProductID: 3},
	}

	if got := MatchingScore(parent, 2); got != 1 {
		t.Errorf("MatchingScore(2) = %f, want 1", got)
	}
	if got := MatchingScore(parent, 3); got != 0 {
		t.Errorf("MatchingScore(3) = %f, want 0 when curated list overrides related", got)
	}

	cmp := CompareScores(parent, list)
	if cmp.ParentID != 1 || len(cmp.Rows) != 2 {
		t.Fatalf("CompareScores() = %+v", cmp)
	}
	// ((0.9-1) + (0.5-0)) / 2 = 0.2
	if math.Abs(cmp.MeanDiff-0.2) > 1e-9 {
		t.Errorf("MeanDiff = %f, want 0.2", cmp.MeanDiff)
	}

	if empty := CompareScores(parent, nil); empty.MeanDiff != 0 || len(empty.Rows) != 0 {
		t.Errorf("CompareScores(nil) = %+v, want zero rows", empty)
	}
}

func TestCoverage(t *testing.T) {
	parent := models.Product{ID: 1, Related: []int{3, 7}}
	list := models.NeighborList{
		{Score: 0.8, ProductID: 2},
		{Score: 0.6, ProductID: 3},
	}

	rows := Coverage(parent, list)
	if len(rows) != 2 {
		t.Fatalf("len(Coverage()) = %d, want 2", len(rows))
	}
	if !rows[0].Ranked || rows[0].Rank != 2 || rows[0].Score != 0.6 {
		t.Errorf("Coverage()[0] = %+v, want rank 2 score 0.6", rows[0])
	}
	if rows[1].Ranked || rows[1].Rank != 0 {
		t.Errorf("Coverage()[1] = %+v, want absent", rows[1])
	}

	table := CoverageTable(rows)
	if !strings.Contains(table, "absent") || !strings.Contains(table, "0.6000") {
		t.Errorf("CoverageTable() missing rows:\n%s", table)
	}
}

func TestTables(t *testing.T) {
	list := models.NeighborList{{Score: 0.75, ProductID: 1001}}
	cmp := CompareScores(models.Product{ID: 1, Related: []int{1001}}, list)

	tests := []struct {
		name    string
		out     string
		want    []string
		notWant []string
	}{
		{
			name:    "neighbor table",
			out:     NeighborTable(list, func(id int) string { return "Phone X" }),
			want:    []string{"1001", "Phone X", "0.7500", "Rank", "Similarity"},
			notWant: []string{"RANK", "SIMILARITY"},
		},
		{
			name:    "comparison table keeps footer casing",
			out:     ComparisonTable(cmp),
			want:    []string{"Mean difference", "0.2500", "Matching"},
			notWant: []string{"MEAN DIFFERENCE", "MATCHING"},
		},
		{
			name:    "coverage table",
			out:     CoverageTable(Coverage(models.Product{ID: 1, Related: []int{1001}}, list)),
			want:    []string{"Curated product", "Model rank"},
			notWant: []string{"CURATED PRODUCT"},
		},
		{
			name: "stats table",
			out:  StatsTable(Summarize([]int{10, 20})),
			want: []string{"Maximum", "20"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.want {
				if !strings.Contains(tt.out, want) {
					t.Errorf("table missing %q:\n%s", want, tt.out)
				}
			}
			for _, bad := range tt.notWant {
				if strings.Contains(tt.out, bad) {
					t.Errorf("table contains %q:\n%s", bad, tt.out)
				}
			}
		})
	}
}

func TestWriteChart(t *testing.T) {
	dir := t.TempDir()
	cmp := CompareScores(models.Product{ID: 1, Related: []int{2}}, models.NeighborList{{Score: 0.4, ProductID: 2}})
	counts := []int{3, 5, 8}

	tests := []struct {
		name  string
		chart renderer
	}{
		{name: "scores.html", chart: ScoreChart(cmp, DefaultChartConfig())},
		{name: "wordcount.html", chart: WordCountChart(counts, Summarize(counts), DefaultChartConfig())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "charts", tt.name)
			if err := WriteChart(tt.chart, path); err != nil {
				t.Fatalf("WriteChart() error = %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if !strings.Contains(string(data), "<html") {
				t.Errorf("chart file is not HTML")
			}
		})
	}
}

func sampleReport() Report {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return Report{
		Summary: TrainingSummary{
			Field:         "refined_specification",
			Products:      2,
			Terms:         5,
			NeighborLimit: 64,
			StartTime:     start,
			EndTime:       start.Add(2 * time.Second),
			TotalDuration: "2s",
		},
		Configuration: &config.Settings{},
		Neighbors: map[int]models.NeighborList{
			20: {{Score: 0.5, ProductID: 10}},
			10: {{Score: 0.5, ProductID: 20}},
		},
	}
}

func TestJSONExporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.json")
	exp, err := NewJSONExporter(path)
	if err != nil {
		t.Fatalf("NewJSONExporter() error = %v", err)
	}
	if err := exp.Export(sampleReport()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var got Report
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Summary.Products != 2 || len(got.Neighbors[10]) != 1 || got.Neighbors[10][0].ProductID != 20 {
		t.Errorf("report round trip = %+v", got)
	}
}

func TestTxtExporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	exp, err := NewTxtExporter(path)
	if err != nil {
		t.Fatalf("NewTxtExporter() error = %v", err)
	}
	if err := exp.Export(sampleReport()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	out := string(data)
	first, second := strings.Index(out, "Product 10"), strings.Index(out, "Product 20")
	if first < 0 || second < 0 || first > second {
		t.Errorf("neighbor sections missing or unordered:\n%s", out)
	}
	if !strings.Contains(out, "refined_specification") {
		t.Errorf("summary missing field:\n%s", out)
	}
}
