package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Catalog.Path != "products.json" {
		t.Errorf("Catalog.Path = %q, want %q", cfg.Catalog.Path, "products.json")
	}
	if cfg.Engine.Field != "refined_specification" {
		t.Errorf("Engine.Field = %q, want %q", cfg.Engine.Field, "refined_specification")
	}
	if cfg.Engine.NeighborLimit != 64 {
		t.Errorf("Engine.NeighborLimit = %d, want 64", cfg.Engine.NeighborLimit)
	}
	if !slices.Equal(cfg.Engine.RefinedSections, []string{"general", "Ports", "Media_Formats"}) {
		t.Errorf("Engine.RefinedSections = %v", cfg.Engine.RefinedSections)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := `
catalog:
  path: data/catalog.json
  redis:
    enabled: true
    key: shop:products
engine:
  field: overview
  neighbor_limit: 10
  workers: 2
  vectorizer:
    ngram_range: [1, 2]
    max_features: 500
logging:
  level: debug
reporting:
  path: out
  charts: false
`
	if err := os.WriteFile(filepath.Join(dir, "specsim.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Catalog.Path != "data/catalog.json" || !cfg.Catalog.Redis.Enabled || cfg.Catalog.Redis.Key != "shop:products" {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.Catalog.Redis.URL != "redis://localhost:6379/0" {
		t.Errorf("Catalog.Redis.URL = %q, want default", cfg.Catalog.Redis.URL)
	}
	if cfg.Engine.Field != "overview" || cfg.Engine.NeighborLimit != 10 || cfg.Engine.Workers != 2 {
		t.Errorf("Engine = %+v", cfg.Engine)
	}
	if _, ok := cfg.Engine.Vectorizer["max_features"]; !ok {
		t.Errorf("Engine.Vectorizer = %v, want max_features", cfg.Engine.Vectorizer)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Reporting.Path != "out" || cfg.Reporting.Charts {
		t.Errorf("Reporting = %+v", cfg.Reporting)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SPECSIM_ENGINE_FIELD", "meta_description")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Engine.Field != "meta_description" {
		t.Errorf("Engine.Field = %q, want %q", cfg.Engine.Field, "meta_description")
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "specsim.yaml"), []byte("engine: [unclosed"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := LoadConfig(dir); err == nil {
		t.Error("LoadConfig() error = nil, want error")
	}
}
