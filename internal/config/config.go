// Package config handles the loading and parsing of the application's configuration.
// It uses the Viper library to read from a YAML file and environment variables.
package config

import (
	"errors"
	"strings"

	"specsim/internal/logger"

	"github.com/spf13/viper"
)

// Settings defines the overall configuration structure for specsim.
// It mirrors the structure of specsim.yaml and is populated by Viper.
type Settings struct {
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Engine    EngineConfig    `mapstructure:"engine"`
	Logging   logger.Config   `mapstructure:"logging"`
	Reporting ReportingConfig `mapstructure:"reporting"`
}

// CatalogConfig says where the product catalog is read from.
type CatalogConfig struct {
	Path  string      `mapstructure:"path"`
	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds the configuration for the Redis catalog source.
type RedisConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	Key     string `mapstructure:"key"`
}

// EngineConfig controls corpus building, vectorization and ranking.
type EngineConfig struct {
	Field           string         `mapstructure:"field"`
	NeighborLimit   int            `mapstructure:"neighbor_limit"`
	RefinedSections []string       `mapstructure:"refined_sections"`
	Workers         int            `mapstructure:"workers"`
	Vectorizer      map[string]any `mapstructure:"vectorizer"`
}

// ReportingConfig defines where reports and charts are written.
type ReportingConfig struct {
	Path   string `mapstructure:"path"`
	Charts bool   `mapstructure:"charts"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.path", "products.json")
	v.SetDefault("catalog.redis.enabled", false)
	v.SetDefault("catalog.redis.url", "redis://localhost:6379/0")
	v.SetDefault("catalog.redis.key", "specsim:products")

	v.SetDefault("engine.field", "refined_specification")
	v.SetDefault("engine.neighbor_limit", 64)
	v.SetDefault("engine.refined_sections", []string{"general", "Ports", "Media_Formats"})
	v.SetDefault("engine.workers", 0)
	v.SetDefault("engine.vectorizer", map[string]any{})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.json_format", false)

	v.SetDefault("reporting.path", "reports")
	v.SetDefault("reporting.charts", true)
}

// LoadConfig reads specsim.yaml from the given directory and unmarshals it
// into a Settings struct. A missing file leaves the defaults in place;
// SPECSIM_* environment variables override both.
func LoadConfig(path string) (config Settings, err error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("specsim")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("specsim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}
