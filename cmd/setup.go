package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"specsim/internal/catalog"
	"specsim/internal/config"
	"specsim/internal/core"
	"specsim/internal/logger"
	"specsim/internal/models"
	"specsim/internal/redis"
	"specsim/internal/tfidf"

	"github.com/rs/zerolog/log"
)

// app bundles what every command needs after start-up.
type app struct {
	cfg     config.Settings
	source  catalog.Source
	closers []io.Closer
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if outputDir != "" {
		cfg.Reporting.Path = outputDir
	}

	logCloser, err := logger.Setup(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("error setting up logger: %w", err)
	}
	a := &app{cfg: cfg, closers: []io.Closer{logCloser}}

	if cfg.Catalog.Redis.Enabled {
		client, err := redis.NewClient(ctx, cfg.Catalog.Redis.URL)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, client)
		a.source = catalog.NewRedisSource(client, cfg.Catalog.Redis.Key)
		log.Info().Str("key", cfg.Catalog.Redis.Key).Msg("Reading catalog from Redis")
	} else {
		a.source = catalog.NewFileSource(cfg.Catalog.Path)
		log.Info().Str("path", cfg.Catalog.Path).Msg("Reading catalog from file")
	}
	return a, nil
}

// train fits a fresh engine on field, or on the configured field when empty.
func (a *app) train(ctx context.Context, field string) (*core.Engine, *tfidf.Model, time.Time, error) {
	if field == "" {
		field = a.cfg.Engine.Field
	}
	start := time.Now()
	engine := core.NewEngine(a.source, a.cfg.Engine)
	model, err := engine.Train(ctx, field, a.cfg.Engine.Vectorizer)
	if err != nil {
		return nil, nil, start, fmt.Errorf("training failed: %w", err)
	}
	return engine, model, start, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to release resource")
		}
	}
}

func shortName(engine *core.Engine) func(int) string {
	return func(id int) string {
		p, err := engine.Product(id)
		if err != nil {
			return ""
		}
		return productLabel(p)
	}
}

func productLabel(p models.Product) string {
	if p.ShortName != "" {
		return p.ShortName
	}
	return p.FullName
}
