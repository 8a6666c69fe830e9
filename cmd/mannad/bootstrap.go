package main

import (
	"log/slog"
	"time"

	"manna/internal/archive"
	"manna/internal/batch"
	"manna/internal/config"
	"manna/internal/pipeline"
	"manna/internal/services/gemini"
)

// deps bundles the wired generation stack.
type deps struct {
	Gemini     *gemini.Client
	Controller *batch.Controller
	Archive    *archive.Store
}

// Close releases resources held by the stack.
func (d *deps) Close() {
	if d.Archive != nil {
		_ = d.Archive.Close()
	}
}

// bootstrap wires the generation client, retry pipeline, archive, and batch
// controller from configuration.
func bootstrap(cfg *config.Config, logger *slog.Logger) (*deps, error) {
	client := gemini.NewClient(gemini.Config{
		APIKey:         cfg.Gemini.APIKey,
		BaseURL:        cfg.Gemini.BaseURL,
		Model:          cfg.Gemini.Model,
		TimeoutSeconds: cfg.Gemini.TimeoutSeconds,
	})

	orchestrator := pipeline.NewOrchestrator(client, logger,
		pipeline.WithAttempts(cfg.Generation.Attempts),
		pipeline.WithBackoff(
			time.Duration(cfg.Generation.BackoffBaseSeconds)*time.Second,
			time.Duration(cfg.Generation.BackoffCapSeconds)*time.Second,
		),
		pipeline.WithStrictParsing(cfg.Generation.StrictParsing),
	)

	d := &deps{Gemini: client}
	batchOpts := []batch.Option{}
	if cfg.Archive.Enabled {
		store, err := archive.Open(cfg)
		if err != nil {
			return nil, err
		}
		d.Archive = store
		batchOpts = append(batchOpts, batch.WithArchive(store))
	} else {
		logger.Info("history archive disabled")
	}

	d.Controller = batch.New(cfg, logger, orchestrator, batchOpts...)
	return d, nil
}
