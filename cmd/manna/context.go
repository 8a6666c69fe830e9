package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"manna/internal/archive"
	"manna/internal/batch"
	"manna/internal/config"
	"manna/internal/logging"
	"manna/internal/pipeline"
	"manna/internal/services/gemini"
)

type commandContext struct {
	configFlag *string
	addrFlag   *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, addrFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		addrFlag:   addrFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// apiAddr resolves the daemon address: the --addr flag wins over the
// configured bind address.
func (c *commandContext) apiAddr() (string, error) {
	if c.addrFlag != nil && strings.TrimSpace(*c.addrFlag) != "" {
		return strings.TrimSpace(*c.addrFlag), nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.Paths.APIBind, nil
}

func (c *commandContext) newLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
}

// runtime is the locally wired generation stack for commands that run
// batches without a daemon.
type runtime struct {
	cfg        *config.Config
	controller *batch.Controller
	archive    *archive.Store
}

func (r *runtime) Close() {
	if r.archive != nil {
		_ = r.archive.Close()
	}
}

func (c *commandContext) newRuntime() (*runtime, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.newLogger()
	if err != nil {
		return nil, err
	}

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

	rt := &runtime{cfg: cfg}
	opts := []batch.Option{}
	if cfg.Archive.Enabled {
		store, err := archive.Open(cfg)
		if err != nil {
			return nil, err
		}
		rt.archive = store
		opts = append(opts, batch.WithArchive(store))
	}
	rt.controller = batch.New(cfg, logger, orchestrator, opts...)
	return rt, nil
}
