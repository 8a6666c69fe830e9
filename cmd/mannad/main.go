// Command mannad runs the devotional generation daemon: it owns the batch
// controller and serves the HTTP API.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"manna/internal/config"
	"manna/internal/logging"
	"manna/internal/server"
)

func main() {
	configFlag := flag.String("config", "", "configuration file path")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("ensure directories: %v", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		LogDir: cfg.Paths.LogDir,
	})
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	deps, err := bootstrap(cfg, logger)
	if err != nil {
		logger.Error("bootstrap failed", logging.Error(err))
		return
	}
	defer deps.Close()

	opts := []server.Option{server.WithHealthChecker(deps.Gemini)}
	if deps.Archive != nil {
		opts = append(opts, server.WithHistory(deps.Archive))
	}
	srv := server.New(cfg, logger, deps.Controller, opts...)

	errs := make(chan error, 1)
	go func() { errs <- srv.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("mannad shutting down")
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Warn("shutdown", logging.Error(err))
		}
		<-errs
	case err := <-errs:
		if err != nil {
			logger.Error("api server failed", logging.Error(err))
		}
	}
}
