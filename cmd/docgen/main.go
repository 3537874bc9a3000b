package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"

	"github.com/JaimeStill/chat-api-docs/internal/api"
	"github.com/JaimeStill/chat-api-docs/internal/config"
	"github.com/JaimeStill/chat-api-docs/internal/storage"
	"github.com/JaimeStill/chat-api-docs/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "docgen: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Finalize(); err != nil {
		return fmt.Errorf("finalize config: %w", err)
	}

	logger := logging.New(&cfg.Logging, os.Stderr).With("build_id", uuid.NewString())

	doc, err := api.Build(logger)
	if err != nil {
		return fmt.Errorf("build document: %w", err)
	}

	spec := doc.Spec(&cfg.OpenAPI)
	path := cfg.Output.ResolvePath(cfg.Env())
	store, err := storage.New(filepath.Dir(path), logger)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}

	written, err := writeSpec(ctx, spec, &cfg.Output, store, filepath.Base(path))
	if err != nil {
		return err
	}

	if written {
		logger.Info("spec written", "path", path)
	} else {
		logger.Info("spec unchanged", "path", path)
	}

	if cfg.Preview.Enabled {
		return preview(ctx, &cfg.Preview, spec, logger)
	}
	return nil
}
