package main

import (
	"context"
	"fmt"
	"io"

	"book-curator/backend/internal/agent"
	"book-curator/backend/internal/catalog"
	"book-curator/backend/internal/config"

	"github.com/goccy/go-json"
)

func loadCatalog() (*config.Config, *catalog.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForCatalog(); err != nil {
		return nil, nil, fmt.Errorf("validate config: %w", err)
	}

	client, err := catalog.NewClient(catalog.Config{
		APIKey:  cfg.AladinAPIKey,
		BaseURL: cfg.AladinBaseURL,
		Timeout: cfg.CatalogTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create catalog client: %w", err)
	}
	return cfg, client, nil
}

func loadCurator(ctx context.Context) (*agent.Curator, error) {
	cfg, client, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	completer, err := agent.NewCompleter(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create completer: %w", err)
	}
	return agent.NewCurator(client, completer), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
