package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Veraticus/the-income-must-flow/internal/api"
	"github.com/Veraticus/the-income-must-flow/internal/auth"
	"github.com/Veraticus/the-income-must-flow/internal/config"
	"github.com/Veraticus/the-income-must-flow/internal/income"
	"github.com/Veraticus/the-income-must-flow/internal/service"
	"github.com/Veraticus/the-income-must-flow/internal/storage"
	"github.com/spf13/viper"
)

// databasePath returns the configured database path with ~ and $VARS expanded.
func databasePath() (string, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dir, err := config.DataDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve data directory: %w", err)
		}
		return filepath.Join(dir, "income.db"), nil
	}
	return config.ExpandPath(dbPath), nil
}

// initStorage opens the local finances store and brings its schema up to date.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath, err := databasePath()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// tokenPath is where `income auth login` keeps the access token.
func tokenPath() (string, error) {
	if p := viper.GetString("auth.token_file"); p != "" {
		return config.ExpandPath(p), nil
	}
	return auth.DefaultTokenPath()
}

// newTokenProvider prefers a configured token (auth.token or INCOME_AUTH_TOKEN)
// and falls back to the saved token file.
func newTokenProvider() (service.TokenProvider, error) {
	path, err := tokenPath()
	if err != nil {
		return nil, err
	}
	return auth.NewChainProvider(
		auth.NewStaticProvider(viper.GetString("auth.token")),
		auth.NewFileProvider(path),
	), nil
}

func newAPIClient() (*api.Client, error) {
	cfg, err := config.LoadAPIConfig()
	if err != nil {
		return nil, err
	}
	return api.NewClient(cfg.BaseURL, api.WithTimeout(cfg.Timeout)), nil
}

// newWorkflow builds a workflow for non-interactive commands.
func newWorkflow(store service.FinancesStore, notifier service.Notifier) (*income.Workflow, error) {
	tokens, err := newTokenProvider()
	if err != nil {
		return nil, err
	}
	client, err := newAPIClient()
	if err != nil {
		return nil, err
	}
	return income.NewWorkflow(income.Deps{
		Tokens:   tokens,
		API:      client,
		Store:    store,
		Notifier: notifier,
	}, income.WithDismissDelay(0))
}
