package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Veraticus/the-income-must-flow/internal/config"
	"github.com/Veraticus/the-income-must-flow/internal/income"
	"github.com/Veraticus/the-income-must-flow/internal/tui"
	"github.com/Veraticus/the-income-must-flow/internal/tui/themes"
	"github.com/spf13/viper"
)

// runTUI opens the interactive app, optionally starting on the add screen.
func runTUI(ctx context.Context, screen tui.Screen) error {
	// The alt screen owns the terminal, so logs go to a file.
	if viper.GetString("logging.file") == "" {
		dir, err := config.DataDir()
		if err != nil {
			return fmt.Errorf("failed to resolve data directory: %w", err)
		}
		f, err := openLogFile(filepath.Join(dir, "income.log"))
		if err != nil {
			return err
		}
		if err := setupLogging(f); err != nil {
			return fmt.Errorf("failed to setup logging: %w", err)
		}
	}

	uiCfg, err := config.LoadUIConfig()
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	tokens, err := newTokenProvider()
	if err != nil {
		return err
	}
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	app, err := tui.New(ctx,
		tui.WithStore(store),
		tui.WithTokens(tokens),
		tui.WithAPI(client),
		tui.WithTheme(themes.GetTheme(viper.GetString("ui.theme"))),
		tui.WithPickerMode(income.PickerMode(uiCfg.DatePicker)),
		tui.WithDismissDelay(uiCfg.DismissDelay),
		tui.WithInitialScreen(screen),
		tui.WithRecording(viper.GetBool("ui.record")),
	)
	if err != nil {
		return err
	}

	return app.Run()
}
