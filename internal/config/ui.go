package config

import (
	"fmt"
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/common"
	"github.com/spf13/viper"
)

// DefaultDismissDelay is how long the add screen stays up after a save.
const DefaultDismissDelay = time.Second

// UIConfig holds interactive screen settings.
type UIConfig struct {
	DatePicker   string // auto, modal or inline
	DismissDelay time.Duration
}

// LoadUIConfig reads the ui.* keys from viper.
func LoadUIConfig() (UIConfig, error) {
	cfg := UIConfig{
		DatePicker:   viper.GetString("ui.date_picker"),
		DismissDelay: DefaultDismissDelay,
	}
	if cfg.DatePicker == "" {
		cfg.DatePicker = "auto"
	}
	if viper.IsSet("ui.dismiss_delay") {
		cfg.DismissDelay = viper.GetDuration("ui.dismiss_delay")
	}

	switch cfg.DatePicker {
	case "auto", "modal", "inline":
	default:
		return UIConfig{}, fmt.Errorf("%w: ui.date_picker must be auto, modal or inline, got %q",
			common.ErrInvalidConfig, cfg.DatePicker)
	}
	if cfg.DismissDelay < 0 {
		return UIConfig{}, fmt.Errorf("%w: ui.dismiss_delay must not be negative", common.ErrInvalidConfig)
	}
	return cfg, nil
}
