package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/common"
	"github.com/spf13/viper"
)

// DefaultAPIPort is the fixed port the finance backend listens on.
const DefaultAPIPort = 8000

// DefaultAPIHost is used when api.host is not configured.
const DefaultAPIHost = "localhost"

// APIConfig describes how to reach the finance backend.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration // zero leaves the transport default in place
}

// BaseURLForHost builds the backend URL from a host or IP and the fixed port.
func BaseURLForHost(host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		host = DefaultAPIHost
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(DefaultAPIPort))
}

// LoadAPIConfig reads the api.* keys from viper.
// api.base_url wins over api.host when both are set.
func LoadAPIConfig() (APIConfig, error) {
	cfg := APIConfig{
		BaseURL: BaseURLForHost(viper.GetString("api.host")),
		Timeout: viper.GetDuration("api.timeout"),
	}

	if v := strings.TrimSpace(viper.GetString("api.base_url")); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}

	if err := cfg.Validate(); err != nil {
		return APIConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the base URL is an absolute http(s) URL.
func (c APIConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: api base url %q: %v", common.ErrInvalidConfig, c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: api base url %q must use http or https", common.ErrInvalidConfig, c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: api base url %q has no host", common.ErrInvalidConfig, c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: api timeout must not be negative", common.ErrInvalidConfig)
	}
	return nil
}
