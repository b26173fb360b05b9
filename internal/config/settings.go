package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"

	"github.com/benthev/vinylfinder/internal/discogs"
	internalhttp "github.com/benthev/vinylfinder/internal/http"
)

// Settings holds all configuration options.
type Settings struct {
	API  APISettings  `mapstructure:"api"`
	Scan ScanSettings `mapstructure:"scan"`
}

// APISettings configures the outbound catalog API access.
type APISettings struct {
	// BaseURL is the catalog API host.
	BaseURL string `mapstructure:"base_url"`

	// UserAgent is the identity header sent on every request.
	UserAgent string `mapstructure:"user_agent"`

	// Token is the personal access token. Usually supplied via the
	// DISCOGS_API_KEY environment variable rather than the config file.
	Token string `mapstructure:"token"`

	// MinRequestDelay is the minimum gap between outbound requests,
	// in seconds.
	MinRequestDelay float64 `mapstructure:"min_request_delay"`

	// MaxRetries caps attempts against a throttled endpoint.
	MaxRetries int `mapstructure:"max_retries"`

	// RequestTimeout is the per-request timeout in seconds.
	RequestTimeout float64 `mapstructure:"request_timeout"`
}

// ScanSettings configures the classification run.
type ScanSettings struct {
	// Genre is the default genre filter. Empty disables filtering; the
	// CLI and a genre= parameter in the seller URL can override it.
	Genre string `mapstructure:"genre"`

	// InventoryPageSize is the per_page value for inventory walks.
	InventoryPageSize int `mapstructure:"inventory_page_size"`

	// VersionsPageSize is the per_page value for version-list walks.
	VersionsPageSize int `mapstructure:"versions_page_size"`
}

// DefaultSettings returns settings with default values: the production
// API host, one request per second, five retry attempts, the API's
// maximum page sizes, and an "Electronic" genre filter.
func DefaultSettings() *Settings {
	return &Settings{
		API: APISettings{
			BaseURL:         discogs.DefaultBaseURL,
			UserAgent:       "VinylOnlyFinder/1.0",
			MinRequestDelay: 1.0,
			MaxRetries:      5,
			RequestTimeout:  30.0,
		},
		Scan: ScanSettings{
			Genre:             "Electronic",
			InventoryPageSize: 100,
			VersionsPageSize:  500,
		},
	}
}

// Load reads settings from a YAML config file plus the environment.
//
// When path is empty, config.yaml is searched for in the per-OS config
// directory (~/.config/vinylfinder on Unix) and the working directory;
// a missing file is not an error and yields the defaults. An explicit
// path that cannot be read is an error.
//
// The DISCOGS_API_KEY environment variable always binds to api.token.
func Load(path string) (*Settings, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("api.base_url", defaults.API.BaseURL)
	v.SetDefault("api.user_agent", defaults.API.UserAgent)
	v.SetDefault("api.token", "")
	v.SetDefault("api.min_request_delay", defaults.API.MinRequestDelay)
	v.SetDefault("api.max_retries", defaults.API.MaxRetries)
	v.SetDefault("api.request_timeout", defaults.API.RequestTimeout)
	v.SetDefault("scan.genre", defaults.Scan.Genre)
	v.SetDefault("scan.inventory_page_size", defaults.Scan.InventoryPageSize)
	v.SetDefault("scan.versions_page_size", defaults.Scan.VersionsPageSize)

	if err := v.BindEnv("api.token", "DISCOGS_API_KEY"); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// defaultConfigPath returns the per-OS config directory.
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "vinylfinder")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "vinylfinder")
	}
}

// ToFetchConfig converts settings to the fetch client configuration.
func (s *Settings) ToFetchConfig() internalhttp.Config {
	return internalhttp.Config{
		UserAgent:  s.API.UserAgent,
		Token:      s.API.Token,
		MinDelay:   time.Duration(s.API.MinRequestDelay * float64(time.Second)),
		MaxRetries: s.API.MaxRetries,
		Timeout:    time.Duration(s.API.RequestTimeout * float64(time.Second)),
	}
}

// ToDiscogsConfig converts settings to the API client configuration.
// The Logf sink is left for the caller to wire.
func (s *Settings) ToDiscogsConfig() discogs.Config {
	return discogs.Config{
		BaseURL:           s.API.BaseURL,
		InventoryPageSize: s.Scan.InventoryPageSize,
		VersionsPageSize:  s.Scan.VersionsPageSize,
	}
}
