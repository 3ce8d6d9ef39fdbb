package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task store
	Seed      SeedConfig
	Store     StoreConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SeedConfig locates the initial task payload. File wins over URL; with
// neither set the store starts from generated tasks.
type SeedConfig struct {
	URL             string
	File            string
	Timeout         time.Duration
	FallbackCount   int
	FallbackOnError bool
	OAuth2          OAuth2Config
}

// OAuth2Config enables the client-credentials flow for the seed URL.
type OAuth2Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

type StoreConfig struct {
	ViewCacheSize int
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Seed
	cfg.Seed.URL = viper.GetString("seed.url")
	cfg.Seed.File = viper.GetString("seed.file")
	cfg.Seed.Timeout = viper.GetDuration("seed.timeout")
	cfg.Seed.FallbackCount = viper.GetInt("seed.fallback_count")
	cfg.Seed.FallbackOnError = viper.GetBool("seed.fallback_on_error")
	if seedURL := viper.GetString("seed_url"); seedURL != "" {
		cfg.Seed.URL = seedURL
	}

	cfg.Seed.OAuth2.ClientID = viper.GetString("seed.oauth2.client_id")
	cfg.Seed.OAuth2.ClientSecret = viper.GetString("seed.oauth2.client_secret")
	cfg.Seed.OAuth2.TokenURL = viper.GetString("seed.oauth2.token_url")
	if secret := viper.GetString("seed_oauth2_client_secret"); secret != "" {
		cfg.Seed.OAuth2.ClientSecret = secret
	}
	cfg.Seed.OAuth2.Scopes = splitList(viper.GetStringSlice("seed.oauth2.scopes"))

	// Store
	cfg.Store.ViewCacheSize = viper.GetInt("store.view_cache_size")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("seed.timeout", "10s")
	viper.SetDefault("seed.fallback_count", 20)
	viper.SetDefault("seed.fallback_on_error", false)
	viper.SetDefault("store.view_cache_size", 8)
	viper.SetDefault("rate_limit.requests_per_min", 120)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port out of range: %d", cfg.HTTPServer.Port)
	}
	if cfg.Seed.Timeout <= 0 {
		return fmt.Errorf("seed.timeout must be positive")
	}
	if cfg.Seed.FallbackCount < 0 {
		return fmt.Errorf("seed.fallback_count must not be negative")
	}
	o := cfg.Seed.OAuth2
	if o.ClientID != "" && o.TokenURL == "" {
		return fmt.Errorf("seed.oauth2.token_url is required when client_id is set")
	}
	return nil
}

// splitList flattens comma-separated entries, since env vars arrive as a
// single string.
func splitList(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, s := range strings.Split(r, ",") {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
