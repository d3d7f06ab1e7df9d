package app

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the runtime settings of the server.
type Config struct {
	ListenAddr  string
	JWTSecret   string
	TokenTTL    time.Duration
	AuthTimeout time.Duration
	LogLevel    string
}

// DefaultConfig returns the settings used when nothing is configured.
// The default JWT secret is for local development only; deployments set
// KURIER_JWT_SECRET.
func DefaultConfig() Config {
	return Config{
		ListenAddr:  ":4000",
		JWTSecret:   "dev-secret-change-me",
		TokenTTL:    7 * 24 * time.Hour,
		AuthTimeout: 10 * time.Second,
		LogLevel:    "info",
	}
}

// fileConfig maps config.toml keys onto Config.
type fileConfig struct {
	ListenAddr  string `toml:"listen_addr"`
	JWTSecret   string `toml:"jwt_secret"`
	TokenTTL    string `toml:"token_ttl"`
	AuthTimeout string `toml:"auth_timeout"`
	LogLevel    string `toml:"log_level"`
}

// LoadConfig overlays defaults with the TOML file at path (when path is
// non-empty) and then with environment variables.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		var raw fileConfig
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		if meta.IsDefined("listen_addr") {
			cfg.ListenAddr = raw.ListenAddr
		}
		if meta.IsDefined("jwt_secret") {
			cfg.JWTSecret = raw.JWTSecret
		}
		if meta.IsDefined("token_ttl") {
			if cfg.TokenTTL, err = time.ParseDuration(raw.TokenTTL); err != nil {
				return Config{}, fmt.Errorf("token_ttl: %w", err)
			}
		}
		if meta.IsDefined("auth_timeout") {
			if cfg.AuthTimeout, err = time.ParseDuration(raw.AuthTimeout); err != nil {
				return Config{}, fmt.Errorf("auth_timeout: %w", err)
			}
		}
		if meta.IsDefined("log_level") {
			cfg.LogLevel = raw.LogLevel
		}
	}

	if v := os.Getenv("KURIER_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("KURIER_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("KURIER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
