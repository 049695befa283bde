// Package config loads application configuration from a YAML file and
// environment variables. Environment variables win; a .env file in the
// working directory is honored for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`

	// DBPath is the SQLite database file. Empty means the default
	// per-user data path.
	DBPath string `yaml:"db_path"`

	// JWTSecret signs session tokens. Required to run the server.
	JWTSecret string `yaml:"jwt_secret"`

	// TokenTTL is how long issued tokens stay valid.
	TokenTTL time.Duration `yaml:"token_ttl"`

	// QuestionCount is the default number of questions per session.
	QuestionCount int `yaml:"question_count"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		Addr:          ":8080",
		TokenTTL:      24 * time.Hour,
		QuestionCount: 5,
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty or missing), then environment variables.
func Load(path string) (Config, error) {
	// Missing .env is fine; it only exists in development.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	applyEnv(&cfg)

	if cfg.QuestionCount < 1 {
		return cfg, fmt.Errorf("question count must be at least 1, got %d", cfg.QuestionCount)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PREPWISE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("PREPWISE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PREPWISE_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("PREPWISE_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TokenTTL = d
		}
	}
	if v := os.Getenv("PREPWISE_QUESTION_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.QuestionCount = n
		}
	}
}
