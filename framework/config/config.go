// Package config loads the application configuration from a YAML document
// and overlays it with key/value property sources: .env files first, then
// process environment variables (highest precedence). It is a standalone
// consumer and never resolves values through the inject engine.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the central typed configuration struct.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Manage ManageConfig `yaml:"manage"`
	Log    LogConfig    `yaml:"log"`
}

type AppConfig struct {
	Name  string `yaml:"name"`
	Env   string `yaml:"env"` // local | production | testing
	Debug bool   `yaml:"debug"`
}

// ManageConfig configures the management HTTP surface.
type ManageConfig struct {
	Port string `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error | silent
}

func defaults() *Config {
	return &Config{
		App:    AppConfig{Name: "go-inject", Env: "local", Debug: true},
		Manage: ManageConfig{Port: "8000"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load builds a Config: defaults, then the YAML document at path (a missing
// file is tolerated), then .env files, then environment variables. The
// result is validated before being returned.
//
//	cfg, err := config.Load("config.yaml")
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Optional file, keep defaults.
		case err != nil:
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("config: parsing %s: %w", path, err)
			}
		}
	}

	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	cfg.App.Name = env("APP_NAME", cfg.App.Name)
	cfg.App.Env = env("APP_ENV", cfg.App.Env)
	cfg.App.Debug = envBool("APP_DEBUG", cfg.App.Debug)
	cfg.Manage.Port = env("MANAGE_PORT", cfg.Manage.Port)
	cfg.Log.Level = env("LOG_LEVEL", cfg.Log.Level)

	if errs := cfg.validate(); errs.Has() {
		return nil, fmt.Errorf("config: %s", errs)
	}
	return cfg, nil
}

func (c *Config) validate() Errors {
	return Validate(map[string]string{
		"app.env":     c.App.Env,
		"manage.port": c.Manage.Port,
		"log.level":   c.Log.Level,
	}, Rules{
		"app.env":     "required|in:local,production,testing",
		"manage.port": "required|numeric",
		"log.level":   "required|in:debug,info,warn,error,silent",
	})
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
