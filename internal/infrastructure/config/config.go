package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Selection SelectionConfig `yaml:"selection"`
	CORS      CORSConfig      `yaml:"cors"`
	Upload    UploadConfig    `yaml:"upload"`
}

type ServerConfig struct {
	Address         string        `yaml:"address"          env:"SERVER_ADDRESS"          env-default:":5001"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"        env-default:"10s"`
}

type DatabaseConfig struct {
	Path        string        `yaml:"path"         env:"DATABASE_PATH"         env-default:"quickreview.db"`
	BusyTimeout time.Duration `yaml:"busy_timeout" env:"DATABASE_BUSY_TIMEOUT" env-default:"5s"`
	DefaultBank string        `yaml:"default_bank" env:"DEFAULT_BANK_NAME"     env-default:"Default"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SelectionConfig holds the relative odds of drawing each accuracy tier.
type SelectionConfig struct {
	WeightLow  float64 `yaml:"weight_low"  env:"SELECTION_WEIGHT_LOW"  env-default:"5"`
	WeightMid  float64 `yaml:"weight_mid"  env:"SELECTION_WEIGHT_MID"  env-default:"3"`
	WeightHigh float64 `yaml:"weight_high" env:"SELECTION_WEIGHT_HIGH" env-default:"2"`
}

type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}

type UploadConfig struct {
	MaxBodyBytes int64 `yaml:"max_body_bytes" env:"UPLOAD_MAX_BODY_BYTES" env-default:"5242880"`
}

// Load reads configuration with priority ENV > YAML > defaults.
// A .env file in the working directory is loaded into the environment first.
// The YAML path comes from CONFIG_PATH (fallback "./config.yaml"); a missing
// fallback file is not an error.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Server.Address) == "" {
		errs = append(errs, errors.New("server.address is required"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, errors.New("database.path is required"))
	}
	if strings.TrimSpace(c.Database.DefaultBank) == "" {
		errs = append(errs, errors.New("database.default_bank is required"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", c.Log.Format))
	}
	if c.Selection.WeightLow <= 0 || c.Selection.WeightMid <= 0 || c.Selection.WeightHigh <= 0 {
		errs = append(errs, errors.New("selection weights must be positive"))
	}
	if c.Upload.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("upload.max_body_bytes must be positive"))
	}

	return errors.Join(errs...)
}
