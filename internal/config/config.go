// Package config loads SDK configuration from file and environment: the API
// key, per-model endpoint overrides, timeout and log settings.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	// APIKey authenticates against the backends. Supports the "ENV:VAR"
	// indirection so config files can point at an environment variable
	// instead of embedding the key.
	APIKey string `mapstructure:"api_key"`

	// TimeoutSeconds bounds each HTTP request. Zero means the default.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=0"`

	// Endpoints overrides built-in model endpoints, keyed by model key
	// (e.g. "kokoro").
	Endpoints map[string]string `mapstructure:"endpoints" validate:"dive,url"`

	Log LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json console"`
}

const DefaultTimeoutSeconds = 30

// Load reads configuration from hathora.yaml (working directory or
// ~/.hathora), layered under HATHORA_* environment variables. A missing
// config file is fine; a malformed one is not.
func Load() (*Config, error) {
	// Load .env if present
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("hathora")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home + "/.hathora")
	}

	v.SetDefault("timeout_seconds", DefaultTimeoutSeconds)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix("HATHORA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("api_key") // HATHORA_API_KEY

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Resolve API key indirection
	if strings.HasPrefix(cfg.APIKey, "ENV:") {
		cfg.APIKey = os.Getenv(strings.TrimPrefix(cfg.APIKey, "ENV:"))
	}

	if err := Check(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
