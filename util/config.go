package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	DBSource          string        `mapstructure:"DB_SOURCE"`
	MigrationURL      string        `mapstructure:"MIGRATION_URL"`
	RedisAddress      string        `mapstructure:"REDIS_ADDRESS"`
	RenderCacheTTL    time.Duration `mapstructure:"RENDER_CACHE_TTL"`
	MaxInputBytes     int           `mapstructure:"MAX_INPUT_BYTES"`
	MaxWarnings       int           `mapstructure:"MAX_WARNINGS"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
}

// LoadConfig reads app.env from the path and lets the environment override it.
// A missing file is not an error, the environment and the defaults are used then.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("RENDER_CACHE_TTL", time.Hour)
	v.SetDefault("MAX_INPUT_BYTES", 64<<10)
	v.SetDefault("MAX_WARNINGS", 100)
	v.SetDefault("ALLOWED_ORIGINS", []string{"*"})

	// AutomaticEnv only sees keys viper already knows about
	for _, key := range []string{"DB_SOURCE", "MIGRATION_URL", "REDIS_ADDRESS"} {
		if err = v.BindEnv(key); err != nil {
			return
		}
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			err = fmt.Errorf("failed to read config file: %w", err)
			return
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		err = fmt.Errorf("failed to decode config: %w", err)
		return
	}

	err = config.Validate()
	return
}

// Validate checks the values which would make the service misbehave silently.
func (config *Config) Validate() error {
	if config.MaxInputBytes <= 0 {
		return fmt.Errorf("%w: MAX_INPUT_BYTES must be positive, got %d", ErrInvalidConfig, config.MaxInputBytes)
	}

	if config.MaxWarnings < 0 {
		return fmt.Errorf("%w: MAX_WARNINGS must be non-negative, got %d", ErrInvalidConfig, config.MaxWarnings)
	}

	if config.RenderCacheTTL < 0 {
		return fmt.Errorf("%w: RENDER_CACHE_TTL must be non-negative, got %s", ErrInvalidConfig, config.RenderCacheTTL)
	}

	return nil
}

// IsDevelopment reports whether human-friendly logging should be used.
func (config *Config) IsDevelopment() bool {
	return config.Environment == "development"
}
