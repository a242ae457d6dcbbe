package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/combo-tracker/internal/domain/combo"
	dnderr "github.com/KirkDiggler/combo-tracker/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Combo ComboConfig `envPrefix:"COMBO_"`
	Redis RedisConfig
}

// ComboConfig holds timing and chain settings
type ComboConfig struct {
	GlobalCooldown   time.Duration `env:"GLOBAL_COOLDOWN" envDefault:"2500ms"`
	AnimationDelay   time.Duration `env:"ANIMATION_DELAY" envDefault:"400ms"`
	IconRefreshDelay time.Duration `env:"ICON_REFRESH_DELAY" envDefault:"100ms"`
	CastBuffer       time.Duration `env:"CAST_BUFFER" envDefault:"100ms"`
	ChainsFile       string        `env:"CHAINS_FILE" envDefault:"chains.yaml"`
	Verbose          bool          `env:"VERBOSE"`
}

// RedisConfig holds Redis-specific configuration. An empty URL keeps
// progress in memory.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeValidation, "parse env")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values the environment parser cannot
func (c *Config) Validate() error {
	durations := map[string]time.Duration{
		"COMBO_GLOBAL_COOLDOWN":    c.Combo.GlobalCooldown,
		"COMBO_ANIMATION_DELAY":    c.Combo.AnimationDelay,
		"COMBO_ICON_REFRESH_DELAY": c.Combo.IconRefreshDelay,
		"COMBO_CAST_BUFFER":        c.Combo.CastBuffer,
	}
	for name, d := range durations {
		if d < 0 {
			return dnderr.Validationf("%s cannot be negative, got %s", name, d).WithMeta("variable", name)
		}
	}

	if c.Combo.ChainsFile == "" {
		return dnderr.Validationf("COMBO_CHAINS_FILE is required")
	}

	if c.Redis.URL != "" {
		if _, err := redis.ParseURL(c.Redis.URL); err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeValidation, "invalid REDIS_URL")
		}
	}

	return nil
}

// Settings converts the timing values into group settings
func (c *Config) Settings() combo.Settings {
	return combo.Settings{
		GlobalCooldown:   c.Combo.GlobalCooldown,
		AnimationDelay:   c.Combo.AnimationDelay,
		IconRefreshDelay: c.Combo.IconRefreshDelay,
		CastBuffer:       c.Combo.CastBuffer,
		Verbose:          c.Combo.Verbose,
	}
}

// RedisOptions returns client options, or nil when Redis is not configured
func (c *Config) RedisOptions() (*redis.Options, error) {
	if c.Redis.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(c.Redis.URL)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeValidation, "invalid REDIS_URL")
	}
	return opts, nil
}
