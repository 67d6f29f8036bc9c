package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres PostgresConfig  `yaml:"postgres"`
	NATS     NATSConfig      `yaml:"nats"`
	HTTP     HTTPConfig      `yaml:"http"`
	Metrics  MetricsConfig   `yaml:"metrics"`
	Sweep    SweepConfig     `yaml:"sweep"`
	Variants []VariantConfig `yaml:"variants"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// HTTPConfig holds the API listener configuration.
type HTTPConfig struct {
	Address string `yaml:"address"`
}

// MetricsConfig holds the Prometheus listener configuration.
type MetricsConfig struct {
	Address string `yaml:"address"` // optional; empty disables metrics
}

// SweepConfig controls the background deadline sweep.
type SweepConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// VariantConfig declares one playable game variant. Variants are
// resolved once at startup; games reference them by name.
type VariantConfig struct {
	Name                string        `yaml:"name"`
	TimeoutAction       string        `yaml:"timeout_action"` // no_action|auto_skip|auto_eliminate
	SettlementThreshold int           `yaml:"settlement_threshold"`
	TurnWindow          time.Duration `yaml:"turn_window"`
	ExplicitElimination bool          `yaml:"explicit_elimination"`
}

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Metrics.Address = v
	}
	if v := os.Getenv("SWEEP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Sweep.Interval = d
		}
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	var cfg Config

	// Load Postgres DSN
	cfg.Postgres.DSN = os.Getenv("DATABASE_URL")
	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	// Load NATS URL
	cfg.NATS.URL = os.Getenv("NATS_URL")
	if cfg.NATS.URL == "" {
		return nil, fmt.Errorf("NATS_URL environment variable not set")
	}

	cfg.HTTP.Address = os.Getenv("HTTP_ADDRESS")
	cfg.Metrics.Address = os.Getenv("METRICS_ADDRESS") // optional; empty disables metrics

	sweepInterval := os.Getenv("SWEEP_INTERVAL")
	if sweepInterval != "" {
		d, err := time.ParseDuration(sweepInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid SWEEP_INTERVAL value: %v", err)
		}
		cfg.Sweep.Interval = d
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.Sweep.Interval == 0 {
		cfg.Sweep.Interval = time.Minute
	}
	if len(cfg.Variants) == 0 {
		cfg.Variants = []VariantConfig{
			{
				Name:                "roulette",
				TimeoutAction:       "auto_skip",
				SettlementThreshold: 1,
				TurnWindow:          24 * time.Hour,
			},
		}
	}
}

// ResolveVariants validates the configured variants and maps them into
// their domain policies.
func (c *Config) ResolveVariants() (map[string]gamedomain.VariantPolicy, error) {
	resolved := make(map[string]gamedomain.VariantPolicy, len(c.Variants))
	for _, v := range c.Variants {
		if v.Name == "" {
			return nil, fmt.Errorf("variant with empty name")
		}
		if _, dup := resolved[v.Name]; dup {
			return nil, fmt.Errorf("duplicate variant %q", v.Name)
		}
		if v.SettlementThreshold < 1 {
			return nil, fmt.Errorf("variant %q: settlement_threshold must be at least 1", v.Name)
		}
		if v.TurnWindow <= 0 {
			return nil, fmt.Errorf("variant %q: turn_window must be positive", v.Name)
		}

		var action gamedomain.TimeoutAction
		switch v.TimeoutAction {
		case "", "no_action":
			action = gamedomain.TimeoutNoAction
		case "auto_skip":
			action = gamedomain.TimeoutAutoSkip
		case "auto_eliminate":
			action = gamedomain.TimeoutAutoEliminate
		default:
			return nil, fmt.Errorf("variant %q: unknown timeout_action %q", v.Name, v.TimeoutAction)
		}

		resolved[v.Name] = gamedomain.VariantPolicy{
			Name:                v.Name,
			TimeoutAction:       action,
			SettlementThreshold: v.SettlementThreshold,
			TurnWindow:          v.TurnWindow,
			ExplicitElimination: v.ExplicitElimination,
		}
	}
	return resolved, nil
}
