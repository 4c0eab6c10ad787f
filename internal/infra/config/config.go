package config

import (
	"fmt"

	"github.com/caarlos0/env"

	"github.com/mkaranasou/elevatorsim/internal/constants"
	"github.com/mkaranasou/elevatorsim/internal/domain"
)

// Config is the simulator's full configuration, per spec.md §6's
// "Three integer parameters" plus the ambient fields a complete repo
// needs (input source, logging, and the optional HTTP observation
// server). Grounded on the teacher's internal/infra/config/config.go
// struct-tag style (env:"..." envDefault:"..."), trimmed to this
// system's actual fields — the teacher's HTTP/circuit-breaker/CORS
// knobs belong to a live elevator service, not a simulator run.
type Config struct {
	NumberOfFloors        int    `env:"NUMBER_OF_FLOORS" envDefault:"10"`
	NumberOfElevators     int    `env:"NUMBER_OF_ELEVATORS" envDefault:"1"`
	MaxCapacityOfElevator int    `env:"MAX_CAPACITY_OF_ELEVATOR" envDefault:"5"`
	InputCSVPath          string `env:"INPUT_CSV_PATH"`
	LogLevel              string `env:"LOG_LEVEL" envDefault:"INFO"`

	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"false"`
	MetricsPath    string `env:"METRICS_PATH" envDefault:"/metrics"`
	HealthPath     string `env:"HEALTH_PATH" envDefault:"/health"`

	HTTPEnabled      bool   `env:"HTTP_ENABLED" envDefault:"false"`
	Port             int    `env:"HTTP_PORT" envDefault:"6660"`
	WebSocketEnabled bool   `env:"WEBSOCKET_ENABLED" envDefault:"false"`
	WebSocketPath    string `env:"WEBSOCKET_PATH" envDefault:"/ws/ticks"`
}

// Load parses Config from the environment, applying envDefault tags,
// then validates it.
func Load() (*Config, error) {
	cfg, err := ParseEnv()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseEnv applies envDefault tags without validating — callers that
// still need to overlay CLI flags (cmd/simulator) before a required
// field like InputCSVPath is known should call this instead of Load.
func ParseEnv() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}
	return &cfg, nil
}

// Validate checks Config against spec.md §6's configuration
// constraints: all three building parameters must be at least 1.
func (c *Config) Validate() error {
	if c.NumberOfFloors < 1 {
		return domain.NewValidationError("number of floors must be at least 1", nil).
			WithContext("number_of_floors", c.NumberOfFloors)
	}
	if c.NumberOfElevators < 1 {
		return domain.NewValidationError("number of elevators must be at least 1", nil).
			WithContext("number_of_elevators", c.NumberOfElevators)
	}
	if c.MaxCapacityOfElevator < 1 {
		return domain.NewValidationError("max capacity of elevator must be at least 1", nil).
			WithContext("max_capacity_of_elevator", c.MaxCapacityOfElevator)
	}
	if c.InputCSVPath == "" {
		return domain.NewValidationError("input csv path must be set", nil)
	}
	return nil
}

// ElevatorNamePrefix is the naming scheme for elevators built from
// this config, per the teacher's NamePrefix convention.
func (c *Config) ElevatorNamePrefix() string {
	return constants.DefaultElevatorNamePrefix
}
