package dormalloc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/javdevA/SmartDormCapstonePro/internal/logging"
	"github.com/javdevA/SmartDormCapstonePro/internal/metrics"
	"github.com/javdevA/SmartDormCapstonePro/roommate"
	"github.com/javdevA/SmartDormCapstonePro/simulation"
	"github.com/javdevA/SmartDormCapstonePro/types"
)

// SimulationConfig controls the multi-trial simulation runner.
type SimulationConfig struct {
	// Trials is the number of greedy trials per simulation.
	// Default: 100
	Trials int `yaml:"trials"`

	// Parallelism bounds concurrently running trials (0 = GOMAXPROCS).
	Parallelism int `yaml:"parallelism"`
}

// RoommateConfig controls roommate suggestions.
type RoommateConfig struct {
	// MaxPairs caps the number of suggestions returned.
	// Default: 10
	MaxPairs int `yaml:"maxPairs"`

	// MinScore is the lowest pair compatibility worth suggesting, in [0,100].
	// Default: 60
	MinScore int `yaml:"minScore"`
}

// MetricsConfig controls Prometheus instrumentation.
type MetricsConfig struct {
	// Enabled turns on the Prometheus collector.
	Enabled bool `yaml:"enabled"`

	// Namespace prefixes every metric name.
	// Default: "dormalloc"
	Namespace string `yaml:"namespace"`

	// Addr is the listen address for the /metrics endpoint served by dormsim.
	// Default: ":9090"
	Addr string `yaml:"addr"`
}

// Config is the configuration for the Engine.
type Config struct {
	// Strategy is the default strategy used by Engine.AllocateDefault.
	// Accepts "greedy", "random" or "priority". Default: greedy
	Strategy types.StrategyKind `yaml:"strategy"`

	// RandomizeOrder controls whether greedy allocation shuffles the student
	// processing order. Nil means true.
	RandomizeOrder *bool `yaml:"randomizeOrder"`

	// Seed fixes the simulation base seed (0 = fresh seed per run).
	Seed uint64 `yaml:"seed"`

	// LogLevel is one of debug, info, warn, error. Default: info
	LogLevel string `yaml:"logLevel"`

	Simulation SimulationConfig `yaml:"simulation"`
	Roommates  RoommateConfig   `yaml:"roommates"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	randomize := true

	return Config{
		Strategy:       types.KindGreedy,
		RandomizeOrder: &randomize,
		LogLevel:       "info",
		Simulation: SimulationConfig{
			Trials: simulation.DefaultTrials,
		},
		Roommates: RoommateConfig{
			MaxPairs: roommate.DefaultMaxPairs,
			MinScore: roommate.DefaultMinScore,
		},
		Metrics: MetricsConfig{
			Namespace: metrics.DefaultNamespace,
			Addr:      ":9090",
		},
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.RandomizeOrder == nil {
		cfg.RandomizeOrder = defaults.RandomizeOrder
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.Simulation.Trials == 0 {
		cfg.Simulation.Trials = defaults.Simulation.Trials
	}
	if cfg.Roommates.MaxPairs == 0 {
		cfg.Roommates.MaxPairs = defaults.Roommates.MaxPairs
	}
	if cfg.Roommates.MinScore == 0 {
		cfg.Roommates.MinScore = defaults.Roommates.MinScore
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = defaults.Metrics.Namespace
	}
	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = defaults.Metrics.Addr
	}
	// Note: Seed 0 and Parallelism 0 are meaningful, so no defaults apply
}

// Validate checks configuration constraints.
//
// Returns:
//   - error: ErrInvalidConfig (wrapped) describing the first violation, nil if valid
func (cfg *Config) Validate() error {
	if !cfg.Strategy.Valid() {
		return fmt.Errorf("strategy %d: %w", int(cfg.Strategy), ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("logLevel: %w: %w", ErrInvalidConfig, err)
	}
	if cfg.Simulation.Trials < 0 {
		return fmt.Errorf("simulation.trials must be >= 0, got %d: %w", cfg.Simulation.Trials, ErrInvalidConfig)
	}
	if cfg.Simulation.Parallelism < 0 {
		return fmt.Errorf("simulation.parallelism must be >= 0, got %d: %w", cfg.Simulation.Parallelism, ErrInvalidConfig)
	}
	if cfg.Roommates.MaxPairs < 0 {
		return fmt.Errorf("roommates.maxPairs must be >= 0, got %d: %w", cfg.Roommates.MaxPairs, ErrInvalidConfig)
	}
	if cfg.Roommates.MinScore < 0 || cfg.Roommates.MinScore > 100 {
		return fmt.Errorf("roommates.minScore must be within [0,100], got %d: %w", cfg.Roommates.MinScore, ErrInvalidConfig)
	}

	return nil
}

// ValidateWithWarnings logs warnings for legal but unusual values.
//
// This is called after Validate() in NewEngine() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.Simulation.Trials > 10_000 {
		logger.Warn("simulation trial count is very large",
			"trials", cfg.Simulation.Trials,
			"recommended", "10000 or fewer",
		)
	}
	if cfg.Roommates.MinScore <= 50 {
		logger.Warn("roommate minimum score does not exceed the baseline, every pair qualifies",
			"minScore", cfg.Roommates.MinScore,
		)
	}
}

// ParseConfig decodes YAML configuration, applies defaults and validates it.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Config: Validated configuration
//   - error: Decode or validation error
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	SetDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfig reads configuration from a YAML file.
//
// Example:
//
//	cfg, err := dormalloc.LoadConfig("configs/dormsim.yaml")
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// TestConfig returns a configuration with reproducible, fast settings for tests.
//
// Shuffling is disabled, the seed is fixed and simulations run ten trials.
func TestConfig() Config {
	cfg := DefaultConfig()
	randomize := false
	cfg.RandomizeOrder = &randomize
	cfg.Seed = 42
	cfg.Simulation.Trials = 10

	return cfg
}
