package shoal

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate when a tunable is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every gameplay tunable. Distances are in play-area pixels,
// speeds in pixels per millisecond.
type Config struct {
	MoverCount         int     `yaml:"mover_count"`
	TargetRadius       float64 `yaml:"target_radius"`
	CollisionDistance  float64 `yaml:"collision_distance"`
	SpawnBufferFactor  float64 `yaml:"spawn_buffer_factor"`
	SpawnAttempts      int     `yaml:"spawn_attempts"`
	PickRadius         float64 `yaml:"pick_radius"`
	MinWaypointSpacing float64 `yaml:"min_waypoint_spacing"`

	// JitterFraction is the half-width of the spawn heading cone in units of pi.
	JitterFraction float64 `yaml:"jitter_fraction"`

	SpeedSlow   float64 `yaml:"speed_slow"`
	SpeedMedium float64 `yaml:"speed_medium"`
	SpeedFast   float64 `yaml:"speed_fast"`

	MoverSize float64 `yaml:"mover_size"`

	// GoalDelayMs is how long a mover stays in StateGoal before it is scored.
	// Zero scores it in the same frame it reaches the target.
	GoalDelayMs float64 `yaml:"goal_delay_ms"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		MoverCount:         3,
		TargetRadius:       20,
		CollisionDistance:  30,
		SpawnBufferFactor:  5,
		SpawnAttempts:      100,
		PickRadius:         50,
		MinWaypointSpacing: 20,
		JitterFraction:     0.35,
		SpeedSlow:          0.05,
		SpeedMedium:        0.1,
		SpeedFast:          0.15,
		MoverSize:          1,
		GoalDelayMs:        0,
	}
}

// SpeedFor returns the fixed speed for a mover type.
func (c Config) SpeedFor(t MoverType) float64 {
	switch t {
	case MoverMedium:
		return c.SpeedMedium
	case MoverFast:
		return c.SpeedFast
	default:
		return c.SpeedSlow
	}
}

// SpawnBuffer is the minimum distance a fresh spawn keeps from every
// existing mover.
func (c Config) SpawnBuffer() float64 {
	return c.SpawnBufferFactor * c.CollisionDistance
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.MoverCount < 1:
		return fmt.Errorf("%w: mover_count %d < 1", ErrInvalidConfig, c.MoverCount)
	case c.TargetRadius <= 0:
		return fmt.Errorf("%w: target_radius must be positive", ErrInvalidConfig)
	case c.CollisionDistance <= 0:
		return fmt.Errorf("%w: collision_distance must be positive", ErrInvalidConfig)
	case c.SpawnBufferFactor < 0:
		return fmt.Errorf("%w: spawn_buffer_factor must not be negative", ErrInvalidConfig)
	case c.SpawnAttempts < 1:
		return fmt.Errorf("%w: spawn_attempts %d < 1", ErrInvalidConfig, c.SpawnAttempts)
	case c.PickRadius <= 0:
		return fmt.Errorf("%w: pick_radius must be positive", ErrInvalidConfig)
	case c.MinWaypointSpacing < 0:
		return fmt.Errorf("%w: min_waypoint_spacing must not be negative", ErrInvalidConfig)
	case c.JitterFraction < 0 || c.JitterFraction > 1:
		return fmt.Errorf("%w: jitter_fraction %v outside [0, 1]", ErrInvalidConfig, c.JitterFraction)
	case c.SpeedSlow <= 0:
		return fmt.Errorf("%w: speed_slow must be positive", ErrInvalidConfig)
	case !(c.SpeedSlow < c.SpeedMedium && c.SpeedMedium < c.SpeedFast):
		return fmt.Errorf("%w: speeds must increase slow < medium < fast", ErrInvalidConfig)
	case c.MoverSize <= 0:
		return fmt.Errorf("%w: mover_size must be positive", ErrInvalidConfig)
	case c.GoalDelayMs < 0:
		return fmt.Errorf("%w: goal_delay_ms must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ParseConfig decodes YAML over DefaultConfig, so omitted keys keep their
// default values, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}
