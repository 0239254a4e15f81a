package game

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// StartHex is a player starting cell in axial coordinates.
type StartHex struct {
	Q int `yaml:"q"`
	R int `yaml:"r"`
}

// Config holds every tuned gameplay constant. The values are balance
// numbers, not derived from any rule — treat them as data. Durations
// are expressed in milliseconds so the YAML override file stays
// unit-explicit.
type Config struct {
	GridRadius int     `yaml:"grid_radius"` // board radius in cells
	HexSize    float64 `yaml:"hex_size"`    // hex radius (center to corner) in pixels

	// Board spawn ripple: per-ring delay plus a bounded random jitter,
	// then the spawn animation itself.
	TileSpawnRingDelayMs int `yaml:"tile_spawn_ring_delay_ms"`
	TileSpawnJitterMs    int `yaml:"tile_spawn_jitter_ms"`
	TileSpawnMs          int `yaml:"tile_spawn_ms"`
	PlayerSpawnMs        int `yaml:"player_spawn_ms"`

	// Falling-tile scheduler difficulty curve.
	FallIntervalStartMs int     `yaml:"fall_interval_start_ms"`
	FallIntervalStepMs  int     `yaml:"fall_interval_step_ms"`
	FallIntervalFloorMs int     `yaml:"fall_interval_floor_ms"`
	WarnMs              int     `yaml:"warn_ms"`         // warning phase before a tile falls
	OccupiedBias        float64 `yaml:"occupied_bias"`   // chance to target an occupied tile
	ShatterMs           int     `yaml:"shatter_ms"`      // tile break-apart animation
	PlayerFallMs        int     `yaml:"player_fall_ms"`  // player fall animation; also the game-over recheck delay

	// Momentum movement model.
	PlayerAccel    float64 `yaml:"player_accel"`     // px/s² toward held input
	PlayerDecel    float64 `yaml:"player_decel"`     // px/s² toward rest when idle
	PlayerMaxSpeed float64 `yaml:"player_max_speed"` // px/s speed clamp
	PlayerRadius   float64 `yaml:"player_radius"`    // visual radius in pixels

	PlayerStarts []StartHex `yaml:"player_starts"`
}

// DefaultConfig returns the shipped two-player tuning.
func DefaultConfig() Config {
	return Config{
		GridRadius: 5,
		HexSize:    34,

		TileSpawnRingDelayMs: 100,
		TileSpawnJitterMs:    150,
		TileSpawnMs:          400,
		PlayerSpawnMs:        600,

		FallIntervalStartMs: 800,
		FallIntervalStepMs:  20,
		FallIntervalFloorMs: 300,
		WarnMs:              1000,
		OccupiedBias:        0.20,
		ShatterMs:           600,
		PlayerFallMs:        1000,

		PlayerAccel:    1400,
		PlayerDecel:    1000,
		PlayerMaxSpeed: 240,
		PlayerRadius:   10,

		PlayerStarts: []StartHex{
			{Q: -3, R: 0},
			{Q: 3, R: 0},
		},
	}
}

// LoadConfig reads a YAML tuning file over the defaults. Only the keys
// present in the file are overridden.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	if c.GridRadius < 0 {
		return fmt.Errorf("grid_radius must be >= 0, got %d", c.GridRadius)
	}
	if c.HexSize <= 0 {
		return fmt.Errorf("hex_size must be > 0, got %g", c.HexSize)
	}
	if c.FallIntervalFloorMs <= 0 || c.FallIntervalStartMs < c.FallIntervalFloorMs {
		return fmt.Errorf("fall interval start %dms must be >= floor %dms > 0",
			c.FallIntervalStartMs, c.FallIntervalFloorMs)
	}
	if c.FallIntervalStepMs < 0 {
		return fmt.Errorf("fall_interval_step_ms must be >= 0, got %d", c.FallIntervalStepMs)
	}
	if c.OccupiedBias < 0 || c.OccupiedBias > 1 {
		return fmt.Errorf("occupied_bias must be in [0,1], got %g", c.OccupiedBias)
	}
	if c.PlayerMaxSpeed <= 0 {
		return fmt.Errorf("player_max_speed must be > 0, got %g", c.PlayerMaxSpeed)
	}
	if len(c.PlayerStarts) == 0 {
		return fmt.Errorf("player_starts must name at least one cell")
	}
	return nil
}

// msec converts a millisecond count from the config into a Duration.
func msec(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
