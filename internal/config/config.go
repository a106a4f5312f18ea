// Package config loads runtime settings from CULIACAN_* environment
// variables over built-in defaults.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/culiacan/internal/domain"
	"github.com/caarlos0/env/v11"
)

// Backend selects where save slots are stored.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendFile   Backend = "file"
)

// Config holds all runtime settings.
type Config struct {
	HomeDir      string
	Backend      Backend
	Difficulty   domain.DifficultyLevel
	TickInterval time.Duration
	// AutoSaveInterval is how often play mode saves unsaved outcomes on its
	// own. Zero disables it.
	AutoSaveInterval time.Duration
	// Carry is the share of end-of-mission pressure carried into the next mission.
	Carry       float64
	Tuning      domain.PressureTuning
	LogUseCases bool
}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		HomeDir:          defaultHomeDir(),
		Backend:          BackendSQLite,
		Difficulty:       domain.DifficultyVeteran,
		TickInterval:     100 * time.Millisecond,
		AutoSaveInterval: time.Minute,
		Carry:            domain.DefaultCarry,
		Tuning:           domain.DefaultPressureTuning(),
	}
}

// envPrefix is prepended to every variable name in envOverrides.
const envPrefix = "CULIACAN_"

// envOverrides mirrors the settings that may come from the environment. It is
// seeded from DefaultConfig so unset variables keep their defaults.
type envOverrides struct {
	HomeDir     string  `env:"HOME"`
	Backend     string  `env:"SAVE_BACKEND"`
	Difficulty  string  `env:"DIFFICULTY"`
	TickMS      int     `env:"TICK_MS"`
	AutoSaveSec int     `env:"AUTOSAVE_SEC"`
	Carry       float64 `env:"CARRY"`
	LogUseCases bool    `env:"LOG_USE_CASES"`

	Civilian float64 `env:"WEIGHT_CIVILIAN"`
	Economic float64 `env:"WEIGHT_ECONOMIC"`
	Media    float64 `env:"WEIGHT_MEDIA"`
	Elite    float64 `env:"WEIGHT_ELITE"`
	Morale   float64 `env:"WEIGHT_MORALE"`
}

// LoadConfig reads configuration from CULIACAN_* environment variables over
// the defaults. A variable that does not parse keeps its default and is
// reported as a warning.
func LoadConfig() (Config, []string) {
	cfg := DefaultConfig()
	w := cfg.Tuning.Weights
	ov := envOverrides{
		HomeDir:     cfg.HomeDir,
		Backend:     string(cfg.Backend),
		Difficulty:  string(cfg.Difficulty),
		TickMS:      int(cfg.TickInterval / time.Millisecond),
		AutoSaveSec: int(cfg.AutoSaveInterval / time.Second),
		Carry:       cfg.Carry,
		LogUseCases: cfg.LogUseCases,
		Civilian:    w.Civilian,
		Economic:    w.Economic,
		Media:       w.Media,
		Elite:       w.Elite,
		Morale:      w.Morale,
	}

	// A field whose value fails to parse is left as seeded.
	var warnings []string
	if err := env.ParseWithOptions(&ov, env.Options{Prefix: envPrefix}); err != nil {
		warnings = append(warnings, fmt.Sprintf("ignoring invalid environment: %v", err))
	}

	cfg.HomeDir = ov.HomeDir
	cfg.Backend = Backend(strings.ToLower(ov.Backend))
	cfg.Difficulty = domain.DifficultyLevel(strings.ToLower(ov.Difficulty))
	cfg.TickInterval = time.Duration(ov.TickMS) * time.Millisecond
	cfg.AutoSaveInterval = time.Duration(ov.AutoSaveSec) * time.Second
	cfg.Carry = ov.Carry
	cfg.LogUseCases = ov.LogUseCases
	cfg.Tuning.Weights = domain.Weights{
		Civilian: ov.Civilian,
		Economic: ov.Economic,
		Media:    ov.Media,
		Elite:    ov.Elite,
		Morale:   ov.Morale,
	}
	return cfg, warnings
}

// Validate resets out-of-range values to their defaults and returns one
// warning per correction.
func (c *Config) Validate() []string {
	def := DefaultConfig()
	var warnings []string

	if c.HomeDir == "" {
		c.HomeDir = def.HomeDir
		warnings = append(warnings, "empty home directory, using "+def.HomeDir)
	}
	if c.Backend != BackendSQLite && c.Backend != BackendFile {
		warnings = append(warnings, fmt.Sprintf("unknown save backend %q, using %s", c.Backend, def.Backend))
		c.Backend = def.Backend
	}
	if !domain.ValidDifficulties[string(c.Difficulty)] {
		warnings = append(warnings, fmt.Sprintf("unknown difficulty %q, using %s", c.Difficulty, def.Difficulty))
		c.Difficulty = def.Difficulty
	}
	if c.TickInterval < 10*time.Millisecond || c.TickInterval > time.Second {
		warnings = append(warnings, fmt.Sprintf("tick interval %s outside 10ms-1s, using %s", c.TickInterval, def.TickInterval))
		c.TickInterval = def.TickInterval
	}
	if c.AutoSaveInterval < 0 {
		warnings = append(warnings, fmt.Sprintf("negative auto-save interval %s, using %s", c.AutoSaveInterval, def.AutoSaveInterval))
		c.AutoSaveInterval = def.AutoSaveInterval
	}
	if math.IsNaN(c.Carry) || c.Carry < 0 || c.Carry > 1 {
		warnings = append(warnings, fmt.Sprintf("carry %v outside [0, 1], using %v", c.Carry, def.Carry))
		c.Carry = def.Carry
	}

	w := c.Tuning.Weights
	for _, v := range []float64{w.Civilian, w.Economic, w.Media, w.Elite, w.Morale} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			warnings = append(warnings, "stability weights must be finite and non-negative, using defaults")
			c.Tuning.Weights = def.Tuning.Weights
			break
		}
	}
	return warnings
}

// DatabasePath is the SQLite save database location.
func (c Config) DatabasePath() string {
	return filepath.Join(c.HomeDir, "saves.db")
}

// SaveDir is the directory used by the file backend.
func (c Config) SaveDir() string {
	return filepath.Join(c.HomeDir, "saves")
}

func defaultHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".culiacan"
	}
	return filepath.Join(home, ".culiacan")
}
