package config

import (
	"math"
	"testing"
	"time"

	"github.com/alexanderramin/culiacan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.Validate())
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, domain.DifficultyVeteran, cfg.Difficulty)
	assert.Equal(t, domain.DefaultCarry, cfg.Carry)
	assert.Equal(t, domain.DefaultWeights(), cfg.Tuning.Weights)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CULIACAN_HOME", "/tmp/culiacan-test")
	t.Setenv("CULIACAN_SAVE_BACKEND", "FILE")
	t.Setenv("CULIACAN_DIFFICULTY", "Elite")
	t.Setenv("CULIACAN_TICK_MS", "50")
	t.Setenv("CULIACAN_AUTOSAVE_SEC", "0")
	t.Setenv("CULIACAN_CARRY", "0.5")
	t.Setenv("CULIACAN_LOG_USE_CASES", "true")
	t.Setenv("CULIACAN_WEIGHT_MEDIA", "0.4")

	cfg, warnings := LoadConfig()

	assert.Empty(t, warnings)
	assert.Equal(t, "/tmp/culiacan-test", cfg.HomeDir)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, domain.DifficultyElite, cfg.Difficulty)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	assert.Zero(t, cfg.AutoSaveInterval, "zero disables auto-save")
	assert.Equal(t, 0.5, cfg.Carry)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, 0.4, cfg.Tuning.Weights.Media)
	assert.Equal(t, 0.30, cfg.Tuning.Weights.Civilian)
	assert.Equal(t, "/tmp/culiacan-test/saves.db", cfg.DatabasePath())
	assert.Equal(t, "/tmp/culiacan-test/saves", cfg.SaveDir())
	assert.Empty(t, cfg.Validate())
}

func TestLoadConfig_UnparseableValuesIgnored(t *testing.T) {
	t.Setenv("CULIACAN_TICK_MS", "fast")
	t.Setenv("CULIACAN_CARRY", "lots")
	t.Setenv("CULIACAN_WEIGHT_ELITE", "heavy")

	cfg, warnings := LoadConfig()
	def := DefaultConfig()

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "ignoring invalid environment")
	assert.Equal(t, def.TickInterval, cfg.TickInterval)
	assert.Equal(t, def.Carry, cfg.Carry)
	assert.Equal(t, def.Tuning.Weights.Elite, cfg.Tuning.Weights.Elite)
}

func TestValidate_ResetsOutOfRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HomeDir = ""
	cfg.Backend = "s3"
	cfg.Difficulty = "nightmare"
	cfg.TickInterval = time.Millisecond
	cfg.AutoSaveInterval = -time.Second
	cfg.Carry = 1.5
	cfg.Tuning.Weights.Morale = math.NaN()

	warnings := cfg.Validate()
	def := DefaultConfig()

	assert.Len(t, warnings, 7)
	assert.Equal(t, def.HomeDir, cfg.HomeDir)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, domain.DifficultyVeteran, cfg.Difficulty)
	assert.Equal(t, def.TickInterval, cfg.TickInterval)
	assert.Equal(t, time.Minute, cfg.AutoSaveInterval)
	assert.Equal(t, domain.DefaultCarry, cfg.Carry)
	assert.Equal(t, domain.DefaultWeights(), cfg.Tuning.Weights)
}

func TestLoadConfig_UnsetKeepsDefaults(t *testing.T) {
	t.Setenv("CULIACAN_HOME", "/tmp/culiacan-defaults")

	cfg, warnings := LoadConfig()
	def := DefaultConfig()

	assert.Empty(t, warnings)
	assert.Equal(t, def.Backend, cfg.Backend)
	assert.Equal(t, def.Difficulty, cfg.Difficulty)
	assert.Equal(t, def.TickInterval, cfg.TickInterval)
	assert.Equal(t, def.AutoSaveInterval, cfg.AutoSaveInterval)
	assert.Equal(t, def.Carry, cfg.Carry)
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, def.Tuning, cfg.Tuning)
}
