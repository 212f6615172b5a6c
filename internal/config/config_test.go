package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, float32(30), cfg.Physics.Gravity)
	assert.Equal(t, float32(3), cfg.Physics.Damping)
	assert.Equal(t, float32(0.1), cfg.Physics.MaxDelta)
	assert.Equal(t, float32(25), cfg.Player.WalkSpeed)
	assert.Equal(t, "Door", cfg.Zones.DoorNode)
}

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
physics:
  gravity: 9.8
player:
  jump_speed: 5
zones:
  inside: ""
input:
  mode: touch
`))
	require.NoError(t, err)

	assert.Equal(t, float32(9.8), cfg.Physics.Gravity)
	assert.Equal(t, float32(3), cfg.Physics.Damping)
	assert.Equal(t, float32(5), cfg.Player.JumpSpeed)
	assert.Empty(t, cfg.Zones.Inside)
	assert.Equal(t, "outside.yaml", cfg.Zones.Outside)
	assert.Equal(t, "touch", cfg.Input.Mode)
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeUnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("physics:\n  gravty: 1\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"window", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"radius", func(c *Config) { c.Player.Radius = 0 }, "player.radius"},
		{"zero length capsule", func(c *Config) { c.Player.End = c.Player.Start }, "zero length"},
		{"max delta", func(c *Config) { c.Physics.MaxDelta = 0 }, "max_delta"},
		{"hysteresis band", func(c *Config) { c.Zones.RearmDistance = 1 }, "rearm_distance"},
		{"input mode", func(c *Config) { c.Input.Mode = "joystick" }, "input.mode"},
		{"outside scene", func(c *Config) { c.Zones.Outside = "" }, "zones.outside"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Player.Radius = -1
	cfg.Physics.Gravity = -1

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "player.radius")
	assert.Contains(t, err.Error(), "physics.gravity")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 800\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)

	require.NoError(t, os.WriteFile(path, []byte("player:\n  radius: -1\n"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestWatchDeliversReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 800\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	updates, err := Watch(ctx, path, zap.NewNop())
	require.NoError(t, err)

	// an invalid edit is skipped, the next valid one arrives
	require.NoError(t, os.WriteFile(path, []byte("player:\n  radius: -1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 1024\n"), 0o644))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-updates:
			require.NotNil(t, cfg)
			if cfg.Window.Width == 1024 {
				cancel()
				for range updates {
				}
				return
			}
		case <-timeout:
			t.Fatal("no reload delivered")
		}
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	ctx, cancel := context.WithCancel(context.Background())
	updates, err := Watch(ctx, path, zap.NewNop())
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-updates:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("watch channel not closed")
	}
}
