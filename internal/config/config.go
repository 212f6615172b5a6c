package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Zones   ZonesConfig   `yaml:"zones"`
	Input   InputConfig   `yaml:"input"`
	Log     LogConfig     `yaml:"log"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	HighDPI   bool   `yaml:"high_dpi"`
}

type PhysicsConfig struct {
	Gravity  float32 `yaml:"gravity"`
	Damping  float32 `yaml:"damping"`
	MaxDelta float32 `yaml:"max_delta"`
}

type PlayerConfig struct {
	Start       [3]float32 `yaml:"start"`
	End         [3]float32 `yaml:"end"`
	Radius      float32    `yaml:"radius"`
	WalkSpeed   float32    `yaml:"walk_speed"`
	TouchSpeed  float32    `yaml:"touch_speed"`
	JumpSpeed   float32    `yaml:"jump_speed"`
	Sensitivity float32    `yaml:"look_sensitivity"`
	KillY       float32    `yaml:"kill_y"`
}

// ZonesConfig names the scene manifests. An empty Inside runs a single zone.
type ZonesConfig struct {
	Dir             string  `yaml:"dir"`
	Outside         string  `yaml:"outside"`
	Inside          string  `yaml:"inside"`
	DoorNode        string  `yaml:"door_node"`
	TriggerDistance float32 `yaml:"trigger_distance"`
	RearmDistance   float32 `yaml:"rearm_distance"`
	StepBump        float32 `yaml:"step_bump"`
}

type InputConfig struct {
	Mode string `yaml:"mode"` // auto, desktop or touch
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "capsulewalk",
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
			HighDPI:   true,
		},
		Physics: PhysicsConfig{
			Gravity:  30,
			Damping:  3,
			MaxDelta: 0.1,
		},
		Player: PlayerConfig{
			Start:       [3]float32{0, 0.35, 0},
			End:         [3]float32{0, 1.5, 0},
			Radius:      0.35,
			WalkSpeed:   25,
			TouchSpeed:  5,
			JumpSpeed:   10,
			Sensitivity: 500,
			KillY:       -25,
		},
		Zones: ZonesConfig{
			Dir:             "assets/scenes",
			Outside:         "outside.yaml",
			Inside:          "inside.yaml",
			DoorNode:        "Door",
			TriggerDistance: 1.5,
			RearmDistance:   2.0,
			StepBump:        5,
		},
		Input: InputConfig{Mode: "auto"},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML over the defaults and validates the result.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var err error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			err = multierr.Append(err, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)
	check(c.Physics.Gravity >= 0, "physics.gravity %v is negative", c.Physics.Gravity)
	check(c.Physics.Damping >= 0, "physics.damping %v is negative", c.Physics.Damping)
	check(c.Physics.MaxDelta > 0, "physics.max_delta must be positive")
	check(c.Player.Radius > 0, "player.radius must be positive")
	check(c.Player.Start != c.Player.End, "player capsule has zero length")
	check(c.Player.Sensitivity > 0, "player.look_sensitivity must be positive")
	check(c.Zones.Outside != "", "zones.outside is required")
	check(c.Zones.TriggerDistance > 0, "zones.trigger_distance must be positive")
	check(c.Zones.RearmDistance > c.Zones.TriggerDistance,
		"zones.rearm_distance %v must exceed trigger_distance %v", c.Zones.RearmDistance, c.Zones.TriggerDistance)
	switch c.Input.Mode {
	case "auto", "desktop", "touch":
	default:
		check(false, "input.mode %q", c.Input.Mode)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
