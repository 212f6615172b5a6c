package zone

import (
	"capsulewalk/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

type State int

const (
	Outside State = iota
	Inside
)

func (s State) String() string {
	if s == Inside {
		return "inside"
	}
	return "outside"
}

// Settings are the door thresholds. Keeping RearmDistance above
// TriggerDistance stops the player bouncing between zones in the doorway.
type Settings struct {
	TriggerDistance float32
	RearmDistance   float32
	StepBump        float32
}

func DefaultSettings() Settings {
	return Settings{
		TriggerDistance: 1.5,
		RearmDistance:   2.0,
		StepBump:        5,
	}
}

// Switcher moves the player between the outside zone and the inside zone
// through their doors.
type Switcher struct {
	Settings Settings

	zones      [2]*Zone // indexed by State
	state      State
	doorActive bool
	log        *zap.Logger
}

// NewSwitcher starts outside. The inside zone arrives later via MarkLoaded.
func NewSwitcher(outside *Zone, settings Settings, log *zap.Logger) *Switcher {
	s := &Switcher{
		Settings:   settings,
		doorActive: true,
		log:        log,
	}
	s.zones[Outside] = outside
	s.warnMissingDoor(outside)
	return s
}

// MarkLoaded attaches the inside zone once its load has finished.
func (s *Switcher) MarkLoaded(inside *Zone) {
	s.zones[Inside] = inside
	s.warnMissingDoor(inside)
	s.log.Info("zone ready", zap.String("zone", inside.Name))
}

func (s *Switcher) warnMissingDoor(z *Zone) {
	if z.Door == nil {
		s.log.Warn("zone has no door, transitions disabled", zap.String("zone", z.Name))
	}
}

// Loaded reports whether the inside zone is attached.
func (s *Switcher) Loaded() bool {
	return s.zones[Inside] != nil
}

func (s *Switcher) Active() *Zone {
	return s.zones[s.state]
}

func (s *Switcher) State() State {
	return s.state
}

func (s *Switcher) DoorActive() bool {
	return s.doorActive
}

// Update checks the eye (the capsule's top end) against the active door. On a
// transition it swaps zones, re-bases the capsule into the new zone's frame,
// bumps vel.Y and returns true.
func (s *Switcher) Update(c *physics.Capsule, vel *rl.Vector3) bool {
	current := s.zones[s.state]
	if current == nil || current.Door == nil {
		return false
	}

	d := current.Door.Distance(c.End)
	if d > s.Settings.RearmDistance {
		s.doorActive = true
		return false
	}
	if d >= s.Settings.TriggerDistance || !s.doorActive {
		return false
	}

	nextState := Inside
	if s.state == Inside {
		nextState = Outside
	}
	next := s.zones[nextState]
	if next == nil || next.Door == nil {
		return false
	}

	c.Translate(rl.Vector3Negate(current.Door.Anchor))
	c.Translate(next.Door.Anchor)
	vel.Y = s.Settings.StepBump

	s.state = nextState
	s.doorActive = false

	s.log.Info("zone transition",
		zap.String("from", current.Name),
		zap.String("to", next.Name),
		zap.Float32("x", c.End.X),
		zap.Float32("y", c.End.Y),
		zap.Float32("z", c.End.Z))
	return true
}
