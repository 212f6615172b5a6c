package world

import (
	"capsulewalk/internal/camera"
	"capsulewalk/internal/config"
	"capsulewalk/internal/input"
	"capsulewalk/internal/physics"
	"capsulewalk/internal/zone"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// World owns the simulation state. Only the frame loop touches it.
type World struct {
	Camera  *camera.Camera
	Player  *Player
	Zones   *zone.Switcher
	Motion  physics.Motion
	Mapper  input.Mapper
	Keys    input.Keys
	Buttons input.Buttons
	Look    input.Look
	Mode    input.Mode
	KillY   float32

	Stats Stats
	log   *zap.Logger
}

type Stats struct {
	Frames      uint64
	Transitions int
	Respawns    int
	QueryTime   time.Duration // collision time of the last step
}

// New places the player at the outside zone's spawn.
func New(cfg *config.Config, outside *zone.Zone, mode input.Mode, log *zap.Logger) *World {
	spawn := physics.NewCapsule(vec(cfg.Player.Start), vec(cfg.Player.End), cfg.Player.Radius)
	w := &World{
		Camera:  camera.New(spawn.End),
		Player:  NewPlayer(spawn),
		Keys:    input.Keys{},
		Buttons: input.Buttons{},
		Look:    input.NewLook(mode, cfg.Player.Sensitivity),
		Mode:    mode,
		log:     log,
	}
	w.Zones = zone.NewSwitcher(outside, zone.DefaultSettings(), log)
	w.ApplyConfig(cfg)
	w.Player.Respawn(outside.Graph.Spawn)
	w.Camera.Position = w.Player.Eye()

	log.Info("world ready",
		zap.String("zone", outside.Name),
		zap.Int("triangles", outside.Index.TriangleCount()),
		zap.Stringer("input", mode))
	return w
}

// ApplyConfig updates tuning values. The player's current capsule is kept.
func (w *World) ApplyConfig(cfg *config.Config) {
	w.Motion = physics.Motion{Gravity: cfg.Physics.Gravity, Damping: cfg.Physics.Damping}
	w.Mapper = input.Mapper{
		WalkSpeed:  cfg.Player.WalkSpeed,
		TouchSpeed: cfg.Player.TouchSpeed,
		JumpSpeed:  cfg.Player.JumpSpeed,
	}
	w.Zones.Settings = zone.Settings{
		TriggerDistance: cfg.Zones.TriggerDistance,
		RearmDistance:   cfg.Zones.RearmDistance,
		StepBump:        cfg.Zones.StepBump,
	}
	w.KillY = cfg.Player.KillY
	if mouse, ok := w.Look.(*input.MouseLook); ok {
		mouse.Sensitivity = cfg.Player.Sensitivity
	}
}

// Step advances the simulation by dt seconds, already clamped by the Driver.
func (w *World) Step(dt float32) {
	w.Stats.Frames++
	p := w.Player

	w.Look.Apply(w.Camera)
	w.Mapper.ApplyKeyboard(dt, w.Keys, w.Camera, &p.Velocity, p.OnFloor)
	w.Mapper.ApplyTouch(dt, w.Buttons, w.Camera, &p.Velocity, p.OnFloor)

	w.Motion.Integrate(&p.Collider, &p.Velocity, p.OnFloor, dt)

	start := time.Now()
	p.OnFloor = physics.Resolve(w.Zones.Active().Index, &p.Collider, &p.Velocity)
	w.Stats.QueryTime = time.Since(start)

	if w.Zones.Update(&p.Collider, &p.Velocity) {
		w.Stats.Transitions++
	}

	if p.Collider.End.Y < w.KillY {
		w.respawn()
	}

	w.Camera.Position = p.Eye()
}

func (w *World) respawn() {
	active := w.Zones.Active()
	w.Player.Respawn(active.Graph.Spawn)
	w.Stats.Respawns++
	w.log.Warn("player fell out of the world",
		zap.String("zone", active.Name),
		zap.Float32("kill_y", w.KillY))
}

// GroundDistance is the distance from the bottom of the capsule to the
// geometry below it, or false if nothing is within maxDistance.
func (w *World) GroundDistance(maxDistance float32) (float32, bool) {
	c := w.Player.Collider
	bottom := c.Start
	if c.End.Y < bottom.Y {
		bottom = c.End
	}
	hit, ok := w.Zones.Active().Index.Raycast(bottom, rl.Vector3{Y: -1}, maxDistance)
	if !ok {
		return 0, false
	}
	return hit.Distance - c.Radius, true
}

func vec(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
