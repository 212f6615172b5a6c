package world

import (
	"capsulewalk/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Player is the capsule avatar. The camera sits at the top of the capsule.
type Player struct {
	Collider physics.Capsule
	Velocity rl.Vector3
	OnFloor  bool

	spawn physics.Capsule
}

func NewPlayer(spawn physics.Capsule) *Player {
	return &Player{Collider: spawn, spawn: spawn}
}

func (p *Player) Eye() rl.Vector3 {
	return p.Collider.End
}

// Respawn resets the capsule to its spawn shape moved by offset.
func (p *Player) Respawn(offset rl.Vector3) {
	p.Collider = p.spawn
	p.Collider.Translate(offset)
	p.Velocity = rl.Vector3{}
	p.OnFloor = false
}
