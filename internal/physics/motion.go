package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultGravity = 30.0
	DefaultDamping = 3.0
)

// Motion advances a velocity under ground damping or gravity.
type Motion struct {
	Gravity float32 // units/s², applied to Y while airborne
	Damping float32 // 1/s, exponential decay while grounded
}

func NewMotion() Motion {
	return Motion{Gravity: DefaultGravity, Damping: DefaultDamping}
}

// Accelerate applies damping or gravity to vel for one step of dt seconds.
func (m Motion) Accelerate(vel *rl.Vector3, onFloor bool, dt float32) {
	if onFloor {
		damping := math32.Exp(-m.Damping*dt) - 1
		*vel = rl.Vector3Add(*vel, rl.Vector3Scale(*vel, damping))
		return
	}
	vel.Y -= m.Gravity * dt
}

// Integrate updates vel and translates c by the resulting tentative
// displacement. Collision resolution runs afterwards.
func (m Motion) Integrate(c *Capsule, vel *rl.Vector3, onFloor bool, dt float32) {
	m.Accelerate(vel, onFloor, dt)
	c.Translate(rl.Vector3Scale(*vel, dt))
}
