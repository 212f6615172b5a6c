package input

import (
	"capsulewalk/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultWalkSpeed  = 25
	DefaultTouchSpeed = 5
	DefaultJumpSpeed  = 10
)

// Mapper turns held input into velocity changes relative to the camera.
type Mapper struct {
	WalkSpeed  float32
	TouchSpeed float32
	JumpSpeed  float32
}

func NewMapper() Mapper {
	return Mapper{
		WalkSpeed:  DefaultWalkSpeed,
		TouchSpeed: DefaultTouchSpeed,
		JumpSpeed:  DefaultJumpSpeed,
	}
}

// ApplyKeyboard accelerates vel along the camera's ground axes. Nothing
// happens while airborne; jump sets the vertical speed outright.
func (m Mapper) ApplyKeyboard(dt float32, keys Keys, cam *camera.Camera, vel *rl.Vector3, onFloor bool) {
	if !onFloor {
		return
	}
	step := m.WalkSpeed * dt
	forward := ForwardVector(cam)
	side := SideVector(cam)

	if keys[KeyForward] {
		*vel = rl.Vector3Add(*vel, rl.Vector3Scale(forward, step))
	}
	if keys[KeyBack] {
		*vel = rl.Vector3Add(*vel, rl.Vector3Scale(forward, -step))
	}
	if keys[KeyLeft] {
		*vel = rl.Vector3Add(*vel, rl.Vector3Scale(side, -step))
	}
	if keys[KeyRight] {
		*vel = rl.Vector3Add(*vel, rl.Vector3Scale(side, step))
	}
	if keys[KeyJump] {
		vel.Y = m.JumpSpeed
	}
}

// ApplyTouch is the on-screen button variant: forward and back only.
func (m Mapper) ApplyTouch(dt float32, buttons Buttons, cam *camera.Camera, vel *rl.Vector3, onFloor bool) {
	if !onFloor {
		return
	}
	step := m.TouchSpeed * dt
	forward := ForwardVector(cam)

	if buttons[ButtonForward] {
		*vel = rl.Vector3Add(*vel, rl.Vector3Scale(forward, step))
	}
	if buttons[ButtonBack] {
		*vel = rl.Vector3Add(*vel, rl.Vector3Scale(forward, -step))
	}
}
