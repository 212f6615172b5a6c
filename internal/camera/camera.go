package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxPitch = 89 * rl.Deg2rad

// Camera is a perspective camera rotated in yaw, pitch, roll order (YXZ).
// Angles are in radians; yaw 0 looks down -Z.
type Camera struct {
	Position rl.Vector3
	Yaw      float32
	Pitch    float32
	Roll     float32

	Fovy   float32 // Vertical field of view in degrees
	Near   float32
	Far    float32
	Aspect float32
}

func New(pos rl.Vector3) *Camera {
	return &Camera{
		Position: pos,
		Fovy:     75,
		Near:     0.1,
		Far:      1000,
		Aspect:   1,
	}
}

// WorldDirection is the unit vector the camera looks along.
func (c *Camera) WorldDirection() rl.Vector3 {
	sy, cy := math32.Sincos(c.Yaw)
	sp, cp := math32.Sincos(c.Pitch)
	return rl.Vector3{X: -cp * sy, Y: sp, Z: -cp * cy}
}

// Up is the world up axis used for movement; roll only affects the view.
func (c *Camera) Up() rl.Vector3 {
	return rl.Vector3{Y: 1}
}

// Rotate adds yaw and pitch deltas, keeping pitch short of straight up/down.
func (c *Camera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = ClampPitch(c.Pitch + dPitch)
}

// SetOrientation replaces the rotation with an absolute sample.
func (c *Camera) SetOrientation(yaw, pitch, roll float32) {
	c.Yaw = yaw
	c.Pitch = ClampPitch(pitch)
	c.Roll = roll
}

func (c *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

func ClampPitch(p float32) float32 {
	if p > maxPitch {
		return maxPitch
	}
	if p < -maxPitch {
		return -maxPitch
	}
	return p
}

// Projection is the perspective matrix with this camera's clip planes. raylib
// uses fixed planes in BeginMode3D, so callers load this afterwards.
func (c *Camera) Projection() rl.Matrix {
	return rl.MatrixPerspective(c.Fovy*rl.Deg2rad, c.Aspect, c.Near, c.Far)
}

func (c *Camera) Raylib() rl.Camera3D {
	dir := c.WorldDirection()
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, dir),
		Up:         rollUp(dir, c.Roll),
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// rollUp rotates world up around dir by roll (Rodrigues).
func rollUp(dir rl.Vector3, roll float32) rl.Vector3 {
	up := rl.Vector3{Y: 1}
	if roll == 0 {
		return up
	}
	s, co := math32.Sincos(roll)
	k := rl.Vector3Normalize(dir)
	rotated := rl.Vector3Scale(up, co)
	rotated = rl.Vector3Add(rotated, rl.Vector3Scale(rl.Vector3CrossProduct(k, up), s))
	rotated = rl.Vector3Add(rotated, rl.Vector3Scale(k, rl.Vector3DotProduct(k, up)*(1-co)))
	return rotated
}
