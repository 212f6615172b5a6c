package camera

import (
	"capsulewalk/internal/physics"
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestWorldDirection(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float32
		want       rl.Vector3
	}{
		{"default looks down -Z", 0, 0, rl.Vector3{Z: -1}},
		{"quarter turn left looks down -X", math32.Pi / 2, 0, rl.Vector3{X: -1}},
		{"half turn looks down +Z", math32.Pi, 0, rl.Vector3{Z: 1}},
		{"pitched up", 0, math32.Pi / 4, rl.Vector3{Y: math32.Sqrt(2) / 2, Z: -math32.Sqrt(2) / 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(rl.Vector3{})
			c.Yaw, c.Pitch = tt.yaw, tt.pitch
			dir := c.WorldDirection()
			assert.InDelta(t, tt.want.X, dir.X, 1e-5)
			assert.InDelta(t, tt.want.Y, dir.Y, 1e-5)
			assert.InDelta(t, tt.want.Z, dir.Z, 1e-5)
			assert.InDelta(t, 1.0, rl.Vector3Length(dir), 1e-5)
		})
	}
}

func TestRotateClampsPitch(t *testing.T) {
	c := New(rl.Vector3{})
	c.Rotate(0.5, 10)
	assert.InDelta(t, 89*rl.Deg2rad, c.Pitch, 1e-6)
	assert.InDelta(t, 0.5, c.Yaw, 1e-6)

	c.Rotate(0, -20)
	assert.InDelta(t, -89*rl.Deg2rad, c.Pitch, 1e-6)
}

func TestSetAspect(t *testing.T) {
	c := New(rl.Vector3{})
	c.SetAspect(1600, 900)
	assert.InDelta(t, 16.0/9.0, c.Aspect, 1e-6)

	c.SetAspect(0, 900)
	assert.InDelta(t, 16.0/9.0, c.Aspect, 1e-6)
}

func TestRaylibCamera(t *testing.T) {
	c := New(rl.Vector3{X: 1, Y: 2, Z: 3})
	rc := c.Raylib()

	assert.Equal(t, c.Position, rc.Position)
	assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 2}, rc.Target)
	assert.Equal(t, rl.Vector3{Y: 1}, rc.Up)
	assert.Equal(t, float32(75), rc.Fovy)
}

func TestRollTiltsUp(t *testing.T) {
	c := New(rl.Vector3{})
	c.SetOrientation(0, 0, math32.Pi/2)
	up := c.Raylib().Up

	assert.InDelta(t, 0.0, rl.Vector3DotProduct(up, c.WorldDirection()), 1e-5)
	assert.InDelta(t, 0.0, up.Y, 1e-5)
	assert.InDelta(t, 1.0, math32.Abs(up.X), 1e-5)
	// movement up stays world up
	assert.Equal(t, rl.Vector3{Y: 1}, c.Up())
}

func TestFrustum(t *testing.T) {
	c := New(rl.Vector3{Y: 1})
	f := c.Frustum()

	assert.True(t, f.ContainsSphere(rl.Vector3{Y: 1, Z: -10}, 0.5))
	assert.False(t, f.ContainsSphere(rl.Vector3{Y: 1, Z: 10}, 0.5))
	assert.False(t, f.ContainsSphere(rl.Vector3{Y: 1, Z: -2000}, 0.5))

	ahead := physics.NewAABBFromCenter(rl.Vector3{Y: 1, Z: -10}, rl.Vector3{X: 1, Y: 1, Z: 1})
	behind := physics.NewAABBFromCenter(rl.Vector3{Y: 1, Z: 10}, rl.Vector3{X: 1, Y: 1, Z: 1})
	around := physics.NewAABBFromCenter(rl.Vector3{Y: 1}, rl.Vector3{X: 4, Y: 4, Z: 4})
	assert.True(t, f.ContainsBox(ahead))
	assert.False(t, f.ContainsBox(behind))
	assert.True(t, f.ContainsBox(around))
	assert.False(t, f.ContainsBox(physics.EmptyAABB()))
}

func TestFrustumFollowsYaw(t *testing.T) {
	c := New(rl.Vector3{})
	c.Yaw = math32.Pi / 2
	f := c.Frustum()

	assert.True(t, f.ContainsSphere(rl.Vector3{X: -10}, 0.5))
	assert.False(t, f.ContainsSphere(rl.Vector3{Z: -10}, 0.5))
}
