package input

import (
	"capsulewalk/internal/camera"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ForwardVector is the camera's view direction flattened onto the ground
// plane. Looking straight up or down falls back to the yaw heading.
func ForwardVector(cam *camera.Camera) rl.Vector3 {
	dir := cam.WorldDirection()
	dir.Y = 0
	length := rl.Vector3Length(dir)
	if length < 1e-6 {
		s, c := math32.Sincos(cam.Yaw)
		return rl.Vector3{X: -s, Z: -c}
	}
	return rl.Vector3Scale(dir, 1/length)
}

// SideVector points to the camera's right on the ground plane.
func SideVector(cam *camera.Camera) rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3CrossProduct(ForwardVector(cam), cam.Up()))
}
