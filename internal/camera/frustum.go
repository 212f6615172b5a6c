package camera

import (
	"capsulewalk/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum holds the six clip planes of a view (left, right, bottom, top,
// near, far) with normals pointing inwards.
type Frustum struct {
	planes [6]plane
}

// plane is ax + by + cz + d = 0
type plane struct {
	normal   rl.Vector3
	distance float32
}

// Frustum extracts the planes from the camera's view-projection matrix
// (Gribb/Hartmann).
func (c *Camera) Frustum() Frustum {
	rc := c.Raylib()
	view := rl.MatrixLookAt(rc.Position, rc.Target, rc.Up)
	vp := rl.MatrixMultiply(view, c.Projection())

	var f Frustum
	f.planes[0] = normalizePlane(vp.M3+vp.M0, vp.M7+vp.M4, vp.M11+vp.M8, vp.M15+vp.M12)
	f.planes[1] = normalizePlane(vp.M3-vp.M0, vp.M7-vp.M4, vp.M11-vp.M8, vp.M15-vp.M12)
	f.planes[2] = normalizePlane(vp.M3+vp.M1, vp.M7+vp.M5, vp.M11+vp.M9, vp.M15+vp.M13)
	f.planes[3] = normalizePlane(vp.M3-vp.M1, vp.M7-vp.M5, vp.M11-vp.M9, vp.M15-vp.M13)
	f.planes[4] = normalizePlane(vp.M3+vp.M2, vp.M7+vp.M6, vp.M11+vp.M10, vp.M15+vp.M14)
	f.planes[5] = normalizePlane(vp.M3-vp.M2, vp.M7-vp.M6, vp.M11-vp.M10, vp.M15-vp.M14)
	return f
}

func normalizePlane(a, b, c, d float32) plane {
	n := rl.Vector3{X: a, Y: b, Z: c}
	length := rl.Vector3Length(n)
	if length == 0 {
		return plane{normal: n, distance: d}
	}
	return plane{normal: rl.Vector3Scale(n, 1/length), distance: d / length}
}

// ContainsSphere reports whether the sphere is at least partly inside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		if rl.Vector3DotProduct(f.planes[i].normal, center)+f.planes[i].distance < -radius {
			return false
		}
	}
	return true
}

// ContainsBox is conservative: a box straddling a corner may pass.
func (f *Frustum) ContainsBox(box physics.AABB) bool {
	if box.IsEmpty() {
		return false
	}
	for i := range f.planes {
		p := f.planes[i]
		// corner furthest along the plane normal
		corner := box.Min
		if p.normal.X >= 0 {
			corner.X = box.Max.X
		}
		if p.normal.Y >= 0 {
			corner.Y = box.Max.Y
		}
		if p.normal.Z >= 0 {
			corner.Z = box.Max.Z
		}
		if rl.Vector3DotProduct(p.normal, corner)+p.distance < 0 {
			return false
		}
	}
	return true
}
