package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mesh is a local-space triangle mesh. A nil Indices slice means every three
// consecutive vertices form a triangle.
type Mesh struct {
	Vertices []rl.Vector3
	Indices  []int32
}

func (m *Mesh) TriangleCount() int {
	if m.Indices != nil {
		return len(m.Indices) / 3
	}
	return len(m.Vertices) / 3
}

func (m *Mesh) EachTriangle(fn func(a, b, c rl.Vector3)) {
	if m.Indices != nil {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			fn(m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]])
		}
		return
	}
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		fn(m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2])
	}
}

// quad appends two counter-clockwise triangles a-b-c, a-c-d.
func (m *Mesh) quad(a, b, c, d rl.Vector3) {
	base := int32(len(m.Vertices))
	m.Vertices = append(m.Vertices, a, b, c, d)
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
}

// BoxMesh is an axis-aligned box centred on the origin with outward faces.
func BoxMesh(size rl.Vector3) *Mesh {
	x, y, z := size.X/2, size.Y/2, size.Z/2
	m := &Mesh{}
	// +Y, -Y
	m.quad(rl.Vector3{X: -x, Y: y, Z: -z}, rl.Vector3{X: -x, Y: y, Z: z}, rl.Vector3{X: x, Y: y, Z: z}, rl.Vector3{X: x, Y: y, Z: -z})
	m.quad(rl.Vector3{X: -x, Y: -y, Z: -z}, rl.Vector3{X: x, Y: -y, Z: -z}, rl.Vector3{X: x, Y: -y, Z: z}, rl.Vector3{X: -x, Y: -y, Z: z})
	// +X, -X
	m.quad(rl.Vector3{X: x, Y: -y, Z: -z}, rl.Vector3{X: x, Y: y, Z: -z}, rl.Vector3{X: x, Y: y, Z: z}, rl.Vector3{X: x, Y: -y, Z: z})
	m.quad(rl.Vector3{X: -x, Y: -y, Z: -z}, rl.Vector3{X: -x, Y: -y, Z: z}, rl.Vector3{X: -x, Y: y, Z: z}, rl.Vector3{X: -x, Y: y, Z: -z})
	// +Z, -Z
	m.quad(rl.Vector3{X: -x, Y: -y, Z: z}, rl.Vector3{X: x, Y: -y, Z: z}, rl.Vector3{X: x, Y: y, Z: z}, rl.Vector3{X: -x, Y: y, Z: z})
	m.quad(rl.Vector3{X: -x, Y: -y, Z: -z}, rl.Vector3{X: -x, Y: y, Z: -z}, rl.Vector3{X: x, Y: y, Z: -z}, rl.Vector3{X: x, Y: -y, Z: -z})
	return m
}

// PlaneMesh is a single upward-facing quad in the XZ plane.
func PlaneMesh(width, depth float32) *Mesh {
	x, z := width/2, depth/2
	m := &Mesh{}
	m.quad(rl.Vector3{X: -x, Z: -z}, rl.Vector3{X: -x, Z: z}, rl.Vector3{X: x, Z: z}, rl.Vector3{X: x, Z: -z})
	return m
}

// RampMesh rises along +Z from height 0 at -Z/2 to size.Y at +Z/2.
func RampMesh(size rl.Vector3) *Mesh {
	x, h, z := size.X/2, size.Y, size.Z/2
	m := &Mesh{}
	// slope
	m.quad(rl.Vector3{X: -x, Z: -z}, rl.Vector3{X: -x, Y: h, Z: z}, rl.Vector3{X: x, Y: h, Z: z}, rl.Vector3{X: x, Z: -z})
	// back wall
	m.quad(rl.Vector3{X: -x, Z: z}, rl.Vector3{X: x, Z: z}, rl.Vector3{X: x, Y: h, Z: z}, rl.Vector3{X: -x, Y: h, Z: z})
	// sides
	m.Vertices = append(m.Vertices,
		rl.Vector3{X: x, Z: -z}, rl.Vector3{X: x, Y: h, Z: z}, rl.Vector3{X: x, Z: z},
		rl.Vector3{X: -x, Z: -z}, rl.Vector3{X: -x, Z: z}, rl.Vector3{X: -x, Y: h, Z: z},
	)
	base := int32(len(m.Vertices) - 6)
	m.Indices = append(m.Indices, base, base+1, base+2, base+3, base+4, base+5)
	return m
}
