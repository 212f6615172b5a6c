package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast returns the closest triangle hit along the ray within maxDistance.
func (idx *Index) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	direction, length := normalize(direction)
	if length == 0 || idx.root == nil {
		return RaycastHit{}, false
	}

	closest := RaycastHit{Distance: maxDistance}
	hit := false

	var walk func(node *bvhNode)
	walk = func(node *bvhNode) {
		if node == nil || !rayHitsBox(origin, direction, node.bounds, closest.Distance) {
			return
		}
		if node.triangles == nil {
			walk(node.left)
			walk(node.right)
			return
		}
		for _, i := range node.triangles {
			tri := &idx.triangles[i]
			if t, ok := rayTriangle(origin, direction, tri); ok && t <= closest.Distance {
				normal := tri.Normal
				if rl.Vector3DotProduct(normal, direction) > 0 {
					normal = rl.Vector3Negate(normal)
				}
				closest = RaycastHit{
					Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, t)),
					Normal:   normal,
					Distance: t,
				}
				hit = true
			}
		}
	}
	walk(idx.root)

	return closest, hit
}

// rayHitsBox is a slab test against box, limited to maxDistance.
func rayHitsBox(origin, direction rl.Vector3, box AABB, maxDistance float32) bool {
	tmin, tmax := float32(0), maxDistance
	for axis := 0; axis < 3; axis++ {
		o := getAxisValue(origin, axis)
		d := getAxisValue(direction, axis)
		lo := getAxisValue(box.Min, axis)
		hi := getAxisValue(box.Max, axis)

		if d == 0 {
			if o < lo || o > hi {
				return false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return false
		}
	}
	return true
}

// rayTriangle is the Möller–Trumbore test; it hits both faces.
func rayTriangle(origin, direction rl.Vector3, tri *Triangle) (float32, bool) {
	const eps = 1e-7

	e1 := rl.Vector3Subtract(tri.B, tri.A)
	e2 := rl.Vector3Subtract(tri.C, tri.A)
	p := rl.Vector3CrossProduct(direction, e2)
	det := rl.Vector3DotProduct(e1, p)
	if det > -eps && det < eps {
		return 0, false
	}
	inv := 1 / det

	s := rl.Vector3Subtract(origin, tri.A)
	u := rl.Vector3DotProduct(s, p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := rl.Vector3CrossProduct(s, e1)
	v := rl.Vector3DotProduct(direction, q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := rl.Vector3DotProduct(e2, q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}
