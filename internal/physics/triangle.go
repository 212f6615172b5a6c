package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Triangle is a world-space triangle with its plane precomputed.
type Triangle struct {
	A, B, C  rl.Vector3
	Normal   rl.Vector3
	Constant float32 // plane: dot(Normal, p) + Constant = 0
}

// NewTriangle returns false for degenerate (zero-area) input.
func NewTriangle(a, b, c rl.Vector3) (Triangle, bool) {
	n := rl.Vector3CrossProduct(rl.Vector3Subtract(b, a), rl.Vector3Subtract(c, a))
	normal, area := normalize(n)
	if area < 1e-10 {
		return Triangle{}, false
	}
	return Triangle{
		A:        a,
		B:        b,
		C:        c,
		Normal:   normal,
		Constant: -rl.Vector3DotProduct(normal, a),
	}, true
}

func (t *Triangle) distanceToPoint(p rl.Vector3) float32 {
	return rl.Vector3DotProduct(t.Normal, p) + t.Constant
}

func (t *Triangle) centroid() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(rl.Vector3Add(t.A, t.B), t.C), 1.0/3.0)
}

// containsPoint reports whether the projection of p onto the triangle's plane
// lies inside the triangle.
func (t *Triangle) containsPoint(p rl.Vector3) bool {
	v0 := rl.Vector3Subtract(t.C, t.A)
	v1 := rl.Vector3Subtract(t.B, t.A)
	v2 := rl.Vector3Subtract(p, t.A)

	dot00 := rl.Vector3DotProduct(v0, v0)
	dot01 := rl.Vector3DotProduct(v0, v1)
	dot02 := rl.Vector3DotProduct(v0, v2)
	dot11 := rl.Vector3DotProduct(v1, v1)
	dot12 := rl.Vector3DotProduct(v1, v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return false
	}
	inv := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * inv
	v := (dot00*dot12 - dot01*dot02) * inv
	return u >= 0 && v >= 0 && u+v <= 1
}

// capsuleIntersect tests c against the triangle and returns the push-out
// normal and depth.
func (t *Triangle) capsuleIntersect(c *Capsule) (rl.Vector3, float32, bool) {
	d1 := t.distanceToPoint(c.Start) - c.Radius
	d2 := t.distanceToPoint(c.End) - c.Radius

	if (d1 > 0 && d2 > 0) || (d1 < -c.Radius && d2 < -c.Radius) {
		return rl.Vector3{}, 0, false
	}

	var delta float32
	if sum := math32.Abs(d1) + math32.Abs(d2); sum > 0 {
		delta = math32.Abs(d1 / sum)
	}
	point := rl.Vector3Lerp(c.Start, c.End, delta)
	if t.containsPoint(point) {
		return t.Normal, math32.Abs(math32.Min(d1, d2)), true
	}

	r2 := c.Radius * c.Radius
	edges := [3][2]rl.Vector3{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
	for _, edge := range edges {
		onCapsule, onEdge := segmentClosestPoints(c.Start, c.End, edge[0], edge[1])
		if distanceSqr(onCapsule, onEdge) >= r2 {
			continue
		}
		normal, dist := normalize(rl.Vector3Subtract(onCapsule, onEdge))
		if dist == 0 {
			// Segment passes through the edge; fall back to the face normal.
			normal = t.Normal
		}
		return normal, c.Radius - dist, true
	}

	return rl.Vector3{}, 0, false
}
