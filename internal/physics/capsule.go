package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Capsule is a segment swept by a sphere. It is only ever moved by
// translation so the segment length stays fixed.
type Capsule struct {
	Start  rl.Vector3
	End    rl.Vector3
	Radius float32
}

func NewCapsule(start, end rl.Vector3, radius float32) Capsule {
	return Capsule{Start: start, End: end, Radius: radius}
}

// Translate moves both segment ends by v.
func (c *Capsule) Translate(v rl.Vector3) {
	c.Start = rl.Vector3Add(c.Start, v)
	c.End = rl.Vector3Add(c.End, v)
}

func (c Capsule) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(c.Start, c.End), 0.5)
}

func (c Capsule) Length() float32 {
	return rl.Vector3Distance(c.Start, c.End)
}

// Bounds returns the capsule's AABB including the radius.
func (c Capsule) Bounds() AABB {
	r := rl.Vector3{X: c.Radius, Y: c.Radius, Z: c.Radius}
	return AABB{
		Min: rl.Vector3Subtract(vector3Min(c.Start, c.End), r),
		Max: rl.Vector3Add(vector3Max(c.Start, c.End), r),
	}
}

// ClosestPoint returns the point on the segment nearest to p.
func (c Capsule) ClosestPoint(p rl.Vector3) rl.Vector3 {
	seg := rl.Vector3Subtract(c.End, c.Start)
	lenSq := rl.Vector3DotProduct(seg, seg)
	if lenSq == 0 {
		return c.Start
	}
	t := clamp(rl.Vector3DotProduct(rl.Vector3Subtract(p, c.Start), seg)/lenSq, 0, 1)
	return rl.Vector3Add(c.Start, rl.Vector3Scale(seg, t))
}
