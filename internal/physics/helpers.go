package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func getAxisValue(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func vector3Min(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: math32.Min(a.X, b.X),
		Y: math32.Min(a.Y, b.Y),
		Z: math32.Min(a.Z, b.Z),
	}
}

func vector3Max(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: math32.Max(a.X, b.X),
		Y: math32.Max(a.Y, b.Y),
		Z: math32.Max(a.Z, b.Z),
	}
}

// normalize returns the zero vector for zero-length input instead of NaNs.
func normalize(v rl.Vector3) (rl.Vector3, float32) {
	length := rl.Vector3Length(v)
	if length < 1e-12 {
		return rl.Vector3{}, 0
	}
	return rl.Vector3Scale(v, 1/length), length
}

// segmentClosestPoints returns the closest points between segments p1-q1 and p2-q2.
func segmentClosestPoints(p1, q1, p2, q2 rl.Vector3) (rl.Vector3, rl.Vector3) {
	const eps = 1e-9

	d1 := rl.Vector3Subtract(q1, p1)
	d2 := rl.Vector3Subtract(q2, p2)
	r := rl.Vector3Subtract(p1, p2)
	a := rl.Vector3DotProduct(d1, d1)
	e := rl.Vector3DotProduct(d2, d2)
	f := rl.Vector3DotProduct(d2, r)

	var s, t float32
	switch {
	case a <= eps && e <= eps:
		return p1, p2
	case a <= eps:
		t = clamp(f/e, 0, 1)
	default:
		c := rl.Vector3DotProduct(d1, r)
		if e <= eps {
			s = clamp(-c/a, 0, 1)
			break
		}
		b := rl.Vector3DotProduct(d1, d2)
		denom := a*e - b*b
		if denom != 0 {
			s = clamp((b*f-c*e)/denom, 0, 1)
		}
		t = (b*s + f) / e
		if t < 0 {
			t = 0
			s = clamp(-c/a, 0, 1)
		} else if t > 1 {
			t = 1
			s = clamp((b-c)/a, 0, 1)
		}
	}

	return rl.Vector3Add(p1, rl.Vector3Scale(d1, s)), rl.Vector3Add(p2, rl.Vector3Scale(d2, t))
}

func distanceSqr(a, b rl.Vector3) float32 {
	d := rl.Vector3Subtract(a, b)
	return rl.Vector3DotProduct(d, d)
}
