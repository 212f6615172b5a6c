package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Resolve pushes c out of the single contact reported by q and reports
// whether that contact counts as floor. Wall and ceiling contacts remove the
// velocity component along the normal so the capsule slides.
func Resolve(q Querier, c *Capsule, vel *rl.Vector3) bool {
	contact, ok := q.Query(*c)
	if !ok {
		return false
	}

	onFloor := contact.Normal.Y > 0
	if !onFloor {
		along := rl.Vector3DotProduct(contact.Normal, *vel)
		*vel = rl.Vector3Subtract(*vel, rl.Vector3Scale(contact.Normal, along))
	}

	c.Translate(rl.Vector3Scale(contact.Normal, contact.Depth))
	return onFloor
}
