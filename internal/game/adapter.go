package game

import (
	"capsulewalk/internal/camera"
	"capsulewalk/internal/input"
	"capsulewalk/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const touchDragScale = 0.005 // radians per pixel

// inputAdapter polls raylib and writes the held-state maps and look deltas.
type inputAdapter struct {
	mouse  *input.MouseLook
	orient *input.OrientationLook

	locked     bool
	dragging   bool
	lastTouch  rl.Vector2
	yaw, pitch float32
}

func newInputAdapter(look input.Look) *inputAdapter {
	a := &inputAdapter{}
	switch l := look.(type) {
	case *input.MouseLook:
		a.mouse = l
	case *input.OrientationLook:
		a.orient = l
	}
	return a
}

func (a *inputAdapter) Poll(w *world.World) {
	w.Keys[input.KeyForward] = rl.IsKeyDown(rl.KeyW)
	w.Keys[input.KeyBack] = rl.IsKeyDown(rl.KeyS)
	w.Keys[input.KeyLeft] = rl.IsKeyDown(rl.KeyA)
	w.Keys[input.KeyRight] = rl.IsKeyDown(rl.KeyD)
	w.Keys[input.KeyJump] = rl.IsKeyDown(rl.KeySpace)

	if a.mouse != nil {
		a.pollPointer()
	}
	if a.orient != nil {
		a.pollTouch(w)
	}
}

// pollPointer only turns the camera while the cursor is captured.
func (a *inputAdapter) pollPointer() {
	if !a.locked && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		rl.DisableCursor()
		a.locked = true
		return
	}
	if a.locked && rl.IsKeyPressed(rl.KeyEscape) {
		rl.EnableCursor()
		a.locked = false
		return
	}
	if a.locked {
		d := rl.GetMouseDelta()
		a.mouse.Move(d.X, d.Y)
	}
}

// pollTouch maps touches on the on-screen buttons to Buttons and drags
// anywhere else to an absolute orientation.
func (a *inputAdapter) pollTouch(w *world.World) {
	forward, back := touchButtons(rl.GetScreenWidth(), rl.GetScreenHeight())
	w.Buttons[input.ButtonForward] = false
	w.Buttons[input.ButtonBack] = false

	var (
		look    rl.Vector2
		hasLook bool
	)
	for i := int32(0); i < rl.GetTouchPointCount(); i++ {
		p := rl.GetTouchPosition(i)
		switch {
		case rl.CheckCollisionPointRec(p, forward):
			w.Buttons[input.ButtonForward] = true
		case rl.CheckCollisionPointRec(p, back):
			w.Buttons[input.ButtonBack] = true
		case !hasLook:
			look, hasLook = p, true
		}
	}

	if !hasLook {
		a.dragging = false
		return
	}
	if a.dragging {
		a.yaw -= (look.X - a.lastTouch.X) * touchDragScale
		a.pitch = camera.ClampPitch(a.pitch - (look.Y-a.lastTouch.Y)*touchDragScale)
		a.orient.Set(a.yaw, a.pitch, 0)
	}
	a.lastTouch = look
	a.dragging = true
}

func (a *inputAdapter) Locked() bool {
	return a.locked
}

// touchButtons lays out the forward and back buttons in the bottom-left
// corner of a w x h screen.
func touchButtons(w, h int) (forward, back rl.Rectangle) {
	size := float32(h) / 6
	if size < 64 {
		size = 64
	}
	margin := size / 4
	back = rl.Rectangle{X: margin, Y: float32(h) - margin - size, Width: size, Height: size}
	forward = rl.Rectangle{X: margin, Y: back.Y - margin - size, Width: size, Height: size}
	return forward, back
}
