package game

import (
	"capsulewalk/internal/input"
	"capsulewalk/internal/world"
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudWidth   = 260
	hudLine    = 20
	statusSize = 24
)

// hudStats are the per-frame numbers the game collects for the overlay.
type hudStats struct {
	updateMs float64
	drawMs   float64
	drawn    int
	culled   int
	loading  string // scene still loading, empty when done
}

func drawHUD(w *world.World, a *inputAdapter, s hudStats) {
	p := w.Player
	lines := []string{
		fmt.Sprintf("FPS: %d", rl.GetFPS()),
		fmt.Sprintf("Zone: %s (door %s)", w.Zones.Active().Name, armed(w.Zones.DoorActive())),
		fmt.Sprintf("Grounded: %t", p.OnFloor),
		fmt.Sprintf("Eye: %.1f %.1f %.1f", p.Collider.End.X, p.Collider.End.Y, p.Collider.End.Z),
		fmt.Sprintf("Speed: %.1f", rl.Vector3Length(p.Velocity)),
	}
	if d, ok := w.GroundDistance(50); ok {
		lines = append(lines, fmt.Sprintf("Ground: %.2f", d))
	}
	lines = append(lines,
		fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms", s.updateMs, s.drawMs),
		fmt.Sprintf("Nodes: %d drawn, %d culled", s.drawn, s.culled),
	)
	if s.loading != "" {
		lines = append(lines, "Loading "+s.loading+"...")
	}

	panel := rl.Rectangle{X: 10, Y: 10, Width: hudWidth, Height: float32(len(lines)*hudLine + 34)}
	gui.Panel(panel, "capsulewalk")
	for i, line := range lines {
		gui.Label(rl.Rectangle{X: 18, Y: 40 + float32(i*hudLine), Width: hudWidth - 16, Height: hudLine}, line)
	}

	sw, sh := rl.GetScreenWidth(), rl.GetScreenHeight()
	if w.Mode == input.ModeTouch {
		forward, back := touchButtons(sw, sh)
		drawTouchButton(forward, "Forward", w.Buttons[input.ButtonForward])
		drawTouchButton(back, "Back", w.Buttons[input.ButtonBack])
		return
	}

	help := "Click to look around"
	if a.Locked() {
		help = "WASD to move, Space to jump, Esc to release the mouse"
	}
	gui.StatusBar(rl.Rectangle{X: 0, Y: float32(sh - statusSize), Width: float32(sw), Height: statusSize}, help)
}

func drawTouchButton(r rl.Rectangle, label string, held bool) {
	bg := rl.Fade(rl.DarkGray, 0.5)
	if held {
		bg = rl.Fade(rl.SkyBlue, 0.7)
	}
	rl.DrawRectangleRounded(r, 0.3, 8, bg)
	textW := rl.MeasureText(label, 20)
	rl.DrawText(label, int32(r.X+r.Width/2)-textW/2, int32(r.Y+r.Height/2)-10, 20, rl.White)
}

func armed(active bool) string {
	if active {
		return "armed"
	}
	return "latched"
}

// drawLoading is shown until the primary scene is ready.
func drawLoading(id string, frame int) {
	dots := [...]string{"", ".", "..", "..."}[frame/20%4]
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(0x88, 0xcc, 0xff, 0xff))
	text := "Loading " + id + dots
	rl.DrawText(text, int32(rl.GetScreenWidth())/2-rl.MeasureText("Loading "+id, 30)/2, int32(rl.GetScreenHeight())/2-15, 30, rl.DarkBlue)
	rl.EndDrawing()
}
