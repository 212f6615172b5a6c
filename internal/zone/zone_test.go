package zone

import (
	"capsulewalk/internal/physics"
	"capsulewalk/internal/scene"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// testGraph is a floor plus a 1x2x0.2 door centred at door.
func testGraph(name string, door rl.Vector3, withDoor bool) *scene.Graph {
	g := scene.NewGraph(name)
	floor := scene.NewNode("Floor")
	floor.Mesh = scene.PlaneMesh(40, 40)
	g.Root.AddChild(floor)
	if withDoor {
		n := scene.NewNode("Door")
		n.Transform.Position = door
		n.Mesh = scene.BoxMesh(rl.Vector3{X: 1, Y: 2, Z: 0.2})
		g.Root.AddChild(n)
	}
	return g
}

func capsuleAt(eye rl.Vector3) physics.Capsule {
	return physics.NewCapsule(rl.Vector3Subtract(eye, rl.Vector3{Y: 1.15}), eye, 0.35)
}

// eyeAt puts the eye d units in front of the door's +Z face.
func eyeAt(door rl.Vector3, d float32) rl.Vector3 {
	return rl.Vector3{X: door.X, Y: door.Y, Z: door.Z + 0.1 + d}
}

var (
	outsideDoor = rl.Vector3{X: 0, Y: 1, Z: -10}
	insideDoor  = rl.Vector3{X: 5, Y: 1, Z: 5}
)

func newSwitcher(t *testing.T, insideHasDoor bool) (*Switcher, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewSwitcher(NewZone("outside", testGraph("outside", outsideDoor, true), "Door"), DefaultSettings(), zap.New(core))
	s.MarkLoaded(NewZone("inside", testGraph("inside", insideDoor, insideHasDoor), "Door"))
	return s, logs
}

func TestNewDoor(t *testing.T) {
	g := testGraph("outside", outsideDoor, true)
	door := NewDoor(g, "Door")
	require.NotNil(t, door)

	assert.Equal(t, outsideDoor, door.Anchor)
	assert.InDelta(t, -0.5, door.Bounds.Min.X, 1e-5)
	assert.InDelta(t, 2.0, door.Bounds.Max.Y, 1e-5)
	assert.InDelta(t, 0.0, door.Distance(outsideDoor), 1e-6)
	assert.InDelta(t, 1.0, door.Distance(eyeAt(outsideDoor, 1)), 1e-5)

	assert.Nil(t, NewDoor(g, "door"))
}

func TestNewDoorMarkerNode(t *testing.T) {
	g := scene.NewGraph("marker")
	n := scene.NewNode("Door")
	n.Transform.Position = rl.Vector3{X: 3}
	g.Root.AddChild(n)

	door := NewDoor(g, "Door")
	require.NotNil(t, door)
	assert.InDelta(t, 2.0, door.Distance(rl.Vector3{X: 5}), 1e-6)
}

func TestZoneBuildsIndex(t *testing.T) {
	z := NewZone("outside", testGraph("outside", outsideDoor, true), "Door")
	assert.Equal(t, 2+12, z.Index.TriangleCount())
	assert.NotNil(t, z.Door)
}

func TestSwitcherTransitionRebasesCapsule(t *testing.T) {
	s, logs := newSwitcher(t, true)
	c := capsuleAt(eyeAt(outsideDoor, 0.9))
	length := c.Length()
	vel := rl.Vector3{X: 1, Y: -2, Z: 3}

	require.True(t, s.Update(&c, &vel))

	// translated by -outside anchor then +inside anchor
	want := rl.Vector3Add(eyeAt(outsideDoor, 0.9), rl.Vector3Subtract(insideDoor, outsideDoor))
	assert.InDelta(t, want.X, c.End.X, 1e-5)
	assert.InDelta(t, want.Y, c.End.Y, 1e-5)
	assert.InDelta(t, want.Z, c.End.Z, 1e-5)
	assert.InDelta(t, length, c.Length(), 1e-5)

	assert.Equal(t, rl.Vector3{X: 1, Y: 5, Z: 3}, vel)
	assert.Equal(t, Inside, s.State())
	assert.Equal(t, "inside", s.Active().Name)
	assert.False(t, s.DoorActive())
	assert.Equal(t, 1, logs.FilterMessage("zone transition").Len())
}

func TestSwitcherHysteresis(t *testing.T) {
	s, _ := newSwitcher(t, true)
	c := capsuleAt(eyeAt(outsideDoor, 1.0))
	var vel rl.Vector3

	require.True(t, s.Update(&c, &vel))
	require.Equal(t, Inside, s.State())

	// lingering in the doorway on the inside never flips back
	transitions := 0
	for i := 0; i < 50; i++ {
		d := float32(1.0) + float32(i%5)*0.1
		c = capsuleAt(eyeAt(insideDoor, d))
		if s.Update(&c, &vel) {
			transitions++
		}
	}
	assert.Zero(t, transitions)
	assert.Equal(t, Inside, s.State())

	// the band between trigger and rearm keeps the latch cleared
	c = capsuleAt(eyeAt(insideDoor, 1.8))
	assert.False(t, s.Update(&c, &vel))
	assert.False(t, s.DoorActive())

	c = capsuleAt(eyeAt(insideDoor, 2.5))
	assert.False(t, s.Update(&c, &vel))
	assert.True(t, s.DoorActive())

	c = capsuleAt(eyeAt(insideDoor, 1.2))
	assert.True(t, s.Update(&c, &vel))
	assert.Equal(t, Outside, s.State())
	assert.Equal(t, "outside", s.Active().Name)
}

func TestSwitcherWaitsForInsideZone(t *testing.T) {
	s := NewSwitcher(NewZone("outside", testGraph("outside", outsideDoor, true), "Door"), DefaultSettings(), zap.NewNop())
	c := capsuleAt(eyeAt(outsideDoor, 0.5))
	before := c
	vel := rl.Vector3{Y: -1}

	assert.False(t, s.Loaded())
	assert.False(t, s.Update(&c, &vel))
	assert.Equal(t, before, c)
	assert.Equal(t, float32(-1), vel.Y)
	assert.True(t, s.DoorActive())

	s.MarkLoaded(NewZone("inside", testGraph("inside", insideDoor, true), "Door"))
	assert.True(t, s.Loaded())
	assert.True(t, s.Update(&c, &vel))
}

func TestSwitcherMissingDoor(t *testing.T) {
	s, _ := newSwitcher(t, false)
	c := capsuleAt(eyeAt(outsideDoor, 0.5))
	var vel rl.Vector3

	assert.False(t, s.Update(&c, &vel))
	assert.Equal(t, Outside, s.State())
}

func TestSwitcherMissingDoorIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	NewSwitcher(NewZone("outside", testGraph("outside", outsideDoor, false), "Door"), DefaultSettings(), zap.New(core))

	entries := logs.FilterMessage("zone has no door, transitions disabled").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "outside", entries[0].ContextMap()["zone"])
}
