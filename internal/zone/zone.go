package zone

import (
	"capsulewalk/internal/physics"
	"capsulewalk/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Door is the trigger volume of a zone: the world bounds of the door node and
// its world position, which anchors the zone's coordinate frame.
type Door struct {
	Bounds physics.AABB
	Anchor rl.Vector3
}

// NewDoor looks up the node called name. It returns nil when the graph has no
// such node.
func NewDoor(g *scene.Graph, name string) *Door {
	node := g.FindByName(name)
	if node == nil {
		return nil
	}
	bounds := node.WorldBounds()
	if bounds.IsEmpty() {
		// Meshless marker node
		p := node.WorldPosition()
		bounds = physics.AABB{Min: p, Max: p}
	}
	return &Door{Bounds: bounds, Anchor: node.WorldPosition()}
}

// Distance is zero inside the volume.
func (d *Door) Distance(p rl.Vector3) float32 {
	return d.Bounds.DistanceToPoint(p)
}

// Zone is one independently modelled sub-scene with its collision index.
type Zone struct {
	Name  string
	Graph *scene.Graph
	Index *physics.Index
	Door  *Door
}

func NewZone(name string, g *scene.Graph, doorNode string) *Zone {
	return &Zone{
		Name:  name,
		Graph: g,
		Index: physics.Build(g),
		Door:  NewDoor(g, doorNode),
	}
}
