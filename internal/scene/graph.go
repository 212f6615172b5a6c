package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Graph is a loaded scene: a node hierarchy plus render settings.
type Graph struct {
	Name       string
	Root       *Node
	Background rl.Color
	Spawn      rl.Vector3 // offset applied to the player spawn capsule
}

func NewGraph(name string) *Graph {
	return &Graph{
		Name:       name,
		Root:       NewNode(name),
		Background: rl.NewColor(0x88, 0xcc, 0xff, 0xff),
	}
}

// FindByName returns the first node, depth-first, whose name matches exactly.
func (g *Graph) FindByName(name string) *Node {
	var found *Node
	g.Root.Walk(func(n *Node) bool {
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// EachTriangle yields every mesh triangle in the graph in world space.
func (g *Graph) EachTriangle(fn func(a, b, c rl.Vector3)) {
	g.Root.Walk(func(n *Node) bool {
		n.EachTriangle(fn)
		return true
	})
}

// Nodes returns all nodes in depth-first order.
func (g *Graph) Nodes() []*Node {
	var nodes []*Node
	g.Root.Walk(func(n *Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}

func (g *Graph) TriangleCount() int {
	count := 0
	g.Root.Walk(func(n *Node) bool {
		if n.Mesh != nil {
			count += n.Mesh.TriangleCount()
		}
		return true
	})
	return count
}
