package scene

import (
	"capsulewalk/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// Node is one named element of a scene graph. Mesh is in local space and may
// be nil for pure grouping nodes.
type Node struct {
	Name      string
	Transform Transform
	Parent    *Node
	Children  []*Node
	Mesh      *Mesh
	Model     string // render asset path, empty for primitive meshes
	Color     rl.Color
}

func NewNode(name string) *Node {
	return &Node{
		Name: name,
		Transform: Transform{
			Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		Color:    rl.LightGray,
		Children: make([]*Node, 0),
	}
}

func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Walk visits n and its descendants depth-first. Returning false from fn
// stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// LocalMatrix applies scale, then rotation (X, Y, Z), then translation.
func (n *Node) LocalMatrix() rl.Matrix {
	t := n.Transform
	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	rotX := rl.MatrixRotateX(t.Rotation.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(t.Rotation.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(t.Rotation.Z * rl.Deg2rad)
	rot := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
	trans := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans)
}

func (n *Node) WorldMatrix() rl.Matrix {
	if n.Parent == nil {
		return n.LocalMatrix()
	}
	return rl.MatrixMultiply(n.LocalMatrix(), n.Parent.WorldMatrix())
}

// WorldPosition is the node origin in world space.
func (n *Node) WorldPosition() rl.Vector3 {
	if n.Parent == nil {
		return n.Transform.Position
	}
	return rl.Vector3Transform(n.Transform.Position, n.Parent.WorldMatrix())
}

// EachTriangle yields the node's own mesh triangles in world space.
func (n *Node) EachTriangle(fn func(a, b, c rl.Vector3)) {
	if n.Mesh == nil {
		return
	}
	m := n.WorldMatrix()
	n.Mesh.EachTriangle(func(a, b, c rl.Vector3) {
		fn(rl.Vector3Transform(a, m), rl.Vector3Transform(b, m), rl.Vector3Transform(c, m))
	})
}

// WorldBounds covers the node and all of its descendants. The result is
// empty when nothing below n has a mesh.
func (n *Node) WorldBounds() physics.AABB {
	bounds := physics.EmptyAABB()
	n.Walk(func(node *Node) bool {
		node.EachTriangle(func(a, b, c rl.Vector3) {
			bounds = bounds.Extend(a).Extend(b).Extend(c)
		})
		return true
	})
	return bounds
}
