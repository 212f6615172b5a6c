package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxLeafTriangles = 4
	maxTreeDepth     = 20
)

// TriangleSource is anything that can enumerate world-space triangles,
// typically a loaded scene graph.
type TriangleSource interface {
	EachTriangle(fn func(a, b, c rl.Vector3))
}

// Querier answers capsule penetration queries.
type Querier interface {
	Query(c Capsule) (Contact, bool)
}

// Contact is the push-out needed to separate a capsule from the world.
// Normal points from the surface toward the capsule.
type Contact struct {
	Normal rl.Vector3
	Depth  float32
}

// bvhNode is a node in the bounding volume hierarchy
type bvhNode struct {
	bounds    AABB
	left      *bvhNode
	right     *bvhNode
	triangles []int // indices into the triangle array (only for leaf nodes)
}

// Index is a static bounding volume hierarchy over world triangles.
// It is immutable after construction.
type Index struct {
	triangles []Triangle
	root      *bvhNode
}

// Build copies every triangle out of src and builds the hierarchy.
func Build(src TriangleSource) *Index {
	var tris []Triangle
	src.EachTriangle(func(a, b, c rl.Vector3) {
		if tri, ok := NewTriangle(a, b, c); ok {
			tris = append(tris, tri)
		}
	})
	return NewIndex(tris)
}

// NewIndex builds the hierarchy over tris. The slice is retained.
func NewIndex(tris []Triangle) *Index {
	idx := &Index{triangles: tris}
	if len(tris) == 0 {
		return idx
	}

	indices := make([]int, len(tris))
	for i := range indices {
		indices[i] = i
	}
	idx.root = idx.buildNode(indices, 0)
	return idx
}

func (idx *Index) buildNode(indices []int, depth int) *bvhNode {
	node := &bvhNode{bounds: idx.computeBounds(indices)}

	if len(indices) <= maxLeafTriangles || depth > maxTreeDepth {
		node.triangles = indices
		return node
	}

	// Split on the longest axis
	size := node.bounds.Size()
	axis := 0
	if size.Y > size.X {
		axis = 1
	}
	if size.Z > getAxisValue(size, axis) {
		axis = 2
	}

	mid := idx.partition(indices, axis)
	if mid == 0 || mid == len(indices) {
		node.triangles = indices
		return node
	}

	node.left = idx.buildNode(indices[:mid], depth+1)
	node.right = idx.buildNode(indices[mid:], depth+1)
	return node
}

func (idx *Index) computeBounds(indices []int) AABB {
	bounds := EmptyAABB()
	for _, i := range indices {
		tri := &idx.triangles[i]
		bounds = bounds.Extend(tri.A).Extend(tri.B).Extend(tri.C)
	}
	return bounds
}

// partition splits indices around the mean centroid on axis.
func (idx *Index) partition(indices []int, axis int) int {
	var center float32
	for _, i := range indices {
		center += getAxisValue(idx.triangles[i].centroid(), axis)
	}
	center /= float32(len(indices))

	left, right := 0, len(indices)-1
	for left <= right {
		if getAxisValue(idx.triangles[indices[left]].centroid(), axis) < center {
			left++
		} else {
			indices[left], indices[right] = indices[right], indices[left]
			right--
		}
	}
	return left
}

func (idx *Index) TriangleCount() int {
	return len(idx.triangles)
}

// Bounds returns the box around all indexed triangles.
func (idx *Index) Bounds() AABB {
	if idx.root == nil {
		return AABB{}
	}
	return idx.root.bounds
}

func (idx *Index) candidates(node *bvhNode, query AABB, out []int) []int {
	if node == nil || !node.bounds.Intersects(query) {
		return out
	}
	if node.triangles != nil {
		return append(out, node.triangles...)
	}
	out = idx.candidates(node.left, query, out)
	return idx.candidates(node.right, query, out)
}

// Query resolves c against every nearby triangle on a scratch copy and
// reports the total displacement as a single contact. It returns false when
// the capsule touches nothing.
func (idx *Index) Query(c Capsule) (Contact, bool) {
	if idx.root == nil {
		return Contact{}, false
	}

	scratch := c
	hit := false
	for _, i := range idx.candidates(idx.root, c.Bounds(), nil) {
		tri := &idx.triangles[i]
		if normal, depth, ok := tri.capsuleIntersect(&scratch); ok {
			hit = true
			scratch.Translate(rl.Vector3Scale(normal, depth))
		}
	}
	if !hit {
		return Contact{}, false
	}

	normal, depth := normalize(rl.Vector3Subtract(scratch.Center(), c.Center()))
	if depth == 0 {
		return Contact{}, false
	}
	return Contact{Normal: normal, Depth: depth}, true
}
