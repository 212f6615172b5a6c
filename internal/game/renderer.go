package game

import (
	"capsulewalk/internal/camera"
	"capsulewalk/internal/physics"
	"capsulewalk/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type drawItem struct {
	node     *scene.Node
	bounds   physics.AABB
	vertices []rl.Vector3 // world-space triangles for primitive nodes
}

// Renderer draws the active zone. Scenes are static, so world-space
// geometry is baked once per graph.
type Renderer struct {
	meshes *raylibMeshes
	items  map[*scene.Graph][]drawItem

	Drawn  int
	Culled int
}

func NewRenderer(meshes *raylibMeshes) *Renderer {
	return &Renderer{meshes: meshes, items: make(map[*scene.Graph][]drawItem)}
}

func (r *Renderer) bake(g *scene.Graph) []drawItem {
	if items, ok := r.items[g]; ok {
		return items
	}
	var items []drawItem
	for _, n := range g.Nodes() {
		if n.Mesh == nil {
			continue
		}
		item := drawItem{node: n, bounds: physics.EmptyAABB()}
		n.EachTriangle(func(a, b, c rl.Vector3) {
			item.bounds = item.bounds.Extend(a).Extend(b).Extend(c)
			if n.Model == "" {
				item.vertices = append(item.vertices, a, b, c)
			}
		})
		items = append(items, item)
	}
	r.items[g] = items
	return items
}

// Draw must run between BeginMode3D and EndMode3D.
func (r *Renderer) Draw(g *scene.Graph, cam *camera.Camera) {
	frustum := cam.Frustum()
	r.Drawn, r.Culled = 0, 0

	for _, item := range r.bake(g) {
		if !frustum.ContainsBox(item.bounds) {
			r.Culled++
			continue
		}
		r.Drawn++

		if item.node.Model != "" {
			lm, ok := r.meshes.model(item.node.Model)
			if !ok {
				continue
			}
			model := lm.model
			model.Transform = rl.MatrixMultiply(lm.base, item.node.WorldMatrix())
			rl.DrawModel(model, rl.Vector3Zero(), 1.0, item.node.Color)
			continue
		}

		v := item.vertices
		for i := 0; i+2 < len(v); i += 3 {
			rl.DrawTriangle3D(v[i], v[i+1], v[i+2], item.node.Color)
		}
	}
}
