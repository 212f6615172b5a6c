package assets

import (
	"capsulewalk/internal/scene"
	"errors"
	"fmt"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrUnsupportedMesh = errors.New("unsupported mesh")

// MeshSource loads model files into collision meshes.
type MeshSource interface {
	LoadMesh(path string) (*scene.Mesh, error)
}

// PrimitivesOnly rejects every model file. Headless runs use it since raylib
// model loading needs a GL context.
type PrimitivesOnly struct{}

func (PrimitivesOnly) LoadMesh(path string) (*scene.Mesh, error) {
	return nil, fmt.Errorf("model %s: %w", path, ErrUnsupportedMesh)
}

// MeshFromModel copies the triangles of every mesh in model into one
// local-space mesh, applying the model's root transform.
func MeshFromModel(model rl.Model) *scene.Mesh {
	out := &scene.Mesh{}
	meshes := unsafe.Slice(model.Meshes, model.MeshCount)

	for _, mesh := range meshes {
		vertices := unsafe.Slice(mesh.Vertices, mesh.VertexCount*3)
		base := int32(len(out.Vertices))
		for i := int32(0); i < mesh.VertexCount; i++ {
			v := rl.Vector3{X: vertices[i*3+0], Y: vertices[i*3+1], Z: vertices[i*3+2]}
			out.Vertices = append(out.Vertices, rl.Vector3Transform(v, model.Transform))
		}

		if mesh.Indices != nil {
			// Indexed mesh
			indices := unsafe.Slice(mesh.Indices, mesh.TriangleCount*3)
			for _, i := range indices {
				out.Indices = append(out.Indices, base+int32(i))
			}
		} else {
			// Non-indexed mesh (every 3 vertices = 1 triangle)
			for i := int32(0); i < mesh.VertexCount/3*3; i++ {
				out.Indices = append(out.Indices, base+i)
			}
		}
	}

	return out
}
