package assets

import (
	"capsulewalk/internal/scene"
	"fmt"
	"io"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Manifest is the on-disk description of a scene graph.
type Manifest struct {
	Name       string     `yaml:"name"`
	Background string     `yaml:"background,omitempty"`
	Spawn      [3]float32 `yaml:"spawn"`
	Nodes      []NodeDef  `yaml:"nodes"`
}

type NodeDef struct {
	Name     string      `yaml:"name"`
	Position [3]float32  `yaml:"position"`
	Rotation [3]float32  `yaml:"rotation,omitempty"`
	Scale    *[3]float32 `yaml:"scale,omitempty"`
	Color    string      `yaml:"color,omitempty"`
	Mesh     *MeshDef    `yaml:"mesh,omitempty"`
	Children []NodeDef   `yaml:"children,omitempty"`
}

// MeshDef selects a primitive (box, plane, ramp) or a model file.
type MeshDef struct {
	Kind string     `yaml:"kind"`
	Size [3]float32 `yaml:"size,omitempty"`
	Path string     `yaml:"path,omitempty"`
}

// DecodeManifest reads a YAML scene manifest.
func DecodeManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}

// Build turns the manifest into a scene graph. Model paths are resolved
// relative to dir and loaded through meshes.
func (m *Manifest) Build(dir string, meshes MeshSource) (*scene.Graph, error) {
	g := scene.NewGraph(m.Name)
	if m.Background != "" {
		c, err := ParseColor(m.Background)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", m.Name, err)
		}
		g.Background = c
	}
	g.Spawn = vec(m.Spawn)

	for i := range m.Nodes {
		n, err := buildNode(&m.Nodes[i], dir, meshes)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", m.Name, err)
		}
		g.Root.AddChild(n)
	}
	return g, nil
}

func buildNode(def *NodeDef, dir string, meshes MeshSource) (*scene.Node, error) {
	n := scene.NewNode(def.Name)
	n.Transform.Position = vec(def.Position)
	n.Transform.Rotation = vec(def.Rotation)
	if def.Scale != nil {
		n.Transform.Scale = vec(*def.Scale)
	}
	if def.Color != "" {
		c, err := ParseColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", def.Name, err)
		}
		n.Color = c
	}

	if def.Mesh != nil {
		size := vec(def.Mesh.Size)
		switch def.Mesh.Kind {
		case "box":
			n.Mesh = scene.BoxMesh(size)
		case "plane":
			n.Mesh = scene.PlaneMesh(size.X, size.Z)
		case "ramp":
			n.Mesh = scene.RampMesh(size)
		case "model":
			path := filepath.Join(dir, def.Mesh.Path)
			mesh, err := meshes.LoadMesh(path)
			if err != nil {
				return nil, fmt.Errorf("node %s: %w", def.Name, err)
			}
			n.Mesh = mesh
			n.Model = path
		default:
			return nil, fmt.Errorf("node %s: mesh kind %q: %w", def.Name, def.Mesh.Kind, ErrUnsupportedMesh)
		}
	}

	for i := range def.Children {
		child, err := buildNode(&def.Children[i], dir, meshes)
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

func vec(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
