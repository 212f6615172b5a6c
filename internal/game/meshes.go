package game

import (
	"capsulewalk/internal/assets"
	"capsulewalk/internal/scene"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var modelExtensions = map[string]bool{
	".glb":  true,
	".gltf": true,
	".obj":  true,
	".iqm":  true,
	".m3d":  true,
	".vox":  true,
}

type loadedModel struct {
	model rl.Model
	base  rl.Matrix // transform stored in the file
}

// raylibMeshes loads model files through raylib on the main thread. The
// models map is only touched from there.
type raylibMeshes struct {
	queue  *mainQueue
	models map[string]loadedModel
}

var _ assets.MeshSource = (*raylibMeshes)(nil)

func newRaylibMeshes(queue *mainQueue) *raylibMeshes {
	return &raylibMeshes{queue: queue, models: make(map[string]loadedModel)}
}

// LoadMesh is called from loader goroutines.
func (m *raylibMeshes) LoadMesh(path string) (*scene.Mesh, error) {
	if !modelExtensions[strings.ToLower(filepath.Ext(path))] {
		return nil, fmt.Errorf("model %s: %w", path, assets.ErrUnsupportedMesh)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}

	var (
		mesh    *scene.Mesh
		loadErr error
	)
	err := m.queue.Do(func() {
		lm, ok := m.models[path]
		if !ok {
			model := rl.LoadModel(path)
			if model.MeshCount == 0 {
				loadErr = fmt.Errorf("model %s: no meshes: %w", path, assets.ErrUnsupportedMesh)
				return
			}
			lm = loadedModel{model: model, base: model.Transform}
			m.models[path] = lm
		}
		mesh = assets.MeshFromModel(lm.model)
	})
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return mesh, loadErr
}

// model must be called on the main thread.
func (m *raylibMeshes) model(path string) (loadedModel, bool) {
	lm, ok := m.models[path]
	return lm, ok
}

func (m *raylibMeshes) Unload() {
	for path, lm := range m.models {
		rl.UnloadModel(lm.model)
		delete(m.models, path)
	}
}
