package assets

import (
	"capsulewalk/internal/scene"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var ErrUnknownScene = errors.New("unknown scene")

// Loader resolves a scene id into a scene graph.
type Loader interface {
	Load(ctx context.Context, id string) (*scene.Graph, error)
}

// Manager loads scene manifests from a directory and caches the resulting
// graphs. Concurrent loads of the same id share one decode.
type Manager struct {
	dir    string
	meshes MeshSource
	log    *zap.Logger

	mu     sync.Mutex
	graphs map[string]*scene.Graph
	group  singleflight.Group
}

var _ Loader = (*Manager)(nil)

func NewManager(dir string, meshes MeshSource, log *zap.Logger) *Manager {
	if meshes == nil {
		meshes = PrimitivesOnly{}
	}
	return &Manager{
		dir:    dir,
		meshes: meshes,
		log:    log,
		graphs: make(map[string]*scene.Graph),
	}
}

// Load returns the graph for id, where id is a manifest file name relative to
// the manager's directory.
func (m *Manager) Load(ctx context.Context, id string) (*scene.Graph, error) {
	m.mu.Lock()
	if g, ok := m.graphs[id]; ok {
		m.mu.Unlock()
		return g, nil
	}
	m.mu.Unlock()

	v, err, _ := m.group.Do(id, func() (any, error) {
		m.mu.Lock()
		g, ok := m.graphs[id]
		m.mu.Unlock()
		if ok {
			return g, nil
		}
		return m.load(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*scene.Graph), nil
}

func (m *Manager) load(ctx context.Context, id string) (*scene.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	path := filepath.Join(m.dir, id)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("scene %s: %w", id, ErrUnknownScene)
		}
		return nil, fmt.Errorf("open scene %s: %w", id, err)
	}
	defer f.Close()

	manifest, err := DecodeManifest(f)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", id, err)
	}
	if manifest.Name == "" {
		manifest.Name = id
	}

	g, err := manifest.Build(filepath.Dir(path), m.meshes)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.graphs[id] = g
	m.mu.Unlock()

	m.log.Info("scene loaded",
		zap.String("id", id),
		zap.Int("nodes", len(g.Nodes())),
		zap.Int("triangles", g.TriangleCount()),
		zap.Duration("took", time.Since(start)))
	return g, nil
}

// LoadAsync starts loading id on its own goroutine.
func (m *Manager) LoadAsync(ctx context.Context, id string) *Future {
	return Go(ctx, m, id)
}

// Unload drops every cached graph.
func (m *Manager) Unload() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.graphs = make(map[string]*scene.Graph)
}
