package assets

import (
	"capsulewalk/internal/scene"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const outsideYAML = `
name: outside
background: "#88ccff"
spawn: [0, 0.35, 0]
nodes:
  - name: Ground
    mesh: {kind: plane, size: [40, 0, 40]}
    color: DarkGreen
  - name: House
    position: [0, 0, -10]
    children:
      - name: Door
        position: [0, 1, 2]
        mesh: {kind: box, size: [1, 2, 0.2]}
        color: Brown
  - name: Ramp
    position: [6, 0, 0]
    scale: [2, 1, 1]
    mesh: {kind: ramp, size: [2, 1, 4]}
`

type fakeMeshes struct {
	calls atomic.Int32
}

func (f *fakeMeshes) LoadMesh(path string) (*scene.Mesh, error) {
	f.calls.Add(1)
	return scene.BoxMesh(rl.Vector3{X: 1, Y: 1, Z: 1}), nil
}

func writeScene(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestManifestBuild(t *testing.T) {
	m, err := DecodeManifest(strings.NewReader(outsideYAML))
	require.NoError(t, err)

	g, err := m.Build(".", PrimitivesOnly{})
	require.NoError(t, err)

	assert.Equal(t, "outside", g.Name)
	assert.Equal(t, rl.NewColor(0x88, 0xcc, 0xff, 0xff), g.Background)
	assert.Equal(t, rl.Vector3{Y: 0.35}, g.Spawn)

	door := g.FindByName("Door")
	require.NotNil(t, door)
	assert.Equal(t, rl.Brown, door.Color)
	pos := door.WorldPosition()
	assert.InDelta(t, 1.0, pos.Y, 1e-5)
	assert.InDelta(t, -8.0, pos.Z, 1e-5)

	ramp := g.FindByName("Ramp")
	require.NotNil(t, ramp)
	assert.Equal(t, rl.Vector3{X: 2, Y: 1, Z: 1}, ramp.Transform.Scale)

	assert.Equal(t, 2+12+6, g.TriangleCount())
}

func TestManifestRejectsUnknownFields(t *testing.T) {
	_, err := DecodeManifest(strings.NewReader("name: x\nnodez: []\n"))
	assert.Error(t, err)
}

func TestManifestMeshErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"model without source", "nodes:\n  - name: Statue\n    mesh: {kind: model, path: statue.glb}\n"},
		{"unknown kind", "nodes:\n  - name: Blob\n    mesh: {kind: sphere}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := DecodeManifest(strings.NewReader(tt.body))
			require.NoError(t, err)
			_, err = m.Build(".", PrimitivesOnly{})
			assert.ErrorIs(t, err, ErrUnsupportedMesh)
		})
	}
}

func TestManifestModelNodeUsesMeshSource(t *testing.T) {
	m, err := DecodeManifest(strings.NewReader("nodes:\n  - name: Statue\n    mesh: {kind: model, path: statue.glb}\n"))
	require.NoError(t, err)

	src := &fakeMeshes{}
	g, err := m.Build("assets", src)
	require.NoError(t, err)

	statue := g.FindByName("Statue")
	require.NotNil(t, statue)
	assert.Equal(t, filepath.Join("assets", "statue.glb"), statue.Model)
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestManifestBadColor(t *testing.T) {
	m, err := DecodeManifest(strings.NewReader("background: \"#zzzzzz\"\n"))
	require.NoError(t, err)
	_, err = m.Build(".", PrimitivesOnly{})
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, rl.NewColor(0x10, 0x20, 0x30, 0xff), c)

	c, err = ParseColor("SkyBlue")
	require.NoError(t, err)
	assert.Equal(t, rl.SkyBlue, c)

	_, err = ParseColor("ultraviolet")
	assert.Error(t, err)
}

func TestManagerLoadCachesGraph(t *testing.T) {
	dir := t.TempDir()
	writeScene(t, dir, "outside.yaml", outsideYAML)
	m := NewManager(dir, nil, zap.NewNop())

	g1, err := m.Load(context.Background(), "outside.yaml")
	require.NoError(t, err)
	g2, err := m.Load(context.Background(), "outside.yaml")
	require.NoError(t, err)
	assert.Same(t, g1, g2)

	m.Unload()
	g3, err := m.Load(context.Background(), "outside.yaml")
	require.NoError(t, err)
	assert.NotSame(t, g1, g3)
}

func TestManagerConcurrentLoadsShareResult(t *testing.T) {
	dir := t.TempDir()
	writeScene(t, dir, "inside.yaml", "name: inside\nnodes:\n  - name: Statue\n    mesh: {kind: model, path: statue.glb}\n")
	src := &fakeMeshes{}
	m := NewManager(dir, src, zap.NewNop())

	var wg sync.WaitGroup
	graphs := make([]*scene.Graph, 8)
	for i := range graphs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			g, err := m.Load(context.Background(), "inside.yaml")
			assert.NoError(t, err)
			graphs[i] = g
		}(i)
	}
	wg.Wait()

	for _, g := range graphs {
		assert.Same(t, graphs[0], g)
	}
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestManagerUnknownScene(t *testing.T) {
	m := NewManager(t.TempDir(), nil, zap.NewNop())

	_, err := m.Load(context.Background(), "missing.yaml")
	assert.ErrorIs(t, err, ErrUnknownScene)
}

func TestManagerCancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeScene(t, dir, "outside.yaml", outsideYAML)
	m := NewManager(dir, nil, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.Load(ctx, "outside.yaml")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFutureResolvesAsynchronously(t *testing.T) {
	dir := t.TempDir()
	writeScene(t, dir, "outside.yaml", outsideYAML)
	m := NewManager(dir, nil, zap.NewNop())

	f := m.LoadAsync(context.Background(), "outside.yaml")
	assert.Equal(t, "outside.yaml", f.ID())

	select {
	case <-f.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("load did not finish")
	}
	require.True(t, f.Ready())

	g, err := f.Result()
	require.NoError(t, err)
	assert.Equal(t, "outside", g.Name)
}

type blockingLoader struct {
	release chan struct{}
}

func (b blockingLoader) Load(ctx context.Context, id string) (*scene.Graph, error) {
	<-b.release
	return scene.NewGraph(id), nil
}

func TestFutureNotReadyUntilLoaded(t *testing.T) {
	release := make(chan struct{})
	f := Go(context.Background(), blockingLoader{release: release}, "inside")

	assert.False(t, f.Ready())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	g, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "inside", g.Name)
	assert.True(t, f.Ready())
}

func TestResolvedFuture(t *testing.T) {
	g := scene.NewGraph("outside")
	f := Resolved("outside", g, nil)

	assert.True(t, f.Ready())
	got, err := f.Result()
	require.NoError(t, err)
	assert.Same(t, g, got)
}

func TestShippedScenes(t *testing.T) {
	m := NewManager(filepath.Join("..", "..", "assets", "scenes"), nil, zap.NewNop())

	for _, id := range []string{"outside.yaml", "inside.yaml"} {
		g, err := m.Load(context.Background(), id)
		require.NoError(t, err, id)
		assert.NotNil(t, g.FindByName("Door"), id)
		assert.Positive(t, g.TriangleCount(), id)
	}
}
