package game

import (
	"capsulewalk/internal/assets"
	"capsulewalk/internal/config"
	"capsulewalk/internal/input"
	"capsulewalk/internal/logging"
	"capsulewalk/internal/scene"
	"capsulewalk/internal/world"
	"capsulewalk/internal/zone"
	"context"
	"fmt"
	"runtime"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

type Game struct {
	Config     *config.Config
	ConfigPath string // watched for changes when set
	LogLevel   zap.AtomicLevel

	log      *zap.Logger
	queue    *mainQueue
	meshes   *raylibMeshes
	scenes   *assets.Manager
	renderer *Renderer
	world    *world.World
	driver   *world.Driver
	input    *inputAdapter

	inside  *assets.Future // pending secondary zone
	reloads <-chan *config.Config

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg *config.Config, log *zap.Logger) *Game {
	queue := newMainQueue()
	meshes := newRaylibMeshes(queue)
	return &Game{
		Config:   cfg,
		LogLevel: zap.NewAtomicLevel(),
		log:      log,
		queue:    queue,
		meshes:   meshes,
		scenes:   assets.NewManager(cfg.Zones.Dir, meshes, log),
		renderer: NewRenderer(meshes),
		driver:   world.NewDriver(raylibClock{}),
	}
}

type raylibClock struct{}

func (raylibClock) FrameTime() float32 {
	return rl.GetFrameTime()
}

// Run opens the window and blocks until it is closed or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	cfg := g.Config
	mode, err := input.DetectMode(cfg.Input.Mode, runtime.GOOS)
	if err != nil {
		return err
	}

	flags := uint32(rl.FlagWindowResizable)
	if cfg.Window.HighDPI {
		flags |= rl.FlagWindowHighdpi
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))
	// Escape releases the pointer instead of quitting
	rl.SetExitKey(0)

	defer g.meshes.Unload()
	defer g.queue.Close()

	outside := g.scenes.LoadAsync(ctx, cfg.Zones.Outside)
	if cfg.Zones.Inside != "" {
		g.inside = g.scenes.LoadAsync(ctx, cfg.Zones.Inside)
	}

	graph, err := g.awaitPrimary(ctx, outside)
	if err != nil {
		return err
	}
	if graph == nil {
		return nil // window closed while loading
	}

	start := time.Now()
	z := zone.NewZone("outside", graph, cfg.Zones.DoorNode)
	g.log.Info("index built",
		zap.String("zone", z.Name),
		zap.Int("triangles", z.Index.TriangleCount()),
		zap.Duration("took", time.Since(start)))

	g.world = world.New(cfg, z, mode, g.log)
	g.world.Camera.SetAspect(rl.GetScreenWidth(), rl.GetScreenHeight())
	g.driver.MaxDelta = cfg.Physics.MaxDelta
	g.input = newInputAdapter(g.world.Look)
	g.log.Info("input ready", zap.Stringer("mode", mode))

	if g.ConfigPath != "" {
		g.reloads, err = config.Watch(ctx, g.ConfigPath, g.log)
		if err != nil {
			g.log.Warn("config hot reload disabled", zap.Error(err))
		}
	}

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		g.Update()
		g.Draw()
	}
	return nil
}

// awaitPrimary keeps the window responsive until f resolves. It returns a nil
// graph if the window is closed first.
func (g *Game) awaitPrimary(ctx context.Context, f *assets.Future) (*scene.Graph, error) {
	for frame := 0; !f.Ready(); frame++ {
		if rl.WindowShouldClose() || ctx.Err() != nil {
			return nil, nil
		}
		g.queue.Drain()
		drawLoading(f.ID(), frame)
	}
	graph, err := f.Result()
	if err != nil {
		return nil, fmt.Errorf("load primary scene: %w", err)
	}
	return graph, nil
}

func (g *Game) Update() {
	updateStart := time.Now()

	g.queue.Drain()
	g.applyReload()
	g.pollInside()

	if rl.IsWindowResized() {
		g.world.Camera.SetAspect(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	g.input.Poll(g.world)
	g.world.Step(g.driver.Next())

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// pollInside attaches the secondary zone once its load has finished. A
// failed load leaves the door shut.
func (g *Game) pollInside() {
	if g.inside == nil || !g.inside.Ready() {
		return
	}
	f := g.inside
	g.inside = nil

	graph, err := f.Result()
	if err != nil {
		g.log.Error("secondary scene failed to load", zap.String("id", f.ID()), zap.Error(err))
		return
	}
	g.world.Zones.MarkLoaded(zone.NewZone("inside", graph, g.Config.Zones.DoorNode))
}

// applyReload takes tuning values from a changed config file. Window, scene
// and input mode changes need a restart.
func (g *Game) applyReload() {
	select {
	case cfg, ok := <-g.reloads:
		if !ok {
			g.reloads = nil
			return
		}
		g.world.ApplyConfig(cfg)
		g.driver.MaxDelta = cfg.Physics.MaxDelta
		if err := logging.SetLevel(g.LogLevel, cfg.Log.Level); err != nil {
			g.log.Warn("log level unchanged", zap.Error(err))
		}
		g.Config = cfg
	default:
	}
}

func (g *Game) Draw() {
	active := g.world.Zones.Active()

	rl.BeginDrawing()
	rl.ClearBackground(active.Graph.Background)

	drawStart := time.Now()
	rl.BeginMode3D(g.world.Camera.Raylib())
	rl.SetMatrixProjection(g.world.Camera.Projection())
	g.renderer.Draw(active.Graph, g.world.Camera)
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	stats := hudStats{
		updateMs: g.updateMs,
		drawMs:   g.drawMs,
		drawn:    g.renderer.Drawn,
		culled:   g.renderer.Culled,
	}
	if g.inside != nil {
		stats.loading = g.inside.ID()
	}
	drawHUD(g.world, g.input, stats)
	rl.EndDrawing()
}
