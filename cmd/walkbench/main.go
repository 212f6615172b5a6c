// Headless walk over primitive scenes, plus collision query throughput
// for growing synthetic scenes.
package main

import (
	"capsulewalk/internal/assets"
	"capsulewalk/internal/config"
	"capsulewalk/internal/input"
	"capsulewalk/internal/logging"
	"capsulewalk/internal/physics"
	"capsulewalk/internal/scene"
	"capsulewalk/internal/world"
	"capsulewalk/internal/zone"
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config")
	frames := flag.Int("frames", 3600, "frames to simulate")
	step := flag.Float64("dt", 1.0/60, "frame time in seconds before clamping")
	stress := flag.Bool("stress", false, "also time queries against synthetic scenes")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, _, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := walk(cfg, log, *frames, float32(*step)); err != nil {
		log.Fatal("walk failed", zap.Error(err))
	}
	if *stress {
		for _, boxes := range []int{10, 100, 1000, 5000} {
			testQueries(boxes)
		}
	}
}

// walk runs the scripted player: forward, turning slowly, jumping every
// two seconds.
func walk(cfg *config.Config, log *zap.Logger, frames int, dt float32) error {
	ctx := context.Background()
	scenes := assets.NewManager(cfg.Zones.Dir, assets.PrimitivesOnly{}, log)

	outside := scenes.LoadAsync(ctx, cfg.Zones.Outside)
	var inside *assets.Future
	if cfg.Zones.Inside != "" {
		inside = scenes.LoadAsync(ctx, cfg.Zones.Inside)
	}

	graph, err := outside.Wait(ctx)
	if err != nil {
		return err
	}
	buildStart := time.Now()
	w := world.New(cfg, zone.NewZone("outside", graph, cfg.Zones.DoorNode), input.ModeDesktop, log)
	fmt.Printf("index build: %v (%d triangles)\n", time.Since(buildStart).Round(time.Microsecond), w.Zones.Active().Index.TriangleCount())

	driver := world.NewDriver(world.FixedClock(dt))
	driver.MaxDelta = cfg.Physics.MaxDelta
	mouse, _ := w.Look.(*input.MouseLook)

	var total, worst time.Duration
	grounded := 0
	start := time.Now()
	for i := 0; i < frames; i++ {
		if inside != nil && inside.Ready() {
			g, err := inside.Result()
			if err != nil {
				log.Error("secondary scene failed to load", zap.Error(err))
			} else {
				w.Zones.MarkLoaded(zone.NewZone("inside", g, cfg.Zones.DoorNode))
			}
			inside = nil
		}

		w.Keys[input.KeyForward] = true
		w.Keys[input.KeyJump] = i%120 == 0
		if mouse != nil && i%240 > 180 {
			mouse.Move(4, 0)
		}

		w.Step(driver.Next())

		total += w.Stats.QueryTime
		if w.Stats.QueryTime > worst {
			worst = w.Stats.QueryTime
		}
		if w.Player.OnFloor {
			grounded++
		}
	}
	elapsed := time.Since(start)

	eye := w.Player.Eye()
	fmt.Printf("frames: %d in %v (%.1f µs/frame)\n", frames, elapsed.Round(time.Millisecond), float64(elapsed.Microseconds())/float64(frames))
	fmt.Printf("query: avg %v, worst %v\n", (total / time.Duration(frames)).Round(time.Nanosecond), worst.Round(time.Nanosecond))
	fmt.Printf("grounded: %.0f%%  transitions: %d  respawns: %d\n", 100*float64(grounded)/float64(frames), w.Stats.Transitions, w.Stats.Respawns)
	fmt.Printf("final: zone %s, eye (%.2f, %.2f, %.2f)\n", w.Zones.Active().Name, eye.X, eye.Y, eye.Z)
	return nil
}

// testQueries scatters boxes over a floor and times capsule queries.
func testQueries(boxes int) {
	rng := rand.New(rand.NewSource(42)) // Consistent results
	spawnSize := float32(50.0) + float32(boxes)/10.0

	g := scene.NewGraph("stress")
	floor := scene.NewNode("Floor")
	floor.Mesh = scene.PlaneMesh(spawnSize, spawnSize)
	g.Root.AddChild(floor)
	for i := 0; i < boxes; i++ {
		n := scene.NewNode(fmt.Sprintf("Box_%d", i))
		n.Transform.Position = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32() * 2,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		n.Transform.Rotation.Y = rng.Float32() * 360
		n.Mesh = scene.BoxMesh(rl.Vector3{X: 1 + rng.Float32(), Y: 1 + rng.Float32(), Z: 1 + rng.Float32()})
		g.Root.AddChild(n)
	}

	buildStart := time.Now()
	idx := physics.Build(g)
	buildTime := time.Since(buildStart)

	const queries = 10000
	capsules := make([]physics.Capsule, queries)
	for i := range capsules {
		x := rng.Float32()*spawnSize - spawnSize/2
		z := rng.Float32()*spawnSize - spawnSize/2
		capsules[i] = physics.NewCapsule(rl.Vector3{X: x, Y: 0.3, Z: z}, rl.Vector3{X: x, Y: 1.45, Z: z}, 0.35)
	}

	hits := 0
	queryStart := time.Now()
	for _, c := range capsules {
		if _, ok := idx.Query(c); ok {
			hits++
		}
	}
	perQuery := time.Since(queryStart) / queries

	fmt.Printf("%5d boxes (%6d tris): build %8v | query %6v | %4d/%d hits\n",
		boxes, idx.TriangleCount(), buildTime.Round(time.Microsecond),
		perQuery.Round(time.Nanosecond), hits, queries)
}
