package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/marinescroller/common"
	"github.com/milk9111/marinescroller/ecs"
	"github.com/milk9111/marinescroller/ecs/entity"
	"github.com/milk9111/marinescroller/ecs/system"
	"github.com/milk9111/marinescroller/levels"
	"github.com/milk9111/marinescroller/prefabs"
	"github.com/milk9111/marinescroller/telemetry"
)

var background = color.RGBA{R: 0x14, G: 0x1c, B: 0x2b, A: 0xff}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	pipeline  *system.Pipeline
	settings  prefabs.Settings
	level     *levels.Level

	watcher  *prefabs.Watcher
	recorder *telemetry.Recorder
}

func NewGame(levelName string, debug bool, tracePath string) (*Game, error) {
	settings, err := prefabs.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	settings.Debug = settings.Debug || debug

	lvl, err := levels.LoadLevelFromFS(levelName)
	if err != nil {
		return nil, fmt.Errorf("load level %q: %w", levelName, err)
	}

	if settings.TickRate != common.TickRate {
		log.Printf("Game: tick rate %d", settings.TickRate)
	}
	ebiten.SetTPS(settings.TickRate)

	recorder, err := telemetry.Create(tracePath)
	if err != nil {
		return nil, err
	}

	g := &Game{
		settings: settings,
		level:    lvl,
		recorder: recorder,
	}
	if err := g.reset(); err != nil {
		_ = recorder.Close()
		return nil, err
	}

	if w, err := prefabs.NewWatcher(prefabs.Dir); err != nil {
		log.Printf("Game: prefab hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}
	return g, nil
}

// reset rebuilds the world and every system from the loaded level.
func (g *Game) reset() error {
	world := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(world, g.level); err != nil {
		return err
	}

	g.pipeline = system.NewPipeline(g.settings)
	g.scheduler = ecs.NewScheduler(g.pipeline.Systems()...)
	if g.recorder != nil {
		g.scheduler.Add(g.recorder)
	}
	g.world = world
	return nil
}

func (g *Game) Update() error {
	g.pollReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.settings.Debug = !g.settings.Debug
		g.pipeline.Apply(g.settings)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			log.Printf("Game: reset: %v", err)
		}
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) pollReloads() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors():
		if ok {
			log.Printf("Game: prefab watcher: %v", err)
		}
	default:
	}

	changes, open := g.watcher.Pending()
	for _, c := range changes {
		g.reload(c)
	}
	if !open {
		log.Printf("Game: prefab watcher stopped")
		g.watcher = nil
	}
}

func (g *Game) reload(c prefabs.Change) {
	if c.Kind == prefabs.ChangeEntity {
		log.Printf("Game: %s changed, used by the next spawn", c.Name)
		return
	}
	settings, src, err := prefabs.ReloadSettings()
	if err != nil {
		log.Printf("Game: reload settings: %v", err)
		return
	}
	settings.Debug = settings.Debug || g.settings.Debug
	g.settings = settings
	g.pipeline.Apply(settings)
	log.Printf("Game: reloaded %s from %s", c.Name, src)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.scheduler.Draw(g.world, screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.ScreenWidth, common.ScreenHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if err := g.recorder.Close(); err != nil {
		log.Printf("Game: close trace: %v", err)
	}
}
