package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tileswap/config"
	"github.com/plus3/tileswap/ecs"
	"github.com/plus3/tileswap/ecs/debugui"
	debugui_ebiten "github.com/plus3/tileswap/ecs/debugui/ebiten"
	"github.com/plus3/tileswap/game"
	"go.uber.org/zap"
)

const frameHistory = 120

// Game runs a game.World inside an ebiten window with an ImGui overlay.
type Game struct {
	World    *game.World
	Renderer *ecs.Scheduler

	imgui  *ecs.Singleton[debugui_ebiten.ImguiBackend]
	screen *ecs.Singleton[Screen]
	timer  *debugui.FrameTimer
	perf   *debugui.PerformanceStats
	log    *zap.Logger
}

// NewGame opens the window and builds the world from cfg.
func NewGame(cfg *config.Config, log *zap.Logger) *Game {
	backend := debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	registry := ecs.NewComponentRegistry()
	debugui.RegisterComponents(registry)

	opts := game.DefaultOptions()
	opts.Iterations = cfg.Puzzle.Iterations
	opts.MaxIterations = cfg.Puzzle.MaxIterations
	opts.Seed = cfg.Puzzle.Seed

	world := game.NewWorld(registry, opts, log,
		&debugui.ImguiSystem{},
		&InputSystem{Log: log},
	)

	storage := world.Storage
	ecs.NewSingleton(storage, ViewFromConfig(cfg))
	ecs.NewSingleton(storage, debugui.ImguiInputState{})
	ecs.NewSingleton(storage, Pointer{})
	g := &Game{
		World:    world,
		Renderer: ecs.NewScheduler(storage),
		imgui:    ecs.NewSingleton(storage, backend),
		screen:   ecs.NewSingleton(storage, Screen{Width: cfg.Window.Width, Height: cfg.Window.Height}),
		timer:    debugui.NewFrameTimer(),
		perf:     debugui.NewPerformanceStats(frameHistory),
		log:      log,
	}

	g.Renderer.Register(&RenderSystem{})
	SpawnControlPanel(world, g.perf, world.Scheduler, g.Renderer)
	return g
}

func (g *Game) Update() error {
	dt := g.timer.GetDeltaTime()
	g.perf.Record(dt)

	backend := g.imgui.Get()
	backend.BeginFrame()
	g.World.Tick(float64(dt))
	backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Get().Image = screen
	g.Renderer.Once(0)
	g.imgui.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imgui.Get().Layout(outsideWidth, outsideHeight)

	s := g.screen.Get()
	s.Width, s.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, log *zap.Logger) error {
	g := NewGame(cfg, log)
	g.log.Info("window open",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
