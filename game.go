package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/entity"
	"github.com/milk9111/bricker/ecs/level"
	"github.com/milk9111/bricker/ecs/strategy"
	"github.com/milk9111/bricker/ecs/system"
	"github.com/milk9111/bricker/prefabs"
)

var (
	colorLow  = color.NRGBA{R: 0xff, A: 0xff}
	colorMid  = color.NRGBA{R: 0xff, G: 0xff, A: 0xff}
	colorHigh = color.NRGBA{G: 0xff, A: 0xff}
)

type Options struct {
	Debug  bool
	Seed   string
	Script string
	Watch  bool
	Mute   bool
	// Grid overrides the configured brick grid when set.
	Grid *level.Grid
}

type Game struct {
	opts Options

	spec    *prefabs.GameSpec
	art     entity.Art
	session *level.Session
	src     strategy.Source

	level     *level.Level
	physics   *system.PhysicsSystem
	state     *system.GameStateSystem
	scheduler *ecs.Scheduler
	render    *system.RenderSystem

	prompt *Prompt
	replay bool
	quit   bool

	watcher *prefabs.Watcher
	reload  bool
}

func NewGame(spec *prefabs.GameSpec, opts Options) (*Game, error) {
	if spec == nil {
		return nil, fmt.Errorf("game: nil game spec")
	}
	art, err := loadArt(spec, opts.Mute)
	if err != nil {
		return nil, err
	}
	src, err := newSource(opts)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:    opts,
		spec:    spec,
		art:     art,
		session: level.NewSession(spec),
		src:     src,
		physics: system.NewPhysicsSystem(),
		render:  system.NewRenderSystem(),
	}

	zap.L().Info("starting",
		zap.Stringer("grid", g.grid()),
		zap.String("seed", opts.Seed),
		zap.String("script", opts.Script),
		zap.Bool("watch", opts.Watch),
	)

	if opts.Watch {
		g.watcher = startWatcher()
	}
	if err := g.start(); err != nil {
		g.Close()
		return nil, err
	}
	return g, nil
}

func newSource(opts Options) (strategy.Source, error) {
	var src strategy.Source = strategy.NewRandSource(strategy.SeedFromString(opts.Seed))
	if opts.Script == "" {
		return src, nil
	}
	code, err := prefabs.LoadScript(opts.Script)
	if err != nil {
		return nil, fmt.Errorf("game: load script %s: %w", opts.Script, err)
	}
	scripted, err := strategy.NewScriptSource(opts.Script, code, src, opts.Debug)
	if err != nil {
		return nil, err
	}
	return scripted, nil
}

func startWatcher() *prefabs.Watcher {
	var dirs []string
	for _, dir := range []string{"prefabs", "prefabs/scripts"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		zap.L().Warn("watch: no prefabs directory next to the binary; hot reload disabled")
		return nil
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		zap.L().Warn("watch: hot reload disabled", zap.Error(err))
		return nil
	}
	zap.L().Info("watching prefabs", zap.Strings("dirs", dirs))
	return w
}

func (g *Game) grid() level.Grid {
	if g.opts.Grid != nil {
		return *g.opts.Grid
	}
	return level.Grid{Cols: g.spec.Bricks.Cols, Rows: g.spec.Bricks.Rows}
}

// start builds a fresh level and the systems that run it. The physics
// system is reused but emptied, since its bodies belong to the old world.
func (g *Game) start() error {
	lvl, err := level.Build(g.spec, g.art, g.session, g.src, g.grid())
	if err != nil {
		return err
	}
	g.physics.Reset()

	g.state = system.NewGameStateSystem(system.GameStateConfig{
		Ball:         lvl.Ball,
		Bricks:       lvl.Bricks.Counter(),
		Lives:        g.session.Lives,
		WindowWidth:  g.spec.Window.Width,
		WindowHeight: g.spec.Window.Height,
		BallSpeed:    g.spec.Ball.Speed,
		Direction:    strategy.BasicRandom{Rand: g.src},
	})

	colors := g.spec.Lives.Colors
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewPaddleSystem(),
		g.physics,
		system.NewCollisionSystem(),
		g.state,
		system.NewCameraSystem(g.session.CameraOffset, g.spec.Camera.Threshold),
		system.NewSweepSystem(system.SweepConfig{
			WindowHeight: g.spec.Window.Height,
			HeartBuffer:  g.spec.Heart.Buffer,
			Paddles:      g.session.Paddles,
		}),
		system.NewLifeHUDSystem(g.session.Lives, g.spec.Lives.MaxShown, system.LifeColors{
			Low:  colors.Low.Or(colorLow),
			Mid:  colors.Mid.Or(colorMid),
			High: colors.High.Or(colorHigh),
		}),
		system.NewAudioSystem(g.opts.Mute),
	)

	g.level = lvl
	g.prompt = nil
	g.replay = false
	return nil
}

// restart resets the session counters in place and builds the next level,
// picking up any prefab edits seen since the last round.
func (g *Game) restart() error {
	if g.reload {
		g.applyReload()
	}
	g.session.Reset()
	zap.L().Info("restarting", zap.String("previous_run", g.level.RunID))
	return g.start()
}

// applyReload swaps in the edited spec and script. A broken edit is logged
// and the previous configuration stays.
func (g *Game) applyReload() {
	g.reload = false

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		zap.L().Warn("reload: keeping previous game spec", zap.Error(err))
		return
	}
	art, err := loadArt(spec, g.opts.Mute)
	if err != nil {
		zap.L().Warn("reload: keeping previous game spec", zap.Error(err))
		return
	}
	src, err := newSource(g.opts)
	if err != nil {
		zap.L().Warn("reload: keeping previous strategy source", zap.Error(err))
		src = g.src
	}

	g.spec = spec
	g.art = art
	g.src = src
	g.session = level.NewSession(spec)
	ebiten.SetWindowSize(int(spec.Window.Width), int(spec.Window.Height))
	ebiten.SetWindowTitle(spec.Window.Title)
	zap.L().Info("reloaded prefabs")
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for _, c := range g.watcher.Poll() {
		if c.Kind == prefabs.ChangeScript && g.opts.Script == "" {
			continue
		}
		zap.L().Info("prefab changed; applying on next restart", zap.String("file", c.Path), zap.Stringer("kind", c.Kind))
		g.reload = true
	}
	if err := g.watcher.Err(); err != nil {
		zap.L().Warn("watch", zap.Error(err))
	}
}

func (g *Game) Update() error {
	g.pollWatcher()

	if g.prompt != nil {
		g.prompt.Update()
		switch {
		case g.quit:
			zap.L().Info("quitting")
			return ebiten.Termination
		case g.replay:
			return g.restart()
		}
		return nil
	}

	g.scheduler.Update(g.level.World)

	if outcome := g.state.Outcome(); outcome != system.OutcomeNone {
		g.prompt = NewPrompt(promptMessage(outcome), int(g.spec.Window.Width), int(g.spec.Window.Height),
			func() { g.replay = true },
			func() { g.quit = true },
		)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.level == nil {
		return
	}
	g.render.Draw(g.level.World, screen)

	if g.opts.Debug {
		system.DrawPhysicsDebug(g.physics.Space(), g.level.World, screen)
		system.DrawCountersDebug(screen, g.level.World, g.level.Bricks.Counter(), g.session.Lives, g.session.Paddles)
	}
	if g.prompt != nil {
		g.prompt.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.spec.Window.Width), int(g.spec.Window.Height)
}

func (g *Game) Close() {
	if g == nil || g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		zap.L().Warn("close watcher", zap.Error(err))
	}
}
