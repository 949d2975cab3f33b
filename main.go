package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/bricker/logging"
	"github.com/milk9111/bricker/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and collider outlines")
	seed := flag.String("seed", "", "phrase to seed brick strategies with (random when empty)")
	script := flag.String("script", "", "tengo script in prefabs/scripts that draws brick strategies")
	watch := flag.Bool("watch", false, "reload prefabs/*.yaml and scripts on the next restart after they change")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	logger, err := logging.Setup(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	grid, err := parseGrid(flag.Args())
	if err != nil {
		logger.Fatal("bad command line", zap.Error(err))
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		logger.Fatal("load game spec", zap.Error(err))
	}

	game, err := NewGame(spec, Options{
		Debug:  *debug,
		Seed:   *seed,
		Script: *script,
		Watch:  *watch,
		Mute:   *mute,
		Grid:   grid,
	})
	if err != nil {
		logger.Fatal("start game", zap.Error(err))
	}
	defer game.Close()

	ebiten.SetWindowSize(int(spec.Window.Width), int(spec.Window.Height))
	ebiten.SetWindowTitle(spec.Window.Title)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game stopped", zap.Error(err))
	}
}
