// Command brickplan builds a level without opening a window and prints which
// strategy each brick received, for tuning seeds and draw scripts.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
	"github.com/milk9111/bricker/ecs/entity"
	"github.com/milk9111/bricker/ecs/level"
	"github.com/milk9111/bricker/ecs/strategy"
	"github.com/milk9111/bricker/logging"
	"github.com/milk9111/bricker/prefabs"
)

var kindGlyphs = map[strategy.Kind]byte{
	strategy.KindPucks:  'P',
	strategy.KindPaddle: 'A',
	strategy.KindLife:   'L',
	strategy.KindCamera: 'C',
	strategy.KindDouble: 'D',
	strategy.KindBasic:  '.',
}

func main() {
	seed := flag.String("seed", "", "seed phrase (random when empty)")
	script := flag.String("script", "", "tengo draw script in prefabs/scripts")
	cols := flag.Int("cols", 0, "brick columns (configured value when 0)")
	rows := flag.Int("rows", 0, "brick rows (configured value when 0)")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	logger, err := logging.Setup(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		logger.Fatal("load game spec", zap.Error(err))
	}
	grid := level.Grid{Cols: spec.Bricks.Cols, Rows: spec.Bricks.Rows}
	if *cols > 0 {
		grid.Cols = *cols
	}
	if *rows > 0 {
		grid.Rows = *rows
	}

	var src strategy.Source = strategy.NewRandSource(strategy.SeedFromString(*seed))
	if *script != "" {
		code, err := prefabs.LoadScript(*script)
		if err != nil {
			logger.Fatal("load script", zap.String("script", *script), zap.Error(err))
		}
		scripted, err := strategy.NewScriptSource(*script, code, src, *debug)
		if err != nil {
			logger.Fatal("compile script", zap.Error(err))
		}
		src = scripted
	}

	if err := plan(os.Stdout, spec, src, grid); err != nil {
		logger.Fatal("plan level", zap.Error(err))
	}
}

// plan lays out one grid and writes it as a glyph map followed by the
// per-kind totals.
func plan(out io.Writer, spec *prefabs.GameSpec, src strategy.Source, grid level.Grid) error {
	w := ecs.NewWorld()
	ctrl, err := level.InitializeBricks(w, spec, entity.Art{}, level.NewSession(spec), src, grid)
	if err != nil {
		return err
	}
	bricks, err := ctrl.Build()
	if err != nil {
		return err
	}

	var b strings.Builder
	for i, e := range bricks {
		glyph := byte('?')
		if brick, ok := ecs.Get(w, e, component.BrickComponent.Kind()); ok {
			glyph = kindGlyphs[strategy.KindOf(brick.Strategy)]
		}
		b.WriteByte(glyph)
		if (i+1)%grid.Cols == 0 {
			b.WriteByte('\n')
		}
	}
	if _, err := io.WriteString(out, b.String()); err != nil {
		return err
	}

	kinds := ctrl.Kinds()
	keys := make([]strategy.Kind, 0, len(kinds))
	for k := range kinds {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		if _, err := fmt.Fprintf(out, "%c %-7s %d\n", kindGlyphs[k], k, kinds[k]); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "total   %d\n", ctrl.Counter().Value())
	return err
}
