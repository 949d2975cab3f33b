package level

import (
	"errors"
	"fmt"

	"github.com/milk9111/bricker/common"
	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
	"github.com/milk9111/bricker/ecs/entity"
	"github.com/milk9111/bricker/ecs/strategy"
	"github.com/milk9111/bricker/prefabs"
)

var ErrInvalidGrid = errors.New("level: brick rows and columns must be positive")

// Grid is the brick layout in columns and rows.
type Grid struct {
	Cols int
	Rows int
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Cols, g.Rows)
}

// Chooser hands out one strategy per brick.
type Chooser interface {
	Choose() component.CollisionStrategy
}

// BrickCount is the number of bricks still standing in a level.
type BrickCount struct {
	*common.Counter
}

func NewBrickCount() BrickCount {
	return BrickCount{Counter: common.NewCounter(0)}
}

// BricksController lays out the brick grid and owns the bricks-remaining
// counter.
type BricksController struct {
	world   *ecs.World
	spec    *prefabs.GameSpec
	art     entity.Art
	chooser Chooser
	count   BrickCount
	grid    Grid
	kinds   map[strategy.Kind]int
}

func NewBricksController(w *ecs.World, spec *prefabs.GameSpec, art entity.Art, chooser Chooser, count BrickCount, grid Grid) (*BricksController, error) {
	if grid.Rows <= 0 || grid.Cols <= 0 {
		return nil, fmt.Errorf("bricks: grid %s: %w", grid, ErrInvalidGrid)
	}
	if spec == nil {
		return nil, fmt.Errorf("bricks: nil game spec")
	}
	if chooser == nil {
		return nil, fmt.Errorf("bricks: nil strategy chooser")
	}
	return &BricksController{
		world:   w,
		spec:    spec,
		art:     art,
		chooser: chooser,
		count:   count,
		grid:    grid,
		kinds:   make(map[strategy.Kind]int),
	}, nil
}

// Build places the grid row by row starting at (spacing, spacing) and counts
// every brick it creates.
func (c *BricksController) Build() ([]ecs.Entity, error) {
	spacing := c.spec.Bricks.Spacing
	width := c.BrickWidth()
	height := c.spec.Bricks.Height

	bricks := make([]ecs.Entity, 0, c.grid.Rows*c.grid.Cols)
	y := spacing
	for row := 0; row < c.grid.Rows; row++ {
		x := spacing
		for col := 0; col < c.grid.Cols; col++ {
			s := c.chooser.Choose()
			brick, err := entity.NewBrick(c.world, c.art, x, y, width, height, s)
			if err != nil {
				return nil, fmt.Errorf("bricks: row %d col %d: %w", row, col, err)
			}
			c.count.Increment()
			c.kinds[strategy.KindOf(s)]++
			bricks = append(bricks, brick)
			x += width + spacing
		}
		y += height + spacing
	}
	return bricks, nil
}

func (c *BricksController) BrickWidth() float64 {
	spacing := c.spec.Bricks.Spacing
	return (c.spec.Window.Width - spacing*float64(c.grid.Cols+1)) / float64(c.grid.Cols)
}

// Counter is the live bricks-remaining counter.
func (c *BricksController) Counter() *common.Counter {
	return c.count.Counter
}

// Kinds returns how many bricks were bound to each strategy kind.
func (c *BricksController) Kinds() map[strategy.Kind]int {
	out := make(map[strategy.Kind]int, len(c.kinds))
	for k, n := range c.kinds {
		out[k] = n
	}
	return out
}
