package main

import (
	"fmt"
	"strconv"

	"github.com/milk9111/bricker/ecs/level"
)

// parseGrid reads the optional "cols rows" arguments. It returns nil when
// fewer than two are given; malformed numbers are an error. Non-positive
// sizes are rejected later by the bricks controller.
func parseGrid(args []string) (*level.Grid, error) {
	if len(args) < 2 {
		return nil, nil
	}
	cols, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("cli: brick columns %q: %w", args[0], err)
	}
	rows, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("cli: brick rows %q: %w", args[1], err)
	}
	return &level.Grid{Cols: cols, Rows: rows}, nil
}
