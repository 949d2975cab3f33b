package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const GameSpecFile = "game.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec is every tunable of a game session.
type GameSpec struct {
	Window        WindowSpec        `yaml:"window"`
	Lives         LivesSpec         `yaml:"lives"`
	Ball          BallSpec          `yaml:"ball"`
	Paddle        PaddleSpec        `yaml:"paddle"`
	SpecialPaddle SpecialPaddleSpec `yaml:"special_paddle"`
	Bricks        BricksSpec        `yaml:"bricks"`
	Walls         WallsSpec         `yaml:"walls"`
	Puck          PuckSpec          `yaml:"puck"`
	Heart         HeartSpec         `yaml:"heart"`
	Camera        CameraSpec        `yaml:"camera"`
	Images        ImagesSpec        `yaml:"images"`
	Sounds        SoundsSpec        `yaml:"sounds"`
}

type WindowSpec struct {
	Title  string  `yaml:"title"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type LivesSpec struct {
	Initial      int         `yaml:"initial"`
	MaxShown     int         `yaml:"max_shown"`
	IconSize     float64     `yaml:"icon_size"`
	IconGap      float64     `yaml:"icon_gap"`
	BottomOffset float64     `yaml:"bottom_offset"`
	TextSize     float64     `yaml:"text_size"`
	Colors       LivesColors `yaml:"colors"`
}

// LivesColors tints the numeric life counter: Low at one life, Mid at two,
// High otherwise.
type LivesColors struct {
	Low  YAMLColor `yaml:"low"`
	Mid  YAMLColor `yaml:"mid"`
	High YAMLColor `yaml:"high"`
}

type BallSpec struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

type PaddleSpec struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	MinGap       float64 `yaml:"min_gap"`
	BottomOffset float64 `yaml:"bottom_offset"`
}

type SpecialPaddleSpec struct {
	Hits       int `yaml:"hits"`
	MaxPaddles int `yaml:"max_paddles"`
}

type BricksSpec struct {
	Cols             int     `yaml:"cols"`
	Rows             int     `yaml:"rows"`
	Height           float64 `yaml:"height"`
	Spacing          float64 `yaml:"spacing"`
	ProbabilityBound int     `yaml:"probability_bound"`
	DoubleMin        int     `yaml:"double_min"`
	DoubleMax        int     `yaml:"double_max"`
}

type WallsSpec struct {
	Width float64 `yaml:"width"`
}

type PuckSpec struct {
	Scale float64 `yaml:"scale"`
	Speed float64 `yaml:"speed"`
}

type HeartSpec struct {
	Size   float64 `yaml:"size"`
	Speed  float64 `yaml:"speed"`
	Buffer float64 `yaml:"buffer"`
}

type CameraSpec struct {
	Zoom      float64 `yaml:"zoom"`
	Threshold int     `yaml:"threshold"`
}

type ImagesSpec struct {
	Background string `yaml:"background"`
	Ball       string `yaml:"ball"`
	Paddle     string `yaml:"paddle"`
	Brick      string `yaml:"brick"`
	Heart      string `yaml:"heart"`
	Puck       string `yaml:"puck"`
}

type SoundsSpec struct {
	Collision string  `yaml:"collision"`
	Volume    float64 `yaml:"volume"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameSpecFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", GameSpecFile, err)
	}
	return &spec, nil
}

// Validate rejects sizes and counts the game cannot run with. The grid
// dimensions are checked by the bricks controller instead, since the command
// line may override them.
func (s *GameSpec) Validate() error {
	if s == nil {
		return errors.New("nil game spec")
	}
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("window.width", s.Window.Width)
	positive("window.height", s.Window.Height)
	positive("lives.initial", float64(s.Lives.Initial))
	positive("ball.size", s.Ball.Size)
	positive("ball.speed", s.Ball.Speed)
	positive("paddle.width", s.Paddle.Width)
	positive("paddle.height", s.Paddle.Height)
	positive("paddle.speed", s.Paddle.Speed)
	positive("special_paddle.hits", float64(s.SpecialPaddle.Hits))
	positive("special_paddle.max_paddles", float64(s.SpecialPaddle.MaxPaddles))
	positive("bricks.height", s.Bricks.Height)
	positive("bricks.probability_bound", float64(s.Bricks.ProbabilityBound))
	positive("walls.width", s.Walls.Width)
	positive("puck.scale", s.Puck.Scale)
	positive("heart.size", s.Heart.Size)
	positive("camera.zoom", s.Camera.Zoom)
	positive("camera.threshold", float64(s.Camera.Threshold))
	if s.Bricks.Spacing < 0 {
		errs = append(errs, fmt.Errorf("bricks.spacing must not be negative, got %v", s.Bricks.Spacing))
	}
	if s.Bricks.DoubleMin < 1 || s.Bricks.DoubleMax < s.Bricks.DoubleMin {
		errs = append(errs, fmt.Errorf("bricks.double_min/double_max must satisfy 1 <= min <= max, got %d/%d", s.Bricks.DoubleMin, s.Bricks.DoubleMax))
	}
	return errors.Join(errs...)
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}

// Or returns c, or fallback when the color was never set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
