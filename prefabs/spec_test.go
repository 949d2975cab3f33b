package prefabs

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadGameSpecDefaults(t *testing.T) {
	spec, err := LoadGameSpec()
	require.NoError(t, err)

	require.Equal(t, 700.0, spec.Window.Width)
	require.Equal(t, 500.0, spec.Window.Height)
	require.Equal(t, 3, spec.Lives.Initial)
	require.Equal(t, 4, spec.Lives.MaxShown)
	require.Equal(t, 20.0, spec.Ball.Size)
	require.Equal(t, 180.0, spec.Ball.Speed)
	require.Equal(t, 8, spec.Bricks.Cols)
	require.Equal(t, 7, spec.Bricks.Rows)
	require.Equal(t, 10, spec.Bricks.ProbabilityBound)
	require.Equal(t, 2, spec.Bricks.DoubleMin)
	require.Equal(t, 3, spec.Bricks.DoubleMax)
	require.Equal(t, 4, spec.SpecialPaddle.Hits)
	require.Equal(t, 2, spec.SpecialPaddle.MaxPaddles)
	require.Equal(t, 1.2, spec.Camera.Zoom)
	require.Equal(t, 4, spec.Camera.Threshold)
	require.Equal(t, color.NRGBA{R: 255, A: 255}, spec.Lives.Colors.Low.Color)
}

func TestGameSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameSpec)
		wantErr string
	}{
		{name: "defaults"},
		{name: "zero_window", mutate: func(s *GameSpec) { s.Window.Width = 0 }, wantErr: "window.width"},
		{name: "no_lives", mutate: func(s *GameSpec) { s.Lives.Initial = 0 }, wantErr: "lives.initial"},
		{name: "negative_spacing", mutate: func(s *GameSpec) { s.Bricks.Spacing = -1 }, wantErr: "bricks.spacing"},
		{name: "inverted_double", mutate: func(s *GameSpec) { s.Bricks.DoubleMax = 1 }, wantErr: "double_min"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := LoadGameSpec()
			require.NoError(t, err)
			if tc.mutate != nil {
				tc.mutate(spec)
			}
			err = spec.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{in: `"#00ff00"`, want: color.NRGBA{G: 255, A: 255}},
		{in: `"10203040"`, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{in: `"#fff"`, wantErr: true},
		{in: `"#gg0000"`, wantErr: true},
		{in: `[1, 2]`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, c.Color)
		})
	}

	var unset YAMLColor
	require.Equal(t, color.White, unset.Or(color.White))
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"center_basic", "center_basic.tengo", "scripts/center_basic.tengo", "prefabs/scripts/center_basic"} {
		data, err := LoadScript(name)
		require.NoError(t, err, name)
		require.Contains(t, string(data), "pick")
	}

	_, err := LoadScript("missing")
	require.Error(t, err)
}
