package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/bricker/prefabs"
)

func TestScriptSourceBundledScripts(t *testing.T) {
	tests := []struct {
		name   string
		script string
		bound  int
		want   int
	}{
		{name: "center_top_level", script: "center_basic", bound: 10, want: 5},
		{name: "center_sub_draw_falls_back", script: "center_basic", bound: 5, want: 3},
		{name: "pucks_top_level", script: "pucks_everywhere", bound: 10, want: 0},
		{name: "alternate_first_draw", script: "alternate", bound: 10, want: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src, err := prefabs.LoadScript(tc.script)
			require.NoError(t, err)

			s, err := NewScriptSource(tc.script, src, &scriptedSource{ints: []int{3}}, false)
			require.NoError(t, err)
			require.Equal(t, tc.want, s.IntN(tc.bound))
		})
	}
}

func TestScriptSourceAlternates(t *testing.T) {
	src, err := prefabs.LoadScript("alternate")
	require.NoError(t, err)

	s, err := NewScriptSource("alternate", src, &scriptedSource{}, false)
	require.NoError(t, err)

	var got []int
	for i := 0; i < 4; i++ {
		got = append(got, s.IntN(10))
	}
	require.Equal(t, []int{2, 1, 2, 1}, got)
}

func TestScriptSourceRejectsBadScripts(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "syntax", src: `pick := (`},
		{name: "no_pick", src: `x := 1`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewScriptSource(tc.name, []byte(tc.src), &scriptedSource{}, false)
			require.Error(t, err)
		})
	}

	_, err := NewScriptSource("nil_fallback", []byte(`pick := -1`), nil, false)
	require.Error(t, err)
}

func TestScriptSourceFallsBackOnBadPick(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "out_of_range", src: `pick := __bound`},
		{name: "negative", src: `pick := -1`},
		{name: "wrong_type", src: `pick := __bound == 10 ? "two" : -1`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fallback := &scriptedSource{ints: []int{7, 8}, floats: []float64{0.5}}
			s, err := NewScriptSource(tc.name, []byte(tc.src), fallback, false)
			require.NoError(t, err)

			require.Equal(t, 7, s.IntN(10))
			require.Equal(t, 8, s.IntN(10))
			require.Equal(t, 0.5, s.Float64())
		})
	}
}
