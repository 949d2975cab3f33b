package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/bricker/ecs/level"
	"github.com/milk9111/bricker/ecs/system"
)

func TestParseGrid(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    *level.Grid
		wantErr bool
	}{
		{name: "no_args", args: nil},
		{name: "one_arg_ignored", args: []string{"4"}},
		{name: "cols_rows", args: []string{"4", "3"}, want: &level.Grid{Cols: 4, Rows: 3}},
		{name: "extra_args_ignored", args: []string{"4", "3", "9"}, want: &level.Grid{Cols: 4, Rows: 3}},
		{name: "zero_passes_through", args: []string{"0", "3"}, want: &level.Grid{Cols: 0, Rows: 3}},
		{name: "bad_cols", args: []string{"four", "3"}, wantErr: true},
		{name: "bad_rows", args: []string{"4", "3.5"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseGrid(tc.args)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestPromptMessage(t *testing.T) {
	require.Equal(t, "You Win! Play Again?", promptMessage(system.OutcomeWin))
	require.Equal(t, "You Lose! Play Again?", promptMessage(system.OutcomeLose))
}

func TestPromptAnswersOnce(t *testing.T) {
	var yes, no int
	p := &Prompt{onYes: func() { yes++ }, onNo: func() { no++ }}

	p.answer(true)
	p.answer(false)
	p.answer(true)

	require.Equal(t, 1, yes)
	require.Zero(t, no)
}
