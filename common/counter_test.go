package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		ops     func(c *Counter)
		want    int
	}{
		{"increment", 0, func(c *Counter) { c.Increment(); c.Increment() }, 2},
		{"decrement_below_zero", 1, func(c *Counter) { c.Decrement(); c.Decrement() }, -1},
		{"increase_by", 3, func(c *Counter) { c.IncreaseBy(4) }, 7},
		{"reset_restores_initial", 3, func(c *Counter) { c.Decrement(); c.IncreaseBy(10); c.Reset() }, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCounter(tc.initial)
			tc.ops(c)
			require.Equal(t, tc.want, c.Value())
		})
	}
}

func TestCounterShared(t *testing.T) {
	c := NewCounter(0)
	a, b := c, c
	a.Increment()
	b.Increment()
	require.Equal(t, 2, c.Value())
}

func TestNilCounter(t *testing.T) {
	var c *Counter
	c.Increment()
	c.Reset()
	require.Zero(t, c.Value())
}
