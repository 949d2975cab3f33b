package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestChangeFor(t *testing.T) {
	tests := []struct {
		path string
		kind ChangeKind
		ok   bool
	}{
		{path: "prefabs/game.yaml", kind: ChangeSpec, ok: true},
		{path: "prefabs/GAME.YML", kind: ChangeSpec, ok: true},
		{path: "prefabs/scripts/alternate.tengo", kind: ChangeScript, ok: true},
		{path: "prefabs/notes.txt"},
		{path: "prefabs/game.yaml~"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			c, ok := changeFor(tc.path)
			require.Equal(t, tc.ok, ok)
			if ok {
				require.Equal(t, tc.kind, c.Kind)
				require.Equal(t, tc.path, c.Path)
			}
		})
	}
}

func TestWatcherReportsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	spec := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(spec, []byte("window: {}"), 0o644))

	var got []Change
	require.Eventually(t, func() bool {
		got = append(got, w.Poll()...)
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)

	for _, c := range got {
		require.Equal(t, Change{Path: spec, Kind: ChangeSpec}, c)
	}
	require.NoError(t, w.Err())
}

func TestWatcherNilAndDoubleClose(t *testing.T) {
	var w *Watcher
	require.Nil(t, w.Poll())
	require.NoError(t, w.Err())
	require.NoError(t, w.Close())

	live, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, live.Close())
	require.NoError(t, live.Close())
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
