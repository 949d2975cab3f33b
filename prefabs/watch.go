package prefabs

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

type ChangeKind int

const (
	ChangeSpec ChangeKind = iota + 1
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSpec:
		return "spec"
	case ChangeScript:
		return "script"
	default:
		return "unknown"
	}
}

// Change is one edited prefab file.
type Change struct {
	Path string
	Kind ChangeKind
}

// changeFor classifies path, or reports false for files the game never
// loads.
func changeFor(path string) (Change, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return Change{Path: path, Kind: ChangeSpec}, true
	case ".tengo":
		return Change{Path: path, Kind: ChangeScript}, true
	}
	return Change{}, false
}

// Watcher reports edits to the spec and script directories. The game loop
// drains them with Poll between frames.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan Change
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("prefabs: watch: %w", err)
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, fmt.Errorf("prefabs: watch %s: %w", dir, err)
		}
	}

	w := &Watcher{
		fs:      fs,
		changes: make(chan Change, 16),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

// Poll returns the changes seen since the last call, oldest first, without
// waiting.
func (w *Watcher) Poll() []Change {
	if w == nil {
		return nil
	}
	var out []Change
	for {
		select {
		case c := <-w.changes:
			out = append(out, c)
		default:
			return out
		}
	}
}

// Err returns the latest watch error, if any, without waiting.
func (w *Watcher) Err() error {
	if w == nil {
		return nil
	}
	select {
	case err := <-w.errs:
		return err
	default:
		return nil
	}
}

func (w *Watcher) loop() {
	seen := make(map[string]time.Time)
	for {
		select {
		case <-w.done:
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			// Keep only the first unread error.
			select {
			case w.errs <- err:
			default:
			}
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			change, ok := changeFor(event.Name)
			if !ok {
				continue
			}
			// Editors often write a file several times per save.
			now := time.Now()
			if at, ok := seen[event.Name]; ok && now.Sub(at) < watchDebounce {
				continue
			}
			seen[event.Name] = now

			select {
			case w.changes <- change:
			case <-w.done:
				return
			}
		}
	}
}
