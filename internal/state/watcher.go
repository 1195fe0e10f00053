package state

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/board2go/board2go/internal/ui"
	"github.com/fsnotify/fsnotify"
)

// Watcher flags changes to a set of state files inside one directory.
type Watcher struct {
	dir     string
	names   map[string]bool
	watcher *fsnotify.Watcher
	changed atomic.Bool
}

// NewWatcher starts watching dir for changes to the files with the given paths.
// Only paths located directly in dir are tracked.
func NewWatcher(dir string, paths ...string) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	names := map[string]bool{}
	for _, path := range paths {
		if filepath.Clean(filepath.Dir(path)) == filepath.Clean(dir) {
			names[filepath.Base(path)] = true
		}
	}

	return &Watcher{
		dir:     dir,
		names:   names,
		watcher: watcher,
	}, nil
}

// Run consumes filesystem events until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		_ = w.watcher.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if w.names[filepath.Base(event.Name)] {
				ui.Debug("State file changed: %s", event.Name)
				w.changed.Store(true)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			ui.Warning("Error watching state directory %s: %v", w.dir, err)
		}
	}
}

// Changed reports whether a tracked file changed since the last call.
func (w *Watcher) Changed() bool {
	return w.changed.Swap(false)
}
