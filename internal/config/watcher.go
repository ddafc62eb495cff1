// ABOUTME: Polling mtime watcher used to hot-reload config from the inspector
// ABOUTME: Changed is called from the caller's own tick; the watcher starts no goroutines

package config

import (
	"os"
	"time"
)

// Watcher detects create, modify and delete of a fixed set of files.
type Watcher struct {
	paths  []string
	mtimes map[string]time.Time
}

// NewWatcher records the current state of paths.
func NewWatcher(paths ...string) *Watcher {
	w := &Watcher{
		paths:  paths,
		mtimes: make(map[string]time.Time, len(paths)),
	}
	w.snapshot()
	return w
}

// Changed reports whether any file changed since the last call and records
// the new state.
func (w *Watcher) Changed() bool {
	changed := false
	for _, path := range w.paths {
		info, err := os.Stat(path)
		prev, existed := w.mtimes[path]
		switch {
		case err != nil:
			changed = changed || existed
		case !existed || !info.ModTime().Equal(prev):
			changed = true
		}
	}
	if changed {
		w.snapshot()
	}
	return changed
}

func (w *Watcher) snapshot() {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			delete(w.mtimes, path)
			continue
		}
		w.mtimes[path] = info.ModTime()
	}
}
