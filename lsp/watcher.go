package lsp

import (
	"io/fs"
	"path/filepath"
	"sync"
	"time"
)

// FileWatcher polls files and directory trees and calls onChange once per
// poll in which anything was added, modified or removed.
type FileWatcher struct {
	paths        []string
	onChange     func()
	stopCh       chan struct{}
	stopOnce     sync.Once
	pollInterval time.Duration
	modTimes     map[string]time.Time
}

func NewFileWatcher(paths []string, onChange func()) *FileWatcher {
	return &FileWatcher{
		paths:        paths,
		onChange:     onChange,
		stopCh:       make(chan struct{}),
		pollInterval: 2 * time.Second,
		modTimes:     make(map[string]time.Time),
	}
}

// Start records the current state and polls in the background until Stop.
func (w *FileWatcher) Start() {
	w.scan()
	go w.run()
}

// Stop ends polling. It may be called more than once.
func (w *FileWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

func (w *FileWatcher) run() {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			if w.scan() {
				w.onChange()
			}
		}
	}
}

// scan updates the recorded modification times and reports whether they
// changed.
func (w *FileWatcher) scan() bool {
	changed := false
	current := make(map[string]bool)

	for _, root := range w.paths {
		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return nil
			}
			current[path] = true
			lastMod, known := w.modTimes[path]
			if !known || !info.ModTime().Equal(lastMod) {
				w.modTimes[path] = info.ModTime()
				changed = true
			}
			return nil
		})
	}

	for path := range w.modTimes {
		if !current[path] {
			delete(w.modTimes, path)
			changed = true
		}
	}
	return changed
}
