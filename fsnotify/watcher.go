// Package fsnotify implements kb.Watcher on top of fsnotify filesystem
// notifications. The underlying API is non-recursive, so every directory
// under the root is added to the watch set and newly created directories
// join it live.
package fsnotify

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/docsmith/kb"
	"github.com/fsnotify/fsnotify"
)

// Ensure Watcher implements kb.Watcher at compile time.
var _ kb.Watcher = (*Watcher)(nil)

// Watcher reports qualifying changes under a directory tree. Directory
// events and hidden files (dot-prefixed base names, including .git) are
// filtered out before delivery.
type Watcher struct {
	logger *slog.Logger
	fsw    *fsnotify.Watcher

	mu     sync.Mutex
	dirs   map[string]bool
	closed bool
}

// NewWatcher returns a Watcher that logs events to logger.
func NewWatcher(logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, kb.Errorf(kb.EUNAVAILABLE, "cannot create filesystem watcher: %v", err)
	}
	return &Watcher{
		logger: logger,
		fsw:    fsw,
		dirs:   make(map[string]bool),
	}, nil
}

// Watch begins observing root recursively and returns a channel of
// qualifying events. The channel is closed when ctx is canceled or the
// watcher is closed. An unobservable root is returned as an error so the
// caller can treat it as a fatal startup failure.
func (w *Watcher) Watch(ctx context.Context, root string) (<-chan kb.ChangeEvent, error) {
	if err := w.addTree(root); err != nil {
		return nil, err
	}

	out := make(chan kb.ChangeEvent)
	go w.loop(ctx, out)
	return out, nil
}

// Close stops the filesystem subscription and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.fsw.Close()
}

// addTree adds dir and every non-hidden subdirectory to the watch set.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return kb.Errorf(kb.EUNAVAILABLE, "cannot watch %s: %v", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && kb.Hidden(path) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return kb.Errorf(kb.EUNAVAILABLE, "cannot watch %s: %v", path, err)
		}
		w.mu.Lock()
		w.dirs[path] = true
		w.mu.Unlock()
		return nil
	})
}

func (w *Watcher) loop(ctx context.Context, out chan<- kb.ChangeEvent) {
	defer close(out)

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ctx, ev, out)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) handle(ctx context.Context, ev fsnotify.Event, out chan<- kb.ChangeEvent) {
	path := ev.Name

	// Newly created directories join the watch set; directory events
	// themselves never qualify.
	if ev.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if !kb.Hidden(path) {
				if err := w.addTree(path); err != nil {
					w.logger.Warn("cannot watch new directory", "path", path, "error", err)
				}
			}
			return
		}
	}

	// Removals and renames of directories we watch are classified via the
	// watch set, since the path no longer exists to stat.
	if w.isWatchedDir(path) {
		w.forgetDir(path)
		return
	}

	if kb.Hidden(path) {
		return
	}

	op := mapOp(ev.Op)
	if op == "" {
		return
	}

	w.logger.Info("change detected", "path", path, "op", string(op))

	select {
	case out <- kb.ChangeEvent{Op: op, Path: path}:
	case <-ctx.Done():
	}
}

func (w *Watcher) isWatchedDir(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dirs[path]
}

func (w *Watcher) forgetDir(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.dirs, path)
}

// mapOp translates an fsnotify op into a domain ChangeOp. Chmod-only
// events do not qualify.
func mapOp(op fsnotify.Op) kb.ChangeOp {
	switch {
	case op.Has(fsnotify.Create):
		return kb.OpCreate
	case op.Has(fsnotify.Write):
		return kb.OpWrite
	case op.Has(fsnotify.Remove):
		return kb.OpRemove
	case op.Has(fsnotify.Rename):
		return kb.OpRename
	default:
		return ""
	}
}
