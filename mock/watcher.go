package mock

import (
	"context"

	"github.com/docsmith/kb"
)

var _ kb.Watcher = (*Watcher)(nil)

// Watcher is a mock implementation of kb.Watcher.
type Watcher struct {
	WatchFn func(ctx context.Context, root string) (<-chan kb.ChangeEvent, error)
	CloseFn func() error
}

func (w *Watcher) Watch(ctx context.Context, root string) (<-chan kb.ChangeEvent, error) {
	return w.WatchFn(ctx, root)
}

func (w *Watcher) Close() error {
	if w.CloseFn == nil {
		return nil
	}
	return w.CloseFn()
}
