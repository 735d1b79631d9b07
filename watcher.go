package kb

import (
	"context"
	"path/filepath"
	"strings"
)

// ChangeOp identifies the kind of filesystem change.
type ChangeOp string

// ChangeOp values.
const (
	OpCreate ChangeOp = "create"
	OpWrite  ChangeOp = "write"
	OpRemove ChangeOp = "remove"
	OpRename ChangeOp = "rename"
)

// ChangeEvent is a qualifying filesystem change under a watched root.
// Directory events and hidden files never qualify; implementations filter
// them before delivery.
type ChangeEvent struct {
	Op   ChangeOp `json:"op"`
	Path string   `json:"path"`
}

// Watcher observes a directory tree and reports qualifying changes.
type Watcher interface {
	// Watch begins observing root recursively and returns a channel of
	// qualifying events. The channel is closed when ctx is canceled or the
	// watcher is closed. An unobservable root is a startup failure.
	Watch(ctx context.Context, root string) (<-chan ChangeEvent, error)

	// Close stops the filesystem subscription and releases resources.
	Close() error
}

// Hidden reports whether path has a dot-prefixed base name.
func Hidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
