package fsnotify_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docsmith/kb"
	kbfsnotify "github.com/docsmith/kb/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// collectEvents drains events for the given window and returns them.
func collectEvents(events <-chan kb.ChangeEvent, window time.Duration) []kb.ChangeEvent {
	var got []kb.ChangeEvent
	deadline := time.After(window)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return got
			}
			got = append(got, ev)
		case <-deadline:
			return got
		}
	}
}

func eventPaths(events []kb.ChangeEvent) []string {
	paths := make([]string, 0, len(events))
	for _, ev := range events {
		paths = append(paths, ev.Path)
	}
	return paths
}

func TestWatcher_ReportsFileChanges(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	w, err := kbfsnotify.NewWatcher(discardLogger())
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := w.Watch(ctx, root)
	require.NoError(t, err)

	path := filepath.Join(root, "note.md")
	require.NoError(t, os.WriteFile(path, []byte("# Note\n"), 0o644))

	got := collectEvents(events, 500*time.Millisecond)
	require.NotEmpty(t, got)
	assert.Contains(t, eventPaths(got), path)
}

func TestWatcher_IgnoresHiddenFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	w, err := kbfsnotify.NewWatcher(discardLogger())
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := w.Watch(ctx, root)
	require.NoError(t, err)

	hidden := filepath.Join(root, ".hidden.md")
	require.NoError(t, os.WriteFile(hidden, []byte("secret\n"), 0o644))

	got := collectEvents(events, 300*time.Millisecond)
	assert.NotContains(t, eventPaths(got), hidden)
}

func TestWatcher_IgnoresDirectoryEvents(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	w, err := kbfsnotify.NewWatcher(discardLogger())
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := w.Watch(ctx, root)
	require.NoError(t, err)

	sub := filepath.Join(root, "guides")
	require.NoError(t, os.Mkdir(sub, 0o755))

	got := collectEvents(events, 300*time.Millisecond)
	assert.NotContains(t, eventPaths(got), sub)
}

func TestWatcher_WatchesNewSubdirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	w, err := kbfsnotify.NewWatcher(discardLogger())
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := w.Watch(ctx, root)
	require.NoError(t, err)

	sub := filepath.Join(root, "guides")
	require.NoError(t, os.Mkdir(sub, 0o755))

	// Give the watcher a moment to pick up the new directory.
	time.Sleep(200 * time.Millisecond)

	path := filepath.Join(sub, "intro.md")
	require.NoError(t, os.WriteFile(path, []byte("# Intro\n"), 0o644))

	got := collectEvents(events, 500*time.Millisecond)
	assert.Contains(t, eventPaths(got), path)
}

func TestWatcher_MissingRootFails(t *testing.T) {
	t.Parallel()

	w, err := kbfsnotify.NewWatcher(discardLogger())
	require.NoError(t, err)
	defer w.Close()

	_, err = w.Watch(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.Equal(t, kb.EUNAVAILABLE, kb.ErrorCode(err))
}

func TestWatcher_CancelClosesChannel(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	w, err := kbfsnotify.NewWatcher(discardLogger())
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	events, err := w.Watch(ctx, root)
	require.NoError(t, err)

	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancellation")
		}
	}
}
