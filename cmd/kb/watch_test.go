package main_test

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/docsmith/kb"
	main "github.com/docsmith/kb/cmd/kb"
	"github.com/docsmith/kb/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("commits after a burst of changes settles", func(t *testing.T) {
		t.Parallel()

		events := make(chan kb.ChangeEvent)
		watcher := &mock.Watcher{
			WatchFn: func(ctx context.Context, root string) (<-chan kb.ChangeEvent, error) {
				return events, nil
			},
		}

		var commits atomic.Int64
		repo := &mock.Repository{
			StatusFn:   func(ctx context.Context) (string, error) { return " M docs/index.md\n", nil },
			StageAllFn: func(ctx context.Context) error { return nil },
			CommitFn: func(ctx context.Context, message string) error {
				commits.Add(1)
				return nil
			},
			PushFn: func(ctx context.Context) error { return nil },
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Repo = repo
		deps.Watcher = watcher
		deps.DocsDir = "docs"

		cmd := &main.WatchCmd{Debounce: 50 * time.Millisecond}

		done := make(chan error, 1)
		go func() { done <- cmd.Run(deps) }()

		events <- kb.ChangeEvent{Op: kb.OpWrite, Path: "docs/index.md"}
		events <- kb.ChangeEvent{Op: kb.OpWrite, Path: "docs/setup.md"}

		require.Eventually(t, func() bool {
			return commits.Load() == 1
		}, time.Second, 10*time.Millisecond)

		close(events)
		require.NoError(t, <-done)
		assert.Contains(t, stdout.String(), "Watching docs")
	})

	t.Run("returns error when the watcher cannot start", func(t *testing.T) {
		t.Parallel()

		watcher := &mock.Watcher{
			WatchFn: func(ctx context.Context, root string) (<-chan kb.ChangeEvent, error) {
				return nil, kb.Errorf(kb.EUNAVAILABLE, "cannot watch %q", root)
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Watcher = watcher
		deps.DocsDir = "missing"

		cmd := &main.WatchCmd{Debounce: 50 * time.Millisecond}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, kb.EUNAVAILABLE, kb.ErrorCode(err))
		assert.Contains(t, stderr.String(), "cannot watch")
	})

	t.Run("stops cleanly on cancellation", func(t *testing.T) {
		t.Parallel()

		events := make(chan kb.ChangeEvent)
		watcher := &mock.Watcher{
			WatchFn: func(ctx context.Context, root string) (<-chan kb.ChangeEvent, error) {
				return events, nil
			},
		}

		ctx, cancel := context.WithCancel(context.Background())
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Ctx = ctx
		deps.Watcher = watcher
		deps.DocsDir = "docs"

		cmd := &main.WatchCmd{Debounce: time.Second}

		done := make(chan error, 1)
		go func() { done <- cmd.Run(deps) }()

		cancel()
		require.NoError(t, <-done)
	})
}
