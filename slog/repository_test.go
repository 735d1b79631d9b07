package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/docsmith/kb/mock"
	kbslog "github.com/docsmith/kb/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRepository(t *testing.T) {
	t.Parallel()

	t.Run("logs commit with message and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Repository{
			CommitFn: func(ctx context.Context, message string) error { return nil },
		}

		repo := kbslog.NewLoggingRepository(inner, logger)
		require.NoError(t, repo.Commit(context.Background(), "update docs"))

		output := buf.String()
		assert.Contains(t, output, "commit")
		assert.Contains(t, output, `message="update docs"`)
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs status dirty flag at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Repository{
			StatusFn: func(ctx context.Context) (string, error) { return " M docs/index.md\n", nil },
		}

		repo := kbslog.NewLoggingRepository(inner, logger)
		out, err := repo.Status(context.Background())

		require.NoError(t, err)
		assert.NotEmpty(t, out)
		assert.Contains(t, buf.String(), "dirty=true")
	})

	t.Run("logs error on push failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Repository{
			PushFn: func(ctx context.Context) error { return errors.New("remote unreachable") },
		}

		repo := kbslog.NewLoggingRepository(inner, logger)
		err := repo.Push(context.Background())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "push")
		assert.Contains(t, output, `err="remote unreachable"`)
	})

	t.Run("delegates stage errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Repository{
			StageAllFn: func(ctx context.Context) error { return errors.New("index locked") },
		}

		repo := kbslog.NewLoggingRepository(inner, logger)
		err := repo.StageAll(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="index locked"`)
	})
}
