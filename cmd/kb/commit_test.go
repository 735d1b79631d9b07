package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/docsmith/kb"
	main "github.com/docsmith/kb/cmd/kb"
	"github.com/docsmith/kb/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestCommitCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("commits and pushes a dirty tree", func(t *testing.T) {
		t.Parallel()

		var committed string
		var pushed bool
		repo := &mock.Repository{
			StatusFn:   func(ctx context.Context) (string, error) { return " M docs/index.md\n", nil },
			StageAllFn: func(ctx context.Context) error { return nil },
			CommitFn: func(ctx context.Context, message string) error {
				committed = message
				return nil
			},
			PushFn: func(ctx context.Context) error {
				pushed = true
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Repo = repo

		cmd := &main.CommitCmd{Message: "manual update"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "manual update", committed)
		assert.True(t, pushed)
		assert.Contains(t, stdout.String(), "Committed and pushed: manual update")
	})

	t.Run("reports a clean tree", func(t *testing.T) {
		t.Parallel()

		repo := &mock.Repository{
			StatusFn: func(ctx context.Context) (string, error) { return "", nil },
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Repo = repo

		cmd := &main.CommitCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Nothing to commit.")
	})

	t.Run("prints error when push fails", func(t *testing.T) {
		t.Parallel()

		repo := &mock.Repository{
			StatusFn:   func(ctx context.Context) (string, error) { return " M docs/index.md\n", nil },
			StageAllFn: func(ctx context.Context) error { return nil },
			CommitFn:   func(ctx context.Context, message string) error { return nil },
			PushFn: func(ctx context.Context) error {
				return kb.Errorf(kb.EUNAVAILABLE, "remote unreachable")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Repo = repo

		cmd := &main.CommitCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "remote unreachable")
	})
}
