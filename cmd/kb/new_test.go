package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/docsmith/kb"
	main "github.com/docsmith/kb/cmd/kb"
	"github.com/docsmith/kb/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("creates document and prints its path", func(t *testing.T) {
		t.Parallel()

		var created *kb.Document
		scaffolder := &mock.Scaffolder{
			CreateDocumentFn: func(ctx context.Context, doc *kb.Document) (string, error) {
				created = doc
				return "docs/guides/getting-started.md", nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     stderr,
			Scaffolder: scaffolder,
		}

		cmd := &main.NewCmd{
			Title:    "Getting Started",
			Author:   "alice",
			Tags:     []string{"intro"},
			Category: "guides",
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "Getting Started", created.Title)
		assert.Equal(t, "guides", created.Category)
		assert.Contains(t, stdout.String(), "Created docs/guides/getting-started.md")
	})

	t.Run("prints error message on conflict", func(t *testing.T) {
		t.Parallel()

		scaffolder := &mock.Scaffolder{
			CreateDocumentFn: func(ctx context.Context, doc *kb.Document) (string, error) {
				return "", kb.Errorf(kb.ECONFLICT, "document already exists")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     stderr,
			Scaffolder: scaffolder,
		}

		cmd := &main.NewCmd{Title: "Getting Started"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "document already exists")
	})
}
