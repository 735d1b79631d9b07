package goldmark_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/docsmith/kb"
	kbgoldmark "github.com/docsmith/kb/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeDoc(t *testing.T, docsDir, rel, content string) {
	t.Helper()
	path := filepath.Join(docsDir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const setupDoc = `---
title: Environment Setup
tags: setup, tooling
category: Development
---

# Setting Up Your Environment

Install the tools.
`

const styleDoc = `---
title: Style Guide
tags:
  - writing
  - tooling
---

# Style Guide

{{category: Writing}}

Write clearly.
`

const bareDoc = "Just some text without frontmatter or heading.\n"

func TestIndexer_ScanDocs(t *testing.T) {
	t.Parallel()

	docsDir := t.TempDir()
	writeDoc(t, docsDir, "setup.md", setupDoc)
	writeDoc(t, docsDir, "guides/style.md", styleDoc)
	writeDoc(t, docsDir, "notes.md", bareDoc)
	writeDoc(t, docsDir, ".draft.md", setupDoc)
	writeDoc(t, docsDir, "tags.md", "# Tags\n")
	writeDoc(t, docsDir, "categories/development.md", "# Development\n")
	writeDoc(t, docsDir, "readme.txt", "not markdown")

	indexer := kbgoldmark.NewIndexer(discardLogger())
	entries, err := indexer.ScanDocs(context.Background(), docsDir)
	require.NoError(t, err)

	require.Len(t, entries, 3)

	byPath := make(map[string]*kb.DocEntry)
	for _, entry := range entries {
		byPath[entry.Path] = entry
	}

	setup := byPath["setup.md"]
	require.NotNil(t, setup)
	assert.Equal(t, "Setting Up Your Environment", setup.Title, "first heading wins over frontmatter title")
	assert.Equal(t, []string{"setup", "tooling"}, setup.Tags, "comma-separated tags split")
	assert.Equal(t, []string{"Development"}, setup.Categories)

	style := byPath["guides/style.md"]
	require.NotNil(t, style)
	assert.Equal(t, []string{"writing", "tooling"}, style.Tags, "list tags preserved")
	assert.Equal(t, []string{"Writing"}, style.Categories, "inline category marker")

	bare := byPath["notes.md"]
	require.NotNil(t, bare)
	assert.Equal(t, "Untitled", bare.Title)
	assert.Empty(t, bare.Tags)
	assert.Empty(t, bare.Categories)
}

func TestIndexer_ScanDocs_MissingDir(t *testing.T) {
	t.Parallel()

	indexer := kbgoldmark.NewIndexer(discardLogger())
	_, err := indexer.ScanDocs(context.Background(), filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.Equal(t, kb.ENOTFOUND, kb.ErrorCode(err))
}

func TestIndexer_GenerateCategoryPages(t *testing.T) {
	t.Parallel()

	docsDir := t.TempDir()
	writeDoc(t, docsDir, "setup.md", setupDoc)
	writeDoc(t, docsDir, "guides/style.md", styleDoc)

	indexer := kbgoldmark.NewIndexer(discardLogger())
	result, err := indexer.GenerateCategoryPages(context.Background(), docsDir)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Scanned)
	assert.ElementsMatch(t, []string{
		"categories/development.md",
		"categories/writing.md",
		"categories/index.md",
	}, result.Pages)

	devPage, err := os.ReadFile(filepath.Join(docsDir, "categories", "development.md"))
	require.NoError(t, err)
	assert.Contains(t, string(devPage), "# Development")
	assert.Contains(t, string(devPage), "[Setting Up Your Environment](../setup.md)")

	index, err := os.ReadFile(filepath.Join(docsDir, "categories", "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "# Categories")
	assert.Contains(t, string(index), "[Development](development.md) (1 documents)")
	assert.Contains(t, string(index), "[Writing](writing.md) (1 documents)")
}

func TestIndexer_GenerateCategoryPages_NoCategories(t *testing.T) {
	t.Parallel()

	docsDir := t.TempDir()
	writeDoc(t, docsDir, "notes.md", bareDoc)

	indexer := kbgoldmark.NewIndexer(discardLogger())
	result, err := indexer.GenerateCategoryPages(context.Background(), docsDir)
	require.NoError(t, err)

	assert.Empty(t, result.Pages)
	assert.NoDirExists(t, filepath.Join(docsDir, "categories"))
}

func TestIndexer_GenerateTagsPage(t *testing.T) {
	t.Parallel()

	docsDir := t.TempDir()
	writeDoc(t, docsDir, "setup.md", setupDoc)
	writeDoc(t, docsDir, "guides/style.md", styleDoc)

	indexer := kbgoldmark.NewIndexer(discardLogger())
	result, err := indexer.GenerateTagsPage(context.Background(), docsDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"tags.md"}, result.Pages)

	page, err := os.ReadFile(filepath.Join(docsDir, "tags.md"))
	require.NoError(t, err)
	content := string(page)

	assert.Contains(t, content, "# Tags")
	assert.Contains(t, content, "## tooling")
	assert.Contains(t, content, "## setup")
	assert.Contains(t, content, "## writing")
	assert.Contains(t, content, "[Setting Up Your Environment](setup.md)")
	assert.Contains(t, content, "[Style Guide](guides/style.md)")

	// A rescan skips the generated page.
	entries, err := indexer.ScanDocs(context.Background(), docsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
