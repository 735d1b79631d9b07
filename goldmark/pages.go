package goldmark

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docsmith/kb"
)

// GenerateCategoryPages writes one page per category plus a categories
// index under docsDir/categories.
func (i *Indexer) GenerateCategoryPages(ctx context.Context, docsDir string) (*kb.IndexResult, error) {
	entries, err := i.ScanDocs(ctx, docsDir)
	if err != nil {
		return nil, err
	}

	categories := make(map[string][]*kb.DocEntry)
	for _, entry := range entries {
		for _, name := range entry.Categories {
			categories[name] = append(categories[name], entry)
		}
	}

	result := &kb.IndexResult{Scanned: len(entries)}
	if len(categories) == 0 {
		i.logger.Warn("no categories found in the documentation")
		return result, nil
	}

	categoriesDir := filepath.Join(docsDir, "categories")
	if err := os.MkdirAll(categoriesDir, 0o755); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	var index strings.Builder
	index.WriteString("# Categories\n\nBrowse documentation by category:\n\n")

	for _, name := range names {
		docs := categories[name]
		sort.Slice(docs, func(a, b int) bool { return docs[a].Path < docs[b].Path })

		slug := kb.Slugify(name)
		var page strings.Builder
		fmt.Fprintf(&page, "# %s\n\nThe following documents are categorized as **%s**:\n\n", name, name)
		for _, doc := range docs {
			fmt.Fprintf(&page, "- [%s](../%s)\n", doc.Title, doc.Path)
		}

		rel := path.Join("categories", slug+".md")
		if err := os.WriteFile(filepath.Join(docsDir, "categories", slug+".md"), []byte(page.String()), 0o644); err != nil {
			return nil, err
		}
		i.logger.Info("generated category page", "category", name, "page", rel)
		result.Pages = append(result.Pages, rel)

		fmt.Fprintf(&index, "- [%s](%s.md) (%d documents)\n", name, slug, len(docs))
	}

	indexRel := path.Join("categories", "index.md")
	if err := os.WriteFile(filepath.Join(categoriesDir, "index.md"), []byte(index.String()), 0o644); err != nil {
		return nil, err
	}
	i.logger.Info("generated categories index", "page", indexRel)
	result.Pages = append(result.Pages, indexRel)

	return result, nil
}

// GenerateTagsPage writes docsDir/tags.md grouping documents by tag.
func (i *Indexer) GenerateTagsPage(ctx context.Context, docsDir string) (*kb.IndexResult, error) {
	entries, err := i.ScanDocs(ctx, docsDir)
	if err != nil {
		return nil, err
	}

	tags := make(map[string][]*kb.DocEntry)
	for _, entry := range entries {
		for _, tag := range entry.Tags {
			tags[tag] = append(tags[tag], entry)
		}
	}

	result := &kb.IndexResult{Scanned: len(entries)}
	if len(tags) == 0 {
		i.logger.Warn("no tags found in the documentation")
		return result, nil
	}

	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	var page strings.Builder
	page.WriteString("# Tags\n\nBrowse documentation by tag:\n\n")
	for _, name := range names {
		docs := tags[name]
		sort.Slice(docs, func(a, b int) bool { return docs[a].Path < docs[b].Path })

		fmt.Fprintf(&page, "## %s\n\n", name)
		for _, doc := range docs {
			fmt.Fprintf(&page, "- [%s](%s)\n", doc.Title, doc.Path)
		}
		page.WriteString("\n")
	}

	if err := os.WriteFile(filepath.Join(docsDir, "tags.md"), []byte(page.String()), 0o644); err != nil {
		return nil, err
	}
	i.logger.Info("generated tags page", "page", "tags.md", "tags", len(names))
	result.Pages = append(result.Pages, "tags.md")

	return result, nil
}
