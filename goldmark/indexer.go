// Package goldmark scans markdown documents for frontmatter and headings
// and generates the category and tag index pages of the knowledge base.
package goldmark

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/docsmith/kb"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"golang.org/x/sync/errgroup"
)

// categoryMarker is the inline alternative to frontmatter categories,
// e.g. {{category: Development}}.
var categoryMarker = regexp.MustCompile(`\{\{category:\s*(.*?)\s*\}\}`)

// Ensure Indexer implements kb.Indexer at compile time.
var _ kb.Indexer = (*Indexer)(nil)

// Indexer scans the docs tree and generates index pages.
type Indexer struct {
	logger      *slog.Logger
	md          goldmark.Markdown
	concurrency int
}

// NewIndexer returns an Indexer that logs generated pages to logger.
func NewIndexer(logger *slog.Logger) *Indexer {
	return &Indexer{
		logger:      logger,
		md:          goldmark.New(goldmark.WithExtensions(meta.Meta)),
		concurrency: 8,
	}
}

// ScanDocs walks docsDir collecting frontmatter and titles from every
// markdown file. The generated tags.md and categories/ pages are skipped,
// as are hidden files and directories.
func (i *Indexer) ScanDocs(ctx context.Context, docsDir string) ([]*kb.DocEntry, error) {
	var paths []string
	err := filepath.WalkDir(docsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != docsDir && (kb.Hidden(path) || d.Name() == "categories") {
				return filepath.SkipDir
			}
			return nil
		}
		if kb.Hidden(path) || d.Name() == "tags.md" {
			return nil
		}
		if filepath.Ext(path) != ".md" {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, kb.Errorf(kb.ENOTFOUND, "cannot scan docs directory %s: %v", docsDir, err)
	}

	entries := make([]*kb.DocEntry, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.concurrency)
	for n, path := range paths {
		n, path := n, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			source, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(docsDir, path)
			if err != nil {
				return err
			}
			entries[n] = i.parse(source, filepath.ToSlash(rel))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(a, b int) bool { return entries[a].Path < entries[b].Path })
	return entries, nil
}

// parse extracts the title, tags, and categories from a markdown source.
func (i *Indexer) parse(source []byte, relPath string) *kb.DocEntry {
	pctx := parser.NewContext()
	doc := i.md.Parser().Parse(text.NewReader(source), parser.WithContext(pctx))

	entry := &kb.DocEntry{Path: relPath, Title: "Untitled"}

	metadata := meta.Get(pctx)
	if metadata != nil {
		if title, ok := metadata["title"].(string); ok && title != "" {
			entry.Title = title
		}
		entry.Tags = stringList(metadata["tags"])
		entry.Categories = stringList(metadata["category"])
	}

	// The first top-level heading wins over the frontmatter title.
	if heading := firstHeading(doc, source); heading != "" {
		entry.Title = heading
	}

	// Inline category marker counts alongside frontmatter categories.
	if m := categoryMarker.FindSubmatch(source); m != nil {
		entry.Categories = append(entry.Categories, string(m[1]))
	}

	return entry
}

// firstHeading returns the text of the first level-1 heading, or "".
func firstHeading(doc ast.Node, source []byte) string {
	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			title = nodeText(h, source)
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

// nodeText collects the plain text content of a node.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// stringList normalizes a frontmatter value that may be a comma-separated
// string or a YAML list.
func stringList(value any) []string {
	switch v := value.(type) {
	case string:
		var out []string
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	case []any:
		var out []string
		for _, item := range v {
			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
