package mock

import (
	"context"

	"github.com/docsmith/kb"
)

var _ kb.Indexer = (*Indexer)(nil)

// Indexer is a mock implementation of kb.Indexer.
type Indexer struct {
	ScanDocsFn              func(ctx context.Context, docsDir string) ([]*kb.DocEntry, error)
	GenerateCategoryPagesFn func(ctx context.Context, docsDir string) (*kb.IndexResult, error)
	GenerateTagsPageFn      func(ctx context.Context, docsDir string) (*kb.IndexResult, error)
}

func (i *Indexer) ScanDocs(ctx context.Context, docsDir string) ([]*kb.DocEntry, error) {
	return i.ScanDocsFn(ctx, docsDir)
}

func (i *Indexer) GenerateCategoryPages(ctx context.Context, docsDir string) (*kb.IndexResult, error) {
	return i.GenerateCategoryPagesFn(ctx, docsDir)
}

func (i *Indexer) GenerateTagsPage(ctx context.Context, docsDir string) (*kb.IndexResult, error) {
	return i.GenerateTagsPageFn(ctx, docsDir)
}
