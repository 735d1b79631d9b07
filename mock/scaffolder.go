package mock

import (
	"context"

	"github.com/docsmith/kb"
)

var _ kb.Scaffolder = (*Scaffolder)(nil)

// Scaffolder is a mock implementation of kb.Scaffolder.
type Scaffolder struct {
	CreateDocumentFn func(ctx context.Context, doc *kb.Document) (string, error)
}

func (s *Scaffolder) CreateDocument(ctx context.Context, doc *kb.Document) (string, error) {
	return s.CreateDocumentFn(ctx, doc)
}
