// Package mock provides hand-written test doubles for the kb interfaces.
package mock

import (
	"context"

	"github.com/docsmith/kb"
)

var _ kb.Repository = (*Repository)(nil)

// Repository is a mock implementation of kb.Repository.
type Repository struct {
	StatusFn   func(ctx context.Context) (string, error)
	StageAllFn func(ctx context.Context) error
	CommitFn   func(ctx context.Context, message string) error
	PushFn     func(ctx context.Context) error
}

func (r *Repository) Status(ctx context.Context) (string, error) {
	return r.StatusFn(ctx)
}

func (r *Repository) StageAll(ctx context.Context) error {
	return r.StageAllFn(ctx)
}

func (r *Repository) Commit(ctx context.Context, message string) error {
	return r.CommitFn(ctx, message)
}

func (r *Repository) Push(ctx context.Context) error {
	return r.PushFn(ctx)
}
