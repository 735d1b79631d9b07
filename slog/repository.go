// Package slog provides logging decorators for kb interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/docsmith/kb"
)

// Ensure LoggingRepository implements kb.Repository.
var _ kb.Repository = (*LoggingRepository)(nil)

// LoggingRepository wraps a Repository and logs each git operation with
// its duration and outcome.
type LoggingRepository struct {
	next   kb.Repository
	logger *slog.Logger
}

// NewLoggingRepository creates a new LoggingRepository.
func NewLoggingRepository(next kb.Repository, logger *slog.Logger) *LoggingRepository {
	return &LoggingRepository{next: next, logger: logger}
}

// Status delegates to the wrapped repository and logs whether the
// working tree is dirty.
func (r *LoggingRepository) Status(ctx context.Context) (string, error) {
	begin := time.Now()
	out, err := r.next.Status(ctx)
	if err != nil {
		r.logger.Error("status", "err", err, "duration", time.Since(begin))
		return out, err
	}
	r.logger.Debug("status", "dirty", out != "", "duration", time.Since(begin))
	return out, nil
}

// StageAll delegates to the wrapped repository and logs the outcome.
func (r *LoggingRepository) StageAll(ctx context.Context) error {
	begin := time.Now()
	err := r.next.StageAll(ctx)
	if err != nil {
		r.logger.Error("stage", "err", err, "duration", time.Since(begin))
		return err
	}
	r.logger.Debug("stage", "duration", time.Since(begin))
	return nil
}

// Commit delegates to the wrapped repository and logs the commit message.
func (r *LoggingRepository) Commit(ctx context.Context, message string) error {
	begin := time.Now()
	err := r.next.Commit(ctx, message)
	if err != nil {
		r.logger.Error("commit", "err", err, "duration", time.Since(begin))
		return err
	}
	r.logger.Info("commit", "message", message, "duration", time.Since(begin))
	return nil
}

// Push delegates to the wrapped repository and logs the outcome.
func (r *LoggingRepository) Push(ctx context.Context) error {
	begin := time.Now()
	err := r.next.Push(ctx)
	if err != nil {
		r.logger.Error("push", "err", err, "duration", time.Since(begin))
		return err
	}
	r.logger.Info("push", "duration", time.Since(begin))
	return nil
}
