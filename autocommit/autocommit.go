// Package autocommit orchestrates the change-triggered commit pipeline.
// Watcher events settle for a debounce interval, then the working tree is
// staged, committed, and pushed once per quiescent period. The pipeline is
// also usable one-shot and on a fixed schedule.
package autocommit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/docsmith/kb"
)

// Pipeline performs a single status-check-then-commit-then-push cycle.
type Pipeline struct {
	Repo   kb.Repository
	Logger *slog.Logger

	// Now returns the current time used in generated commit messages.
	// Defaults to time.Now.
	Now func() time.Time
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// CommitAndPush runs one cycle. A clean tree performs neither a commit nor
// a push. An empty message is replaced with a timestamped default. A push
// failure after a successful commit returns the partial result alongside
// the error; the local commit is kept.
func (p *Pipeline) CommitAndPush(ctx context.Context, message string) (*kb.SyncResult, error) {
	result := &kb.SyncResult{}

	status, err := p.Repo.Status(ctx)
	if err != nil {
		p.Logger.Error("status check failed", "error", kb.ErrorMessage(err))
		return result, err
	}
	if status == "" {
		p.Logger.Info("no changes to commit")
		return result, nil
	}

	if message == "" {
		message = kb.CommitMessage(p.now())
	}
	result.Message = message

	if err := p.Repo.StageAll(ctx); err != nil {
		p.Logger.Error("staging failed", "error", kb.ErrorMessage(err))
		return result, err
	}
	if err := p.Repo.Commit(ctx, message); err != nil {
		p.Logger.Error("commit failed", "error", kb.ErrorMessage(err))
		return result, err
	}
	result.Committed = true
	p.Logger.Info("changes committed", "message", message)

	if err := p.Repo.Push(ctx); err != nil {
		// The local commit is kept; no retry, no rollback.
		p.Logger.Error("push failed", "error", kb.ErrorMessage(err))
		return result, err
	}
	result.Pushed = true
	p.Logger.Info("changes pushed to remote")

	return result, nil
}

// RunEvery performs a commit cycle every interval until ctx is canceled.
// Failed cycles are logged; the loop keeps running.
func (p *Pipeline) RunEvery(ctx context.Context, interval time.Duration) error {
	p.Logger.Info("monitoring for changes", "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := p.CommitAndPush(ctx, ""); err != nil {
				p.Logger.Error("auto-commit cycle failed", "error", kb.ErrorMessage(err))
			}
		}
	}
}

// Runner connects a watcher event stream to the pipeline through a
// debounced trigger.
type Runner struct {
	Pipeline *Pipeline
	Debounce time.Duration
	Logger   *slog.Logger

	mu sync.Mutex
}

// Run consumes events until ctx is canceled or the stream closes. Each
// event advances the quiescence tracker; once the tree has been quiet for
// the debounce interval the pipeline fires exactly once. Failed cycles are
// logged and the loop keeps running.
func (r *Runner) Run(ctx context.Context, events <-chan kb.ChangeEvent) error {
	debouncer := kb.NewDebouncer(r.Debounce, func() { r.fire(ctx) })
	defer debouncer.Stop()

	r.Logger.Info("auto-commit armed", "debounce", r.Debounce.String())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			r.Logger.Info("change recorded", "path", ev.Path, "op", string(ev.Op))
			debouncer.Record(time.Now())
		}
	}
}

// fire runs one commit cycle. Firings are serialized so a long push cannot
// overlap the next quiescent period's cycle.
func (r *Runner) fire(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Logger.Info("changes settled, committing", "debounce", r.Debounce.String())
	if _, err := r.Pipeline.CommitAndPush(ctx, ""); err != nil {
		r.Logger.Error("auto-commit cycle failed", "error", kb.ErrorMessage(err))
	}
}
