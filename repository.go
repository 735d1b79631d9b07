package kb

import (
	"context"
	"time"
)

// Repository abstracts the version-controlled working tree that holds the
// knowledge base. Implementations shell out to the git client; each method
// maps to a single external command whose exit status decides success.
type Repository interface {
	// Status returns the porcelain status of the working tree. An empty
	// string means there is nothing to commit.
	Status(ctx context.Context) (string, error)

	// StageAll stages every pending change in the working tree.
	StageAll(ctx context.Context) error

	// Commit records the staged changes with the given message.
	Commit(ctx context.Context, message string) error

	// Push uploads the current branch to its configured remote.
	Push(ctx context.Context) error
}

// SyncResult describes the outcome of one commit-and-push cycle. A push
// failure after a successful commit surfaces as Committed=true, Pushed=false
// alongside the error; the local commit is kept.
type SyncResult struct {
	Committed bool   `json:"committed"`
	Pushed    bool   `json:"pushed"`
	Message   string `json:"message"`
}

// CommitMessage returns the default auto-commit message for now.
func CommitMessage(now time.Time) string {
	return "Auto-commit: Update documentation at " + now.Format("2006-01-02 15:04:05")
}
