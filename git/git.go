// Package git implements kb.Repository by shelling out to the git client.
// Each operation maps to a single git invocation; failures carry the
// captured stderr text so callers can log it without re-running commands.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/docsmith/kb"
)

// Runner executes an external command in a directory and returns its
// trimmed standard output.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner. A non-zero exit status becomes an EUNAVAILABLE
// error containing the command line and captured stderr.
func (ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", kb.Errorf(kb.EUNAVAILABLE, "%s %s: %s", name, strings.Join(args, " "), detail)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Ensure Repository implements kb.Repository at compile time.
var _ kb.Repository = (*Repository)(nil)

// Repository operates on the git working tree at a directory.
type Repository struct {
	dir    string
	runner Runner
}

// NewRepository returns a Repository for the working tree at dir.
func NewRepository(dir string) *Repository {
	return &Repository{dir: dir, runner: ExecRunner{}}
}

// NewRepositoryWithRunner returns a Repository with a custom Runner.
func NewRepositoryWithRunner(dir string, runner Runner) *Repository {
	return &Repository{dir: dir, runner: runner}
}

// Dir returns the working tree directory.
func (r *Repository) Dir() string {
	return r.dir
}

// Status returns the porcelain status of the working tree. An empty string
// means there is nothing to commit.
func (r *Repository) Status(ctx context.Context) (string, error) {
	return r.runner.Run(ctx, r.dir, "git", "status", "--porcelain")
}

// StageAll stages every pending change.
func (r *Repository) StageAll(ctx context.Context) error {
	_, err := r.runner.Run(ctx, r.dir, "git", "add", "--all")
	return err
}

// Commit records the staged changes with the given message.
func (r *Repository) Commit(ctx context.Context, message string) error {
	_, err := r.runner.Run(ctx, r.dir, "git", "commit", "-m", message)
	return err
}

// Push uploads the current branch to its configured remote.
func (r *Repository) Push(ctx context.Context) error {
	_, err := r.runner.Run(ctx, r.dir, "git", "push")
	return err
}

// IsRepository reports whether dir is inside a git working tree.
func IsRepository(ctx context.Context, dir string) bool {
	_, err := ExecRunner{}.Run(ctx, dir, "git", "rev-parse", "--is-inside-work-tree")
	return err == nil
}
