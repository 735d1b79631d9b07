// Package mkdocs drives the MkDocs site generator and reads its
// configuration file.
package mkdocs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"github.com/docsmith/kb"
)

// Ensure Builder implements kb.SiteBuilder at compile time.
var _ kb.SiteBuilder = (*Builder)(nil)

// Builder runs the mkdocs binary in a project directory. Command output
// is streamed to the configured writers so build errors and the serve
// URL are visible to the user.
type Builder struct {
	dir    string
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// NewBuilder returns a Builder operating in dir.
func NewBuilder(dir string, stdout, stderr io.Writer, logger *slog.Logger) *Builder {
	return &Builder{dir: dir, stdout: stdout, stderr: stderr, logger: logger}
}

// Build renders the site into the site directory.
func (b *Builder) Build(ctx context.Context) error {
	b.logger.Info("building site", "dir", b.dir)
	return b.run(ctx, "build")
}

// Serve runs the MkDocs development server on the given port until ctx
// is canceled.
func (b *Builder) Serve(ctx context.Context, port int) error {
	b.logger.Info("serving site", "dir", b.dir, "port", port)
	err := b.run(ctx, "serve", "--dev-addr", fmt.Sprintf("0.0.0.0:%d", port))
	// The server only exits when interrupted, so cancellation is the
	// normal shutdown path rather than a failure.
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// Deploy builds the site and publishes it to the gh-pages branch.
func (b *Builder) Deploy(ctx context.Context) error {
	b.logger.Info("deploying site", "dir", b.dir)
	return b.run(ctx, "gh-deploy", "--force")
}

func (b *Builder) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "mkdocs", args...)
	cmd.Dir = b.dir
	cmd.Stdout = b.stdout
	cmd.Stderr = b.stderr
	if err := cmd.Run(); err != nil {
		return kb.Errorf(kb.EUNAVAILABLE, "mkdocs %s: %s", args[0], err)
	}
	return nil
}
