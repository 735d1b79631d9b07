package kb

import "context"

// SiteBuilder abstracts the static site generator that renders the docs tree.
type SiteBuilder interface {
	// Build renders the site into the output directory.
	Build(ctx context.Context) error

	// Serve runs the generator's development server on the given port until
	// ctx is canceled.
	Serve(ctx context.Context, port int) error

	// Deploy publishes the rendered site.
	Deploy(ctx context.Context) error
}

// HookInstaller installs version-control hooks into a repository.
type HookInstaller interface {
	// InstallHooks writes the pre-commit and post-commit hooks for repoDir.
	InstallHooks(ctx context.Context, repoDir string) error
}

// Archiver creates compressed backups of the knowledge base tree.
type Archiver interface {
	// CreateBackup archives srcDir into outDir and returns the archive path.
	// Version-control metadata and generated site output are excluded.
	CreateBackup(ctx context.Context, srcDir, outDir string) (string, error)
}
