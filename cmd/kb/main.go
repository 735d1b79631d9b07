package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/docsmith/kb"
	kbfsnotify "github.com/docsmith/kb/fsnotify"
	"github.com/docsmith/kb/git"
	"github.com/docsmith/kb/goldmark"
	"github.com/docsmith/kb/mkdocs"
	"github.com/docsmith/kb/scaffold"
	kbslog "github.com/docsmith/kb/slog"
	"github.com/docsmith/kb/zstd"
)

func main() {
	// Watch and serve run until interrupted; cancellation is the normal
	// shutdown path for them.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Repo overrides the git-backed repository. Set before calling Run()
	// for end-to-end testing.
	Repo kb.Repository

	// Watcher overrides the filesystem watcher. Set before calling Run()
	// for end-to-end testing.
	Watcher kb.Watcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("kb"),
		kong.Description("Maintain a markdown knowledge base in git, rendered with MkDocs."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'kb --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger
	deps.Dir = cli.Dir

	// The docs directory follows a docs_dir override in mkdocs.yml when
	// the project has one.
	deps.DocsDir = (&mkdocs.Config{}).DocsPath(cli.Dir)
	if cfg, err := mkdocs.LoadConfig(cli.Dir); err == nil {
		deps.DocsDir = cfg.DocsPath(cli.Dir)
	}

	// Wire core services into dependencies
	repo := m.Repo
	if repo == nil {
		repo = git.NewRepository(cli.Dir)
	}
	deps.Repo = kbslog.NewLoggingRepository(repo, logger)
	deps.Scaffolder = scaffold.NewDocumentService(deps.DocsDir, logger)
	deps.Indexer = goldmark.NewIndexer(logger)
	deps.Site = mkdocs.NewBuilder(cli.Dir, stdout, stderr, logger)
	deps.Hooks = git.NewHookService()
	deps.Archiver = zstd.NewArchiver(logger)
	deps.Auth = scaffold.NewAuthGenerator(logger)
	deps.Comments = scaffold.NewCommentsGenerator(logger)
	deps.Analytics = scaffold.NewAnalyticsGenerator(logger)

	// Commits only make sense inside a repository; fail before the first
	// cycle rather than during it.
	if cmd == "watch" || cmd == "commit" {
		if !git.IsRepository(ctx, cli.Dir) {
			return kb.Errorf(kb.ENOTFOUND, "%q is not a git repository", cli.Dir)
		}
	}

	// Wire command-specific dependencies based on command
	if cmd == "watch" {
		watcher := m.Watcher
		if watcher == nil {
			fsw, err := kbfsnotify.NewWatcher(logger)
			if err != nil {
				return fmt.Errorf("failed to start filesystem watcher: %w", err)
			}
			watcher = fsw
		}
		deps.Watcher = watcher
		defer watcher.Close()
	}

	return kongCtx.Run(deps)
}
