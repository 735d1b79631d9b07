package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/docsmith/kb"
	"github.com/docsmith/kb/scaffold"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Dir is the knowledge base root; DocsDir is its docs directory.
	Dir     string
	DocsDir string

	Repo       kb.Repository
	Watcher    kb.Watcher
	Scaffolder kb.Scaffolder
	Indexer    kb.Indexer
	Site       kb.SiteBuilder
	Hooks      kb.HookInstaller
	Archiver   kb.Archiver
	Auth       *scaffold.AuthGenerator
	Comments   *scaffold.CommentsGenerator
	Analytics  *scaffold.AnalyticsGenerator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dir     string `short:"C" default:"." help:"Knowledge base directory"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	New        NewCmd        `cmd:"" help:"Create a new document from the standard template"`
	Watch      WatchCmd      `cmd:"" help:"Watch the docs tree and auto-commit changes"`
	Commit     CommitCmd     `cmd:"" help:"Commit and push pending changes once, or on an interval"`
	Categories CategoriesCmd `cmd:"" help:"Generate category index pages"`
	Tags       TagsCmd       `cmd:"" help:"Generate the tags index page"`
	Build      BuildCmd      `cmd:"" help:"Build the static site"`
	Serve      ServeCmd      `cmd:"" help:"Serve the site locally with live reload"`
	Deploy     DeployCmd     `cmd:"" help:"Deploy the site to GitHub Pages"`
	Hooks      HooksCmd      `cmd:"" help:"Install git hooks for linting and rebuilds"`
	Auth       AuthCmd       `cmd:"" help:"Generate authentication configuration for the site"`
	Comments   CommentsCmd   `cmd:"" help:"Generate a comments system integration"`
	Analytics  AnalyticsCmd  `cmd:"" help:"Generate an analytics integration"`
	Backup     BackupCmd     `cmd:"" help:"Create a compressed backup of the knowledge base"`
}

// NewCmd is the "new" subcommand.
type NewCmd struct {
	Title       string   `arg:"" help:"Document title"`
	Description string   `short:"d" help:"Short description for the frontmatter"`
	Author      string   `short:"a" help:"Document author"`
	Tags        []string `short:"t" help:"Tags (repeatable)"`
	Category    string   `short:"c" help:"Category subdirectory"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Debounce time.Duration `default:"5s" help:"Quiet period before committing"`
	LogFile  string        `help:"Also append logs to this file"`
}

// CommitCmd is the "commit" subcommand.
type CommitCmd struct {
	Message string        `short:"m" help:"Commit message (defaults to a timestamped message)"`
	Every   time.Duration `help:"Repeat on this interval instead of committing once"`
}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct{}

// TagsCmd is the "tags" subcommand.
type TagsCmd struct{}

// BuildCmd is the "build" subcommand.
type BuildCmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Port int `short:"p" default:"8000" help:"Port for the development server"`
}

// DeployCmd is the "deploy" subcommand.
type DeployCmd struct{}

// HooksCmd is the "hooks" subcommand.
type HooksCmd struct{}

// AuthCmd is the "auth" subcommand.
type AuthCmd struct {
	Type   string            `arg:"" help:"Authentication scheme (nginx, htaccess, oauth2-proxy, keycloak)"`
	Output string            `short:"o" default:"auth-config" help:"Output directory"`
	Values map[string]string `short:"s" help:"Placeholder values as key=value (repeatable)"`
	Users  []string          `short:"u" help:"user:password entries for the password file (repeatable)"`
}

// CommentsCmd is the "comments" subcommand.
type CommentsCmd struct {
	System string            `arg:"" help:"Comments system (disqus, utterances, giscus, isso)"`
	Output string            `short:"o" default:"comments-config" help:"Output directory"`
	Values map[string]string `short:"s" help:"Placeholder values as key=value (repeatable)"`
}

// AnalyticsCmd is the "analytics" subcommand.
type AnalyticsCmd struct {
	Provider string            `arg:"" help:"Analytics provider (google-analytics, plausible, matomo, fathom, umami, custom-js)"`
	Output   string            `short:"o" default:"analytics-config" help:"Output directory"`
	Values   map[string]string `short:"s" help:"Placeholder values as key=value (repeatable)"`
}

// BackupCmd is the "backup" subcommand.
type BackupCmd struct {
	Output string `short:"o" default:"backups" help:"Directory to write the archive into"`
}
