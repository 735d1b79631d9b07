package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/docsmith/kb"
	"github.com/docsmith/kb/autocommit"
)

// Run executes the watch command.
func (c *WatchCmd) Run(deps *Dependencies) error {
	logger := deps.Logger
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(io.MultiWriter(deps.Stderr, f), nil))
	}

	events, err := deps.Watcher.Watch(deps.Ctx, deps.DocsDir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kb.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Watching %s (debounce %s). Press Ctrl+C to stop.\n", deps.DocsDir, c.Debounce)

	runner := &autocommit.Runner{
		Pipeline: &autocommit.Pipeline{Repo: deps.Repo, Logger: logger},
		Debounce: c.Debounce,
		Logger:   logger,
	}
	if err := runner.Run(deps.Ctx, events); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Fprintln(deps.Stdout, "Stopped watching.")
	return nil
}
