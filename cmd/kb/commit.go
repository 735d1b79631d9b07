package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/docsmith/kb"
	"github.com/docsmith/kb/autocommit"
)

// Run executes the commit command.
func (c *CommitCmd) Run(deps *Dependencies) error {
	pipeline := &autocommit.Pipeline{Repo: deps.Repo, Logger: deps.Logger}

	if c.Every > 0 {
		fmt.Fprintf(deps.Stdout, "Committing every %s. Press Ctrl+C to stop.\n", c.Every)
		if err := pipeline.RunEvery(deps.Ctx, c.Every); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}

	result, err := pipeline.CommitAndPush(deps.Ctx, c.Message)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kb.ErrorMessage(err))
		return err
	}

	if !result.Committed {
		fmt.Fprintln(deps.Stdout, "Nothing to commit.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Committed and pushed: %s\n", result.Message)
	return nil
}
