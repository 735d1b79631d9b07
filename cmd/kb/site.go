package main

import (
	"fmt"

	"github.com/docsmith/kb"
	"github.com/docsmith/kb/mkdocs"
)

// requireKnowledgeBase fails when dir does not look like a MkDocs project.
func requireKnowledgeBase(deps *Dependencies) error {
	if mkdocs.IsKnowledgeBase(deps.Dir) {
		return nil
	}
	err := kb.Errorf(kb.ENOTFOUND, "%q is not a knowledge base (missing %s or docs directory)", deps.Dir, mkdocs.ConfigFile)
	fmt.Fprintf(deps.Stderr, "error: %s\n", kb.ErrorMessage(err))
	return err
}

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	if err := requireKnowledgeBase(deps); err != nil {
		return err
	}
	if err := deps.Site.Build(deps.Ctx); err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, "Site built.")
	return nil
}

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	if err := requireKnowledgeBase(deps); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Serving on http://0.0.0.0:%d. Press Ctrl+C to stop.\n", c.Port)
	return deps.Site.Serve(deps.Ctx, c.Port)
}

// Run executes the deploy command.
func (c *DeployCmd) Run(deps *Dependencies) error {
	if err := requireKnowledgeBase(deps); err != nil {
		return err
	}
	if err := deps.Site.Deploy(deps.Ctx); err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, "Site deployed.")
	return nil
}

// Run executes the hooks command.
func (c *HooksCmd) Run(deps *Dependencies) error {
	if err := deps.Hooks.InstallHooks(deps.Ctx, deps.Dir); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kb.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "Installed pre-commit and post-commit hooks.")
	return nil
}

// Run executes the backup command.
func (c *BackupCmd) Run(deps *Dependencies) error {
	path, err := deps.Archiver.CreateBackup(deps.Ctx, deps.Dir, c.Output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kb.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Backup written to %s\n", path)
	return nil
}
