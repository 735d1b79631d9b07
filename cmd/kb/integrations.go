package main

import (
	"fmt"

	"github.com/docsmith/kb"
)

// Run executes the auth command.
func (c *AuthCmd) Run(deps *Dependencies) error {
	scheme := kb.AuthScheme(c.Type)

	paths, err := deps.Auth.Generate(deps.Ctx, scheme, c.Output, kb.IntegrationConfig(c.Values))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kb.ErrorMessage(err))
		return err
	}

	if len(c.Users) > 0 {
		path, err := deps.Auth.WriteUsers(deps.Ctx, scheme, c.Output, c.Users)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", kb.ErrorMessage(err))
			return err
		}
		paths = append(paths, path)
	}

	printGenerated(deps, paths)
	return nil
}

// Run executes the comments command.
func (c *CommentsCmd) Run(deps *Dependencies) error {
	paths, err := deps.Comments.Generate(deps.Ctx, kb.CommentsSystem(c.System), c.Output, kb.IntegrationConfig(c.Values))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kb.ErrorMessage(err))
		return err
	}

	printGenerated(deps, paths)
	fmt.Fprintf(deps.Stdout, "See %s/INSTRUCTIONS.md to finish the setup.\n", c.Output)
	return nil
}

// Run executes the analytics command.
func (c *AnalyticsCmd) Run(deps *Dependencies) error {
	paths, err := deps.Analytics.Generate(deps.Ctx, kb.AnalyticsProvider(c.Provider), c.Output, kb.IntegrationConfig(c.Values))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kb.ErrorMessage(err))
		return err
	}

	printGenerated(deps, paths)
	fmt.Fprintf(deps.Stdout, "See %s/INSTRUCTIONS.md to finish the setup.\n", c.Output)
	return nil
}

func printGenerated(deps *Dependencies, paths []string) {
	fmt.Fprintf(deps.Stdout, "Generated %d files:\n", len(paths))
	for _, path := range paths {
		fmt.Fprintf(deps.Stdout, "  %s\n", path)
	}
}
