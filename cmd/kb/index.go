package main

import (
	"fmt"

	"github.com/docsmith/kb"
)

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	result, err := deps.Indexer.GenerateCategoryPages(deps.Ctx, deps.DocsDir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kb.ErrorMessage(err))
		return err
	}
	return printIndexResult(deps, result)
}

// Run executes the tags command.
func (c *TagsCmd) Run(deps *Dependencies) error {
	result, err := deps.Indexer.GenerateTagsPage(deps.Ctx, deps.DocsDir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kb.ErrorMessage(err))
		return err
	}
	return printIndexResult(deps, result)
}

func printIndexResult(deps *Dependencies, result *kb.IndexResult) error {
	if len(result.Pages) == 0 {
		fmt.Fprintf(deps.Stdout, "Scanned %d documents, nothing to generate.\n", result.Scanned)
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Scanned %d documents, wrote %d pages:\n", result.Scanned, len(result.Pages))
	for _, page := range result.Pages {
		fmt.Fprintf(deps.Stdout, "  %s\n", page)
	}
	return nil
}
