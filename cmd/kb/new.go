package main

import (
	"fmt"

	"github.com/docsmith/kb"
)

// Run executes the new command.
func (c *NewCmd) Run(deps *Dependencies) error {
	doc := &kb.Document{
		Title:       c.Title,
		Description: c.Description,
		Author:      c.Author,
		Tags:        c.Tags,
		Category:    c.Category,
	}

	path, err := deps.Scaffolder.CreateDocument(deps.Ctx, doc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kb.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created %s\n", path)
	return nil
}
