// Package kb provides a CLI toolkit for administering a markdown knowledge
// base kept in a git repository and rendered with MkDocs. It scaffolds
// documents with frontmatter, generates category and tag index pages, watches
// the docs tree and auto-commits settled changes, and emits configuration for
// auth, comments, and analytics integrations.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., git/, fsnotify/, goldmark/).
package kb
