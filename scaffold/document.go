// Package scaffold writes new knowledge-base documents and the
// configuration files for auth, comments, and analytics integrations.
package scaffold

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/docsmith/kb"
	"gopkg.in/yaml.v3"
)

// frontmatter is the YAML header written to new documents. Timestamps are
// formatted rather than typed so the emitted header stays human-editable.
type frontmatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Created     string `yaml:"created"`
	Updated     string `yaml:"updated"`
	Author      string `yaml:"author"`
	Tags        string `yaml:"tags"`
}

const timestampLayout = "2006-01-02 15:04:05"

// Ensure DocumentService implements kb.Scaffolder at compile time.
var _ kb.Scaffolder = (*DocumentService)(nil)

// DocumentService creates documents under a docs directory.
type DocumentService struct {
	docsDir string
	logger  *slog.Logger
	now     func() time.Time
}

// NewDocumentService returns a DocumentService writing under docsDir.
func NewDocumentService(docsDir string, logger *slog.Logger) *DocumentService {
	return &DocumentService{
		docsDir: docsDir,
		logger:  logger,
		now:     time.Now,
	}
}

// NewDocumentServiceWithNow returns a DocumentService with a fixed clock.
func NewDocumentServiceWithNow(docsDir string, logger *slog.Logger, now func() time.Time) *DocumentService {
	return &DocumentService{docsDir: docsDir, logger: logger, now: now}
}

// CreateDocument writes a markdown file for doc, creating the category
// subdirectory if needed, and returns the path of the created file.
// Returns ECONFLICT if the target already exists and ENOTFOUND if the
// docs directory is missing.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *kb.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := doc.Validate(); err != nil {
		return "", err
	}

	if info, err := os.Stat(s.docsDir); err != nil || !info.IsDir() {
		return "", kb.Errorf(kb.ENOTFOUND, "docs directory %q does not exist", s.docsDir)
	}

	dir := s.docsDir
	if doc.Category != "" {
		dir = filepath.Join(s.docsDir, doc.Category)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	path := filepath.Join(dir, doc.Slug()+".md")
	if _, err := os.Stat(path); err == nil {
		return "", kb.Errorf(kb.ECONFLICT, "document %q already exists", path)
	}

	content, err := s.render(doc)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}

	s.logger.Info("created document", "path", path, "title", doc.Title)
	return path, nil
}

// render formats the document with YAML frontmatter and the body skeleton.
func (s *DocumentService) render(doc *kb.Document) (string, error) {
	created := doc.CreatedAt
	if created.IsZero() {
		created = s.now()
	}
	updated := doc.UpdatedAt
	if updated.IsZero() {
		updated = created
	}

	header, err := yaml.Marshal(frontmatter{
		Title:       doc.Title,
		Description: doc.Description,
		Created:     created.Format(timestampLayout),
		Updated:     updated.Format(timestampLayout),
		Author:      doc.Author,
		Tags:        strings.Join(doc.Tags, ", "),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString("# ")
	b.WriteString(doc.Title)
	b.WriteString("\n\n")
	if doc.Description != "" {
		b.WriteString(doc.Description)
		b.WriteString("\n\n")
	}
	b.WriteString("## Overview\n\n[Add content here]\n\n")
	b.WriteString("## Details\n\n[Add details here]\n\n")
	b.WriteString("## Related\n\n- [Add related links here]\n")
	return b.String(), nil
}
