package kb

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// Document represents a knowledge-base article to be scaffolded into the
// docs tree. The fields become YAML frontmatter in the generated file.
type Document struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	Tags        []string  `json:"tags"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if Slugify(d.Title) == "" {
		return Errorf(EINVALID, "document title %q produces an empty file name", d.Title)
	}
	return nil
}

// Slug returns the URL-friendly file name stem derived from the title.
func (d *Document) Slug() string {
	return Slugify(d.Title)
}

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
)

// Slugify converts text to a lowercase, hyphen-separated slug suitable for
// file names and URL fragments.
func Slugify(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = slugStrip.ReplaceAllString(text, "")
	text = slugCollapse.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}

// Scaffolder creates new documents on disk.
type Scaffolder interface {
	// CreateDocument writes a markdown file for doc under the docs tree,
	// creating the category subdirectory if needed, and returns the path of
	// the created file. Returns ECONFLICT if the target already exists.
	CreateDocument(ctx context.Context, doc *Document) (string, error)
}
