package kb

import "context"

// DocEntry describes a scanned documentation page.
type DocEntry struct {
	// Path is the file path relative to the docs root.
	Path string `json:"path"`

	// Title is the first top-level heading, falling back to the frontmatter
	// title, falling back to "Untitled".
	Title string `json:"title"`

	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`
}

// IndexResult reports what an index generation pass produced.
type IndexResult struct {
	// Pages lists the generated files, relative to the docs root.
	Pages []string `json:"pages"`

	// Scanned is the number of documents examined.
	Scanned int `json:"scanned"`
}

// Indexer scans the docs tree and generates category and tag index pages.
type Indexer interface {
	// ScanDocs walks docsDir collecting frontmatter and titles from every
	// markdown file. Generated index pages (tags.md, categories/) are skipped.
	ScanDocs(ctx context.Context, docsDir string) ([]*DocEntry, error)

	// GenerateCategoryPages writes one page per category plus a categories
	// index under docsDir/categories.
	GenerateCategoryPages(ctx context.Context, docsDir string) (*IndexResult, error)

	// GenerateTagsPage writes docsDir/tags.md grouping documents by tag.
	GenerateTagsPage(ctx context.Context, docsDir string) (*IndexResult, error)
}
