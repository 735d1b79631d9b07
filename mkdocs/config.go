package mkdocs

import (
	"os"
	"path/filepath"

	"github.com/docsmith/kb"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the MkDocs configuration file name expected at the
// project root.
const ConfigFile = "mkdocs.yml"

// Config holds the subset of mkdocs.yml the toolkit reads.
type Config struct {
	SiteName        string   `yaml:"site_name"`
	SiteDescription string   `yaml:"site_description,omitempty"`
	SiteURL         string   `yaml:"site_url,omitempty"`
	RepoURL         string   `yaml:"repo_url,omitempty"`
	DocsDir         string   `yaml:"docs_dir,omitempty"`
	Theme           Theme    `yaml:"theme,omitempty"`
	ExtraCSS        []string `yaml:"extra_css,omitempty"`
	ExtraJavascript []string `yaml:"extra_javascript,omitempty"`
}

// Theme is the theme block of mkdocs.yml.
type Theme struct {
	Name string `yaml:"name"`
}

// DocsPath returns the docs directory for the project, honoring a
// docs_dir override in the configuration.
func (c *Config) DocsPath(projectDir string) string {
	dir := c.DocsDir
	if dir == "" {
		dir = "docs"
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(projectDir, dir)
}

// LoadConfig reads mkdocs.yml from projectDir.
func LoadConfig(projectDir string) (*Config, error) {
	raw, err := os.ReadFile(filepath.Join(projectDir, ConfigFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, kb.Errorf(kb.ENOTFOUND, "no %s in %q", ConfigFile, projectDir)
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, kb.Errorf(kb.EINVALID, "parsing %s: %s", ConfigFile, err)
	}
	return &cfg, nil
}

// IsKnowledgeBase reports whether dir looks like a MkDocs project, that
// is, it contains mkdocs.yml and a docs directory.
func IsKnowledgeBase(dir string) bool {
	if _, err := os.Stat(filepath.Join(dir, ConfigFile)); err != nil {
		return false
	}
	cfg, err := LoadConfig(dir)
	if err != nil {
		return false
	}
	info, err := os.Stat(cfg.DocsPath(dir))
	return err == nil && info.IsDir()
}
