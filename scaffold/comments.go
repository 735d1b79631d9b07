package scaffold

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/docsmith/kb"
)

// substitute replaces {{key}} placeholders in tpl with their values.
func substitute(tpl string, values kb.IntegrationConfig) string {
	for key, value := range values {
		tpl = strings.ReplaceAll(tpl, "{{"+key+"}}", value)
	}
	return tpl
}

var commentsTemplates = map[kb.CommentsSystem]string{
	kb.CommentsDisqus: `<div id="disqus_thread"></div>
<script>
  var disqus_config = function () {
    this.page.url = window.location.href;
    this.page.identifier = window.location.pathname;
  };
  (function() {
    var d = document, s = d.createElement('script');
    s.src = 'https://{{shortname}}.disqus.com/embed.js';
    s.setAttribute('data-timestamp', +new Date());
    (d.head || d.body).appendChild(s);
  })();
</script>
`,
	kb.CommentsUtterances: `<script src="https://utteranc.es/client.js"
        repo="{{repo}}"
        issue-term="pathname"
        theme="{{theme}}"
        crossorigin="anonymous"
        async>
</script>
`,
	kb.CommentsGiscus: `<script src="https://giscus.app/client.js"
        data-repo="{{repo}}"
        data-repo-id="{{repo_id}}"
        data-category="{{category}}"
        data-category-id="{{category_id}}"
        data-mapping="pathname"
        data-reactions-enabled="1"
        data-theme="{{theme}}"
        crossorigin="anonymous"
        async>
</script>
`,
	kb.CommentsIsso: `<script data-isso="{{isso_url}}" src="{{isso_url}}/js/embed.min.js"></script>
<section id="isso-thread"></section>
`,
}

const commentsLoaderJS = `// Injects the comments widget at the bottom of each documentation page.
document.addEventListener('DOMContentLoaded', function () {
  var article = document.querySelector('article') || document.body;
  var container = document.createElement('div');
  container.id = 'kb-comments';
  article.appendChild(container);
  var tpl = document.getElementById('kb-comments-template');
  if (tpl) {
    container.innerHTML = tpl.innerHTML;
    Array.from(container.querySelectorAll('script')).forEach(function (old) {
      var s = document.createElement('script');
      Array.from(old.attributes).forEach(function (a) {
        s.setAttribute(a.name, a.value);
      });
      s.textContent = old.textContent;
      old.parentNode.replaceChild(s, old);
    });
  }
});
`

const commentsCSS = `#kb-comments {
  margin-top: 2rem;
  padding-top: 1rem;
  border-top: 1px solid rgba(0, 0, 0, 0.12);
}
`

const commentsMkdocsSnippet = `# Merge the keys below into mkdocs.yml to enable comments.
extra_javascript:
  - js/comments-loader.js
extra_css:
  - css/comments.css
`

// CommentsGenerator emits the files needed to embed a comments system.
type CommentsGenerator struct {
	logger *slog.Logger
}

// NewCommentsGenerator returns a CommentsGenerator.
func NewCommentsGenerator(logger *slog.Logger) *CommentsGenerator {
	return &CommentsGenerator{logger: logger}
}

// Generate writes the embed snippet, loader script, stylesheet, mkdocs
// configuration fragment, and instructions for system into outDir. It
// returns the paths of the files it wrote.
func (g *CommentsGenerator) Generate(ctx context.Context, system kb.CommentsSystem, outDir string, values kb.IntegrationConfig) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := system.Validate(); err != nil {
		return nil, err
	}

	jsDir := filepath.Join(outDir, "js")
	cssDir := filepath.Join(outDir, "css")
	for _, dir := range []string{outDir, jsDir, cssDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	snippet := substitute(commentsTemplates[system], values)
	files := map[string]string{
		filepath.Join(outDir, "comments.html"):              snippet,
		filepath.Join(jsDir, "comments-loader.js"):          commentsLoaderJS,
		filepath.Join(cssDir, "comments.css"):               commentsCSS,
		filepath.Join(outDir, "mkdocs-comments-config.yml"): commentsMkdocsSnippet,
		filepath.Join(outDir, "INSTRUCTIONS.md"):            commentsInstructions(system),
	}

	paths := make([]string, 0, len(files))
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	g.logger.Info("generated comments integration", "system", system, "dir", outDir)
	return paths, nil
}

func commentsInstructions(system kb.CommentsSystem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Enabling %s comments\n\n", system)
	b.WriteString("1. Review comments.html and fill in any placeholder still in\n")
	b.WriteString("   `{{key}}` form.\n")
	b.WriteString("2. Copy js/comments-loader.js and css/comments.css into your\n")
	b.WriteString("   docs directory.\n")
	b.WriteString("3. Merge mkdocs-comments-config.yml into mkdocs.yml.\n")
	b.WriteString("4. Add the contents of comments.html to your page template,\n")
	b.WriteString("   wrapped in `<template id=\"kb-comments-template\">`.\n")
	b.WriteString("5. Rebuild the site.\n")
	return b.String()
}
