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

var analyticsTemplates = map[kb.AnalyticsProvider]string{
	kb.AnalyticsGoogle: `<!-- Google Analytics -->
<script async src="https://www.googletagmanager.com/gtag/js?id={{measurement_id}}"></script>
<script>
  window.dataLayer = window.dataLayer || [];
  function gtag(){dataLayer.push(arguments);}
  gtag('js', new Date());
  gtag('config', '{{measurement_id}}');
</script>
`,
	kb.AnalyticsPlausible: `<!-- Plausible Analytics -->
<script defer data-domain="{{domain}}" src="https://plausible.io/js/script.js"></script>
`,
	kb.AnalyticsMatomo: `<!-- Matomo Analytics -->
<script>
  var _paq = window._paq = window._paq || [];
  _paq.push(['trackPageView']);
  _paq.push(['enableLinkTracking']);
  (function() {
    var u = '{{matomo_url}}/';
    _paq.push(['setTrackerUrl', u + 'matomo.php']);
    _paq.push(['setSiteId', '{{site_id}}']);
    var d = document, g = d.createElement('script'), s = d.getElementsByTagName('script')[0];
    g.async = true; g.src = u + 'matomo.js'; s.parentNode.insertBefore(g, s);
  })();
</script>
`,
	kb.AnalyticsFathom: `<!-- Fathom Analytics -->
<script src="https://cdn.usefathom.com/script.js" data-site="{{site_id}}" defer></script>
`,
	kb.AnalyticsUmami: `<!-- Umami Analytics -->
<script async src="{{umami_url}}/script.js" data-website-id="{{website_id}}"></script>
`,
	kb.AnalyticsCustomJS: `<!-- Custom analytics -->
<script async src="{{script_url}}"></script>
`,
}

const analyticsMkdocsSnippet = `# Merge the keys below into mkdocs.yml to load the analytics snippet.
extra_javascript:
  - js/analytics.js
`

// AnalyticsGenerator emits an analytics snippet for the site.
type AnalyticsGenerator struct {
	logger *slog.Logger
}

// NewAnalyticsGenerator returns an AnalyticsGenerator.
func NewAnalyticsGenerator(logger *slog.Logger) *AnalyticsGenerator {
	return &AnalyticsGenerator{logger: logger}
}

// Generate writes the tracking snippet, mkdocs configuration fragment,
// and instructions for provider into outDir. It returns the paths of
// the files it wrote.
func (g *AnalyticsGenerator) Generate(ctx context.Context, provider kb.AnalyticsProvider, outDir string, values kb.IntegrationConfig) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := provider.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	snippet := substitute(analyticsTemplates[provider], values)
	files := map[string]string{
		filepath.Join(outDir, "analytics.html"):              snippet,
		filepath.Join(outDir, "mkdocs-analytics-config.yml"): analyticsMkdocsSnippet,
		filepath.Join(outDir, "INSTRUCTIONS.md"):             analyticsInstructions(provider),
	}

	paths := make([]string, 0, len(files))
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	g.logger.Info("generated analytics integration", "provider", provider, "dir", outDir)
	return paths, nil
}

func analyticsInstructions(provider kb.AnalyticsProvider) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Enabling %s\n\n", provider)
	b.WriteString("1. Review analytics.html and fill in any placeholder still in\n")
	b.WriteString("   `{{key}}` form.\n")
	b.WriteString("2. Add the snippet to your page template, or save its script\n")
	b.WriteString("   body as docs/js/analytics.js and merge\n")
	b.WriteString("   mkdocs-analytics-config.yml into mkdocs.yml.\n")
	b.WriteString("3. Rebuild the site and verify hits arrive in the provider's\n")
	b.WriteString("   dashboard.\n")
	return b.String()
}
