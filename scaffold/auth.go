package scaffold

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/docsmith/kb"
	"golang.org/x/crypto/bcrypt"
)

// authConfig describes the files emitted for one authentication scheme.
// Template placeholders use the form YOUR_<KEY> and are substituted from
// the values supplied by the caller.
type authConfig struct {
	description string
	filename    string
	template    string
	help        string
}

var authConfigs = map[kb.AuthScheme]authConfig{
	kb.AuthNginx: {
		description: "Nginx basic authentication with htpasswd",
		filename:    "nginx-auth.conf",
		template: `# Nginx basic authentication for the documentation site.
# Include this file inside the server block that serves the site.

location / {
    auth_basic "YOUR_REALM";
    auth_basic_user_file YOUR_HTPASSWD_PATH;

    root YOUR_SITE_ROOT;
    index index.html;
    try_files $uri $uri/ =404;
}
`,
		help: `Nginx basic authentication setup
================================

1. Generate a password file with the users command, or with htpasswd:
     htpasswd -cB /etc/nginx/.htpasswd alice
2. Copy nginx-auth.conf into your site configuration and adjust the
   paths marked YOUR_*.
3. Reload nginx:
     nginx -t && systemctl reload nginx
`,
	},
	kb.AuthHtaccess: {
		description: "Apache .htaccess basic authentication",
		filename:    ".htaccess",
		template: `AuthType Basic
AuthName "YOUR_REALM"
AuthUserFile YOUR_HTPASSWD_PATH
Require valid-user
`,
		help: `Apache .htaccess setup
======================

1. Place the generated .htaccess in the site root.
2. Make sure AllowOverride AuthConfig is enabled for that directory.
3. Generate the password file with the users command, or with htpasswd:
     htpasswd -cB /etc/apache2/.htpasswd alice
`,
	},
	kb.AuthOAuth2Proxy: {
		description: "oauth2-proxy in front of the site",
		filename:    "oauth2-proxy.cfg",
		template: `# oauth2-proxy configuration for the documentation site.

http_address = "127.0.0.1:4180"
upstreams = ["http://127.0.0.1:8000"]

provider = "YOUR_PROVIDER"
client_id = "YOUR_CLIENT_ID"
client_secret = "YOUR_CLIENT_SECRET"
cookie_secret = "YOUR_COOKIE_SECRET"
redirect_url = "YOUR_REDIRECT_URL"

email_domains = ["YOUR_EMAIL_DOMAIN"]
`,
		help: `oauth2-proxy setup
==================

1. Register an OAuth application with your provider and fill in the
   client id and secret.
2. Generate a cookie secret:
     openssl rand -base64 32 | head -c 32
3. Run oauth2-proxy with the generated configuration:
     oauth2-proxy --config oauth2-proxy.cfg
4. Point your reverse proxy at the oauth2-proxy listen address.
`,
	},
	kb.AuthKeycloak: {
		description: "Keycloak OpenID Connect client",
		filename:    "keycloak.json",
		template: `{
  "realm": "YOUR_REALM",
  "auth-server-url": "YOUR_KEYCLOAK_URL",
  "ssl-required": "external",
  "resource": "YOUR_CLIENT_ID",
  "credentials": {
    "secret": "YOUR_CLIENT_SECRET"
  },
  "confidential-port": 0
}
`,
		help: `Keycloak setup
==============

1. Create a confidential client in your Keycloak realm and set its
   valid redirect URIs to your site URL.
2. Copy the client id and secret into keycloak.json.
3. Configure your gateway (for example the Keycloak gatekeeper or
   oauth2-proxy with the oidc provider) to use this client.
`,
	},
}

// AuthDescription returns a short description of the scheme, or "" if
// the scheme is unknown.
func AuthDescription(scheme kb.AuthScheme) string {
	return authConfigs[scheme].description
}

// AuthGenerator emits authentication configuration for a site.
type AuthGenerator struct {
	logger *slog.Logger
}

// NewAuthGenerator returns an AuthGenerator.
func NewAuthGenerator(logger *slog.Logger) *AuthGenerator {
	return &AuthGenerator{logger: logger}
}

// Generate writes the configuration and help files for scheme into
// outDir, substituting YOUR_<KEY> placeholders from values. It returns
// the paths of the files it wrote.
func (g *AuthGenerator) Generate(ctx context.Context, scheme kb.AuthScheme, outDir string, values kb.IntegrationConfig) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	cfg := authConfigs[scheme]

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	body := cfg.template
	for key, value := range values {
		body = strings.ReplaceAll(body, "YOUR_"+strings.ToUpper(key), value)
	}

	configPath := filepath.Join(outDir, cfg.filename)
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		return nil, err
	}

	helpPath := filepath.Join(outDir, fmt.Sprintf("%s-auth-help.txt", scheme))
	if err := os.WriteFile(helpPath, []byte(cfg.help), 0o644); err != nil {
		return nil, err
	}

	g.logger.Info("generated auth configuration", "scheme", scheme, "dir", outDir)
	return []string{configPath, helpPath}, nil
}

// WriteUsers writes an htpasswd file with bcrypt password hashes for the
// given "user:password" entries and returns its path. The scheme must
// support user files.
func (g *AuthGenerator) WriteUsers(ctx context.Context, scheme kb.AuthScheme, outDir string, users []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := scheme.Validate(); err != nil {
		return "", err
	}
	if !scheme.SupportsUsers() {
		return "", kb.Errorf(kb.EINVALID, "auth scheme %q does not use a password file", scheme)
	}
	if len(users) == 0 {
		return "", kb.Errorf(kb.EINVALID, "no users given")
	}

	var b strings.Builder
	for _, entry := range users {
		name, password, ok := strings.Cut(entry, ":")
		if !ok || name == "" || password == "" {
			return "", kb.Errorf(kb.EINVALID, "user entry %q must be in user:password form", entry)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s:%s\n", name, hash)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(outDir, ".htpasswd")
	// Password hashes are credentials, keep the file owner-only.
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return "", err
	}

	g.logger.Info("wrote password file", "path", path, "users", len(users))
	return path, nil
}
