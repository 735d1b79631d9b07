package kb

// IntegrationConfig holds the placeholder values substituted into an
// integration template, e.g. {"shortname": "mykb"} for Disqus.
type IntegrationConfig map[string]string

// AuthScheme identifies a supported authentication integration.
type AuthScheme string

// Supported authentication schemes.
const (
	AuthNginx       AuthScheme = "nginx"
	AuthHtaccess    AuthScheme = "htaccess"
	AuthOAuth2Proxy AuthScheme = "oauth2-proxy"
	AuthKeycloak    AuthScheme = "keycloak"
)

// AuthSchemes lists every supported authentication scheme.
func AuthSchemes() []AuthScheme {
	return []AuthScheme{AuthNginx, AuthHtaccess, AuthOAuth2Proxy, AuthKeycloak}
}

// Validate returns EINVALID if the scheme is not supported.
func (s AuthScheme) Validate() error {
	for _, known := range AuthSchemes() {
		if s == known {
			return nil
		}
	}
	return Errorf(EINVALID, "unknown authentication type %q", string(s))
}

// SupportsUsers reports whether the scheme consumes username:password pairs.
func (s AuthScheme) SupportsUsers() bool {
	return s == AuthNginx || s == AuthHtaccess
}

// CommentsSystem identifies a supported comments integration.
type CommentsSystem string

// Supported comments systems.
const (
	CommentsDisqus     CommentsSystem = "disqus"
	CommentsUtterances CommentsSystem = "utterances"
	CommentsGiscus     CommentsSystem = "giscus"
	CommentsIsso       CommentsSystem = "isso"
)

// CommentsSystems lists every supported comments system.
func CommentsSystems() []CommentsSystem {
	return []CommentsSystem{CommentsDisqus, CommentsUtterances, CommentsGiscus, CommentsIsso}
}

// Validate returns EINVALID if the system is not supported.
func (s CommentsSystem) Validate() error {
	for _, known := range CommentsSystems() {
		if s == known {
			return nil
		}
	}
	return Errorf(EINVALID, "unknown comment system %q", string(s))
}

// AnalyticsProvider identifies a supported analytics integration.
type AnalyticsProvider string

// Supported analytics providers.
const (
	AnalyticsGoogle    AnalyticsProvider = "google-analytics"
	AnalyticsPlausible AnalyticsProvider = "plausible"
	AnalyticsMatomo    AnalyticsProvider = "matomo"
	AnalyticsFathom    AnalyticsProvider = "fathom"
	AnalyticsUmami     AnalyticsProvider = "umami"
	AnalyticsCustomJS  AnalyticsProvider = "custom-js"
)

// AnalyticsProviders lists every supported analytics provider.
func AnalyticsProviders() []AnalyticsProvider {
	return []AnalyticsProvider{
		AnalyticsGoogle,
		AnalyticsPlausible,
		AnalyticsMatomo,
		AnalyticsFathom,
		AnalyticsUmami,
		AnalyticsCustomJS,
	}
}

// Validate returns EINVALID if the provider is not supported.
func (p AnalyticsProvider) Validate() error {
	for _, known := range AnalyticsProviders() {
		if p == known {
			return nil
		}
	}
	return Errorf(EINVALID, "unknown analytics system %q", string(p))
}
