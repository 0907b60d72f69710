package website

import (
	"github.com/acquiretoscale/website/settings"
	"github.com/acquiretoscale/website/views"
)

// Config holds all site configuration. Fields are populated from the
// environment via env.Parse in the entrypoint; zero values fall back to
// setDefaults.
type Config struct {
	Addr string `env:"ADDR"`

	SiteName      string `env:"SITE_NAME"`
	SiteURL       string `env:"SITE_URL"`
	Tagline       string `env:"SITE_TAGLINE"`
	Description   string `env:"SITE_DESCRIPTION"`
	ContactEmail  string `env:"CONTACT_EMAIL"`
	NewsletterURL string `env:"NEWSLETTER_URL"`

	// DatabaseURL is the Postgres connection string. When empty the site
	// runs in demo mode: posts come from files only, settings use
	// defaults, and leads land in a local SQLite database.
	DatabaseURL string `env:"DATABASE_URL"`

	ContentDir string `env:"CONTENT_DIR"`
	StaticDir  string `env:"STATIC_DIR"`

	AdminPassword string `env:"ADMIN_PASSWORD"`
	SessionSecret string `env:"SESSION_SECRET"`
	CookieSecure  bool   `env:"COOKIE_SECURE"`

	ResendAPIKey string `env:"RESEND_API_KEY"`
	ResendFrom   string `env:"RESEND_FROM"`
	LeadsToEmail string `env:"LEADS_TO_EMAIL"`

	DemoLeadsDBPath string `env:"DEMO_LEADS_DB_PATH"`

	GA4MeasurementID       string `env:"GA4_MEASUREMENT_ID"`
	GoogleSiteVerification string `env:"GOOGLE_SITE_VERIFICATION"`
	BingSiteVerification   string `env:"BING_SITE_VERIFICATION"`
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.SiteName == "" {
		c.SiteName = "Acquire To Scale"
	}
	if c.SiteURL == "" {
		c.SiteURL = "http://localhost:3000"
	}
	if c.Tagline == "" {
		c.Tagline = "Due diligence for small deals"
	}
	if c.Description == "" {
		c.Description = "Operator-led due diligence, deal sourcing, and scaling advisory for buyers of digital businesses."
	}
	if c.ContactEmail == "" {
		c.ContactEmail = "hello@acquiretoscale.com"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/blog"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.DemoLeadsDBPath == "" {
		c.DemoLeadsDBPath = "data/leads.db"
	}
	if c.ResendFrom == "" {
		c.ResendFrom = "Acquire To Scale <forms@acquiretoscale.com>"
	}
	if c.LeadsToEmail == "" {
		c.LeadsToEmail = c.ContactEmail
	}
}

// DemoMode reports whether the site runs without Postgres.
func (c *Config) DemoMode() bool {
	return c.DatabaseURL == ""
}

// Site builds the view-layer site identity from the config.
func (c *Config) Site() views.Site {
	return views.Site{
		Name:          c.SiteName,
		Tagline:       c.Tagline,
		Description:   c.Description,
		URL:           c.SiteURL,
		ContactEmail:  c.ContactEmail,
		NewsletterURL: c.NewsletterURL,
	}
}

// SeoDefaults builds the fallback SEO settings used when the settings
// table is unreachable or absent.
func (c *Config) SeoDefaults() settings.Seo {
	return settings.Seo{
		GA4MeasurementID:       c.GA4MeasurementID,
		GoogleSiteVerification: c.GoogleSiteVerification,
		BingSiteVerification:   c.BingSiteVerification,
		AIOptimizationEnabled:  true,
		AllowAITraining:        true,
	}
}
