// Package views renders every page of the site as hand-written templ
// components. Handlers pass a Site value and a per-request settings snapshot
// so nothing is hardcoded into the markup.
package views

// Site holds site-wide branding used by every template.
type Site struct {
	Name          string
	Tagline       string
	Description   string
	URL           string
	ContactEmail  string
	NewsletterURL string
}

// PageMeta carries per-page SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	Path        string // canonical path, e.g. "/blog/some-post"
	OGType      string // "website" or "article"
	NoIndex     bool
}
