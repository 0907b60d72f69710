package views

import (
	"encoding/json"
	"html"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/acquiretoscale/website/content"
)

// buildURL joins path segments onto a base URL.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	return u.String()
}

func esc(s string) string {
	return html.EscapeString(s)
}

// formatDate renders a timestamp the way the listing pages show it.
func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

func formatDateShort(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// OrganizationJsonLD produces the Schema.org Organization block for the site.
func OrganizationJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Organization",
		"name":        site.Name,
		"url":         site.URL,
		"email":       site.ContactEmail,
		"description": site.Description,
	}
	if site.NewsletterURL != "" {
		data["sameAs"] = []string{site.NewsletterURL}
	}
	return marshalJsonLD(data)
}

// WebsiteJsonLD produces the Schema.org WebSite block, including the
// SearchAction pointing at the site search endpoint.
func WebsiteJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        site.Name,
		"url":         site.URL,
		"description": site.Description,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  site.Name,
			"url":   site.URL,
		},
		"potentialAction": map[string]interface{}{
			"@type":       "SearchAction",
			"target":      map[string]string{"@type": "EntryPoint", "urlTemplate": site.URL + "/search?q={search_term_string}"},
			"query-input": "required name=search_term_string",
		},
	}
	return marshalJsonLD(data)
}

// ArticleJsonLD produces the Schema.org Article block for a blog post.
func ArticleJsonLD(site Site, post content.BlogPost) string {
	postURL := buildURL(site.URL, "blog", post.Slug)
	modified := post.Date
	if !post.Updated.IsZero() {
		modified = post.Updated
	}
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "Article",
		"headline":      post.Title,
		"description":   post.Description,
		"datePublished": post.Date.Format(time.RFC3339),
		"dateModified":  modified.Format(time.RFC3339),
		"url":           postURL,
		"author": map[string]string{
			"@type": "Organization",
			"name":  site.Name,
			"url":   site.URL,
		},
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  site.Name,
			"url":   site.URL,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	return marshalJsonLD(data)
}

func marshalJsonLD(data map[string]interface{}) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
