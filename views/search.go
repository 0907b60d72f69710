package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/acquiretoscale/website/search"
	"github.com/acquiretoscale/website/settings"
)

// SearchPage renders the search form and, when a query is present, its
// results. Queries below the minimum length get a prompt, not an error.
func SearchPage(site Site, seo settings.Seo, query string, results []search.Result) templ.Component {
	meta := PageMeta{
		Title:       "Search",
		Description: "Search the " + site.Name + " website.",
		Path:        "/search",
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="search-page"><div class="container">`)
		b.WriteString(`<h1>Search</h1>`)
		b.WriteString(`<form action="/search" method="GET" role="search">`)
		b.WriteString(`<label class="sr-only" for="search-input">Search website</label>`)
		b.WriteString(`<input id="search-input" type="search" name="q" value="` + esc(query) + `" placeholder="Search pages and blog&hellip;"/>`)
		b.WriteString(`<button type="submit">Search</button>`)
		b.WriteString(`</form>`)
		switch {
		case query == "":
			// Nothing typed yet; just the form.
		case len([]rune(query)) < search.MinQueryLen:
			b.WriteString(`<p class="hint">Type at least 2 characters to search.</p>`)
		case len(results) == 0:
			b.WriteString(`<p class="hint">No results for &ldquo;` + esc(query) + `&rdquo;. Try different words.</p>`)
		default:
			b.WriteString(`<ul class="search-results" role="list">`)
			for _, r := range results {
				b.WriteString(`<li><a href="` + esc(r.Href) + `">`)
				b.WriteString(`<span class="result-type">` + esc(string(r.Type)) + `</span>`)
				b.WriteString(`<h2>` + esc(r.Title) + `</h2>`)
				if r.Description != "" {
					b.WriteString(`<p>` + esc(r.Description) + `</p>`)
				}
				b.WriteString(`</a></li>`)
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`</div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout(site, seo, meta, body)
}
