package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/acquiretoscale/website/catalog"
	"github.com/acquiretoscale/website/content"
	"github.com/acquiretoscale/website/settings"
)

// Home renders the landing page: hero, service lines, and the featured
// articles strip fed by the content aggregator.
func Home(site Site, seo settings.Seo, featured []content.BlogPost) templ.Component {
	meta := PageMeta{
		Title:       site.Name,
		Description: site.Description,
		Path:        "/",
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="hero"><div class="container">`)
		b.WriteString(`<h1>` + esc(site.Tagline) + `</h1>`)
		b.WriteString(`<p class="lede">` + esc(site.Description) + `</p>`)
		b.WriteString(`<div class="cta-row">`)
		b.WriteString(`<a class="button" href="/buyer-form">I&rsquo;m buying</a>`)
		b.WriteString(`<a class="button secondary" href="/seller-form">I&rsquo;m selling</a>`)
		b.WriteString(`<a class="button ghost" href="/clarity-call">Book a clarity call</a>`)
		b.WriteString(`</div></div></section>`)

		b.WriteString(`<section class="asset-types"><div class="container">`)
		b.WriteString(`<h2>Due diligence by asset type</h2><ul class="card-grid" role="list">`)
		for _, a := range catalog.AssetTypes {
			b.WriteString(`<li><a href="/due-diligence/` + esc(a.Slug) + `">`)
			b.WriteString(`<h3>` + esc(strings.TrimPrefix(a.Title, "Due Diligence for ")) + `</h3>`)
			b.WriteString(`<p>` + esc(a.Description) + `</p>`)
			b.WriteString(`</a></li>`)
		}
		b.WriteString(`</ul></div></section>`)

		writeFeaturedArticles(&b, featured)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout(site, seo, meta, body, WebsiteJsonLD(site))
}

// writeFeaturedArticles renders the homepage highlight list. Hidden entirely
// when neither source has a featured post.
func writeFeaturedArticles(b *strings.Builder, posts []content.BlogPost) {
	if len(posts) == 0 {
		return
	}
	b.WriteString(`<section class="featured-articles"><div class="container">`)
	b.WriteString(`<p class="eyebrow">Featured articles</p>`)
	b.WriteString(`<h2>Insights from the blog</h2>`)
	b.WriteString(`<ul class="card-grid" role="list">`)
	for _, p := range posts {
		b.WriteString(`<li><a href="` + esc(p.Link()) + `">`)
		if p.FeaturedImage != "" {
			b.WriteString(`<img src="` + esc(p.FeaturedImage) + `" alt="" loading="lazy"/>`)
		}
		b.WriteString(`<h3>` + esc(p.Title) + `</h3>`)
		if p.Description != "" {
			b.WriteString(`<p>` + esc(p.Description) + `</p>`)
		}
		b.WriteString(`<time datetime="` + esc(p.Date.Format("2006-01-02")) + `">` + esc(formatDateShort(p.Date)) + `</time>`)
		b.WriteString(`</a></li>`)
	}
	b.WriteString(`</ul></div></section>`)
}
