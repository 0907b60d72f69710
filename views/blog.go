package views

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/acquiretoscale/website/content"
	"github.com/acquiretoscale/website/settings"
)

// BlogList renders the merged blog listing.
func BlogList(site Site, seo settings.Seo, posts []content.BlogPost) templ.Component {
	meta := PageMeta{
		Title:       "Blog",
		Description: "Practical insights on buying and scaling digital assets. Due diligence, valuation, offshore structures, and post-acquisition playbooks.",
		Path:        "/blog",
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="blog-index"><div class="container">`)
		b.WriteString(`<p class="eyebrow">Blog</p>`)
		b.WriteString(`<h1>Insights on acquiring and scaling digital assets</h1>`)
		b.WriteString(`<p class="lede">Practical due diligence, valuation, and post-acquisition playbooks. Operator perspective, not theory.</p>`)
		if len(posts) == 0 {
			b.WriteString(`<p class="empty">No posts yet. Check back soon for insights on acquiring and scaling digital assets.</p>`)
		} else {
			b.WriteString(`<ul class="post-list" role="list">`)
			for _, p := range posts {
				writePostCard(&b, p)
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`</div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout(site, seo, meta, body)
}

func writePostCard(b *strings.Builder, p content.BlogPost) {
	b.WriteString(`<li><article>`)
	b.WriteString(`<div class="post-meta">`)
	b.WriteString(`<time datetime="` + esc(p.Date.Format("2006-01-02")) + `">` + esc(formatDate(p.Date)) + `</time>`)
	b.WriteString(` &middot; <span>` + strconv.Itoa(p.ReadingTime) + ` min read</span>`)
	if !p.Updated.IsZero() {
		b.WriteString(` &middot; <span>Updated ` + esc(formatDateShort(p.Updated)) + `</span>`)
	}
	b.WriteString(`</div>`)
	b.WriteString(`<h2><a href="` + esc(p.Link()) + `">` + esc(p.Title) + `</a></h2>`)
	if p.Description != "" {
		b.WriteString(`<p>` + esc(p.Description) + `</p>`)
	}
	b.WriteString(`<a class="read-more" href="` + esc(p.Link()) + `">Read more &rarr;</a>`)
	b.WriteString(`</article></li>`)
}

// BlogPost renders a post detail page. File posts go through the markdown
// renderer; database posts through the rich-text sanitizer.
func BlogPost(site Site, seo settings.Seo, post content.BlogPost) templ.Component {
	meta := PageMeta{
		Title:       post.Title,
		Description: post.Description,
		Path:        "/blog/" + post.Slug,
		OGType:      "article",
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<article class="blog-post"><div class="container">`)
		b.WriteString(`<p class="eyebrow"><a href="/blog">&larr; All posts</a></p>`)
		b.WriteString(`<h1>` + esc(post.Title) + `</h1>`)
		b.WriteString(`<div class="post-meta">`)
		b.WriteString(`<time datetime="` + esc(post.Date.Format("2006-01-02")) + `">` + esc(formatDate(post.Date)) + `</time>`)
		b.WriteString(` &middot; <span>` + strconv.Itoa(post.ReadingTime) + ` min read</span>`)
		if !post.Updated.IsZero() {
			b.WriteString(` &middot; <span>Updated ` + esc(formatDate(post.Updated)) + `</span>`)
		}
		b.WriteString(`</div>`)
		if post.FeaturedImage != "" {
			b.WriteString(`<img class="featured-image" src="` + esc(post.FeaturedImage) + `" alt=""/>`)
		}
		b.WriteString(`<div class="post-body">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		var bodyCmp templ.Component
		if post.RichText {
			bodyCmp = RichText(post.Content)
		} else {
			bodyCmp = Markdown(post.Content)
		}
		if err := bodyCmp.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div></div></article>`)
		return err
	})
	return Layout(site, seo, meta, body, ArticleJsonLD(site, post))
}
