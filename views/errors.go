package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/acquiretoscale/website/settings"
)

// NotFound renders the 404 page inside the public chrome.
func NotFound(site Site, seo settings.Seo) templ.Component {
	meta := PageMeta{
		Title:       "Page Not Found",
		Description: "The page you are looking for does not exist.",
		Path:        "/404",
		NoIndex:     true,
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="content-page"><div class="container">`)
		b.WriteString(`<h1>Page not found</h1>`)
		b.WriteString(`<p class="lede">The page you are looking for does not exist or has moved.</p>`)
		b.WriteString(`<p><a class="button" href="/">Back to home</a> <a class="button ghost" href="/blog">Read the blog</a></p>`)
		b.WriteString(`</div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout(site, seo, meta, body)
}

// ServerError renders a plain 500 page without data lookups, so it stays
// renderable when backends are down.
func ServerError() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/><title>Something went wrong</title></head><body><main><h1>Something went wrong</h1><p>Please try again in a moment.</p><p><a href="/">Back to home</a></p></main></body></html>`)
		return err
	})
}
