package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/acquiretoscale/website/settings"
)

// StaticPage is the copy for one of the fixed content pages.
type StaticPage struct {
	Path        string
	Title       string
	Description string
	Heading     string
	Intro       string
	Paragraphs  []string
	CTALabel    string
	CTAHref     string
}

// ContentPage renders a fixed content page from its copy block.
func ContentPage(site Site, seo settings.Seo, page StaticPage) templ.Component {
	meta := PageMeta{
		Title:       page.Title,
		Description: page.Description,
		Path:        page.Path,
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		heading := page.Heading
		if heading == "" {
			heading = page.Title
		}
		b.WriteString(`<article class="content-page"><div class="container">`)
		b.WriteString(`<h1>` + esc(heading) + `</h1>`)
		if page.Intro != "" {
			b.WriteString(`<p class="lede">` + esc(page.Intro) + `</p>`)
		}
		for _, para := range page.Paragraphs {
			b.WriteString(`<p>` + esc(para) + `</p>`)
		}
		if page.CTAHref != "" {
			b.WriteString(`<p><a class="button" href="` + esc(page.CTAHref) + `">` + esc(page.CTALabel) + `</a></p>`)
		}
		b.WriteString(`</div></article>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout(site, seo, meta, body)
}
