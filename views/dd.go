package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/acquiretoscale/website/catalog"
	"github.com/acquiretoscale/website/settings"
)

// DueDiligenceIndex renders the overview of every asset type plus the deal
// sourcing and clarity call services.
func DueDiligenceIndex(site Site, seo settings.Seo) templ.Component {
	meta := PageMeta{
		Title:       "Due Diligence",
		Description: "Operator-led due diligence by asset type, deal sourcing, and clarity calls.",
		Path:        "/due-diligence",
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="content-page"><div class="container">`)
		b.WriteString(`<h1>Operator-led due diligence</h1>`)
		b.WriteString(`<p class="lede">Every engagement is run by operators who have bought, fixed, and scaled the same kind of asset you are evaluating.</p>`)
		b.WriteString(`<ul class="card-grid" role="list">`)
		for _, a := range catalog.AssetTypes {
			b.WriteString(`<li><a href="/due-diligence/` + esc(a.Slug) + `">`)
			b.WriteString(`<h2>` + esc(a.Title) + `</h2>`)
			b.WriteString(`<p>` + esc(a.Description) + `</p>`)
			b.WriteString(`</a></li>`)
		}
		b.WriteString(`</ul>`)
		b.WriteString(`<section id="deal-sourcing"><h2>Deal Sourcing &amp; Private Vault Access</h2>`)
		b.WriteString(`<p>We surface off-market deals matching your mandate and give vetted buyers access to our private pipeline.</p></section>`)
		b.WriteString(`<p><a class="button" href="/clarity-call">Book a clarity call</a></p>`)
		b.WriteString(`</div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout(site, seo, meta, body)
}

// DueDiligenceDetail renders one asset-type page.
func DueDiligenceDetail(site Site, seo settings.Seo, asset catalog.AssetType) templ.Component {
	meta := PageMeta{
		Title:       asset.Title,
		Description: asset.Description,
		Path:        "/due-diligence/" + asset.Slug,
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<article class="content-page"><div class="container">`)
		b.WriteString(`<h1>` + esc(asset.Title) + `</h1>`)
		b.WriteString(`<p class="lede">` + esc(asset.DetailIntro) + `</p>`)
		b.WriteString(`<p>Engagements start with a scoping call, followed by a fixed-fee review with a written findings report and a go/no-go recommendation.</p>`)
		b.WriteString(`<p><a class="button" href="/buyer-form">Start a review</a> <a class="button ghost" href="/clarity-call">Book a clarity call</a></p>`)
		b.WriteString(`</div></article>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout(site, seo, meta, body)
}
