package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/acquiretoscale/website/settings"
)

var assetClassOptions = []string{
	"Content Website",
	"SaaS / Webapp",
	"Newsletter",
	"KDP / Digital Products",
	"YouTube Channel",
	"Other",
}

// BuyerForm renders the buyer intake form. Submission posts as JSON-returning
// form data to /api/buyer-form.
func BuyerForm(site Site, seo settings.Seo) templ.Component {
	meta := PageMeta{
		Title:       "Buyer Form",
		Description: "Tell us about the deal you are evaluating and the help you need.",
		Path:        "/buyer-form",
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="lead-form"><div class="container">`)
		b.WriteString(`<h1>Work with us on your next acquisition</h1>`)
		b.WriteString(`<form action="/api/buyer-form" method="POST" data-thanks="/buyer-form/thank-you">`)
		textInput(&b, "fullName", "Full Name", true)
		emailInput(&b, "email", "Professional Email")
		textInput(&b, "linkedIn", "LinkedIn Profile", false)
		textArea(&b, "howCanWeHelp", "How can we help you today?")
		selectInput(&b, "primaryAsset", "Primary Asset Class", assetClassOptions)
		textInput(&b, "primaryAssetOther", "If other, which asset class?", false)
		textInput(&b, "targetBudget", "Target Budget", false)
		textInput(&b, "dealUrl", "Deal URL", false)
		textInput(&b, "howFound", "How did you find it?", false)
		textInput(&b, "stage", "What stage are you at?", false)
		textInput(&b, "serviceNeeded", "Service Needed", false)
		b.WriteString(`<button type="submit">Submit</button>`)
		b.WriteString(`</form></div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout(site, seo, meta, body)
}

// SellerForm renders the seller intake form posting to /api/seller-form.
func SellerForm(site Site, seo settings.Seo) templ.Component {
	meta := PageMeta{
		Title:       "Sell Your Business",
		Description: "Submit your profitable digital business for review. We review a limited number of assets for acquisition or introduction to buyers.",
		Path:        "/seller-form",
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="lead-form"><div class="container">`)
		b.WriteString(`<h1>Sell your business</h1>`)
		b.WriteString(`<p class="lede">We review a limited number of profitable digital assets for acquisition or introduction to vetted buyers.</p>`)
		b.WriteString(`<form action="/api/seller-form" method="POST" data-thanks="/seller-form/thank-you">`)
		textInput(&b, "fullName", "Full Name", true)
		emailInput(&b, "email", "Email")
		textInput(&b, "linkedIn", "LinkedIn Profile", false)
		textInput(&b, "assetUrl", "Digital asset URL", true)
		selectInput(&b, "primaryAsset", "Primary Asset Class", assetClassOptions)
		textInput(&b, "primaryAssetOther", "If other, which asset class?", false)
		textInput(&b, "projectAge", "Project age", false)
		textInput(&b, "avgMonthlyProfit", "Avg. Monthly Profit", false)
		textInput(&b, "planningToSell", "Planning to sell?", false)
		checkboxGroup(&b, "helpWith", "What do you need help with?", []string{
			"Valuation", "Finding a buyer", "Deal structuring", "Exit preparation",
		})
		textArea(&b, "additionalDetails", "Additional details")
		b.WriteString(`<button type="submit">Submit</button>`)
		b.WriteString(`</form></div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout(site, seo, meta, body)
}

// ThankYou renders the post-submission confirmation page.
func ThankYou(site Site, seo settings.Seo, path string) templ.Component {
	meta := PageMeta{
		Title:       "Thank You",
		Description: "We received your submission and will be in touch shortly.",
		Path:        path,
		NoIndex:     true,
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="content-page"><div class="container">`)
		b.WriteString(`<h1>Thank you</h1>`)
		b.WriteString(`<p class="lede">We received your submission and will be in touch shortly.</p>`)
		b.WriteString(`<p><a class="button ghost" href="/">Back to home</a></p>`)
		b.WriteString(`</div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout(site, seo, meta, body)
}

func textInput(b *strings.Builder, name, label string, required bool) {
	req := ""
	if required {
		req = ` required`
	}
	b.WriteString(`<label>` + esc(label) + `<input type="text" name="` + esc(name) + `"` + req + `/></label>`)
}

func emailInput(b *strings.Builder, name, label string) {
	b.WriteString(`<label>` + esc(label) + `<input type="email" name="` + esc(name) + `" required/></label>`)
}

func textArea(b *strings.Builder, name, label string) {
	b.WriteString(`<label>` + esc(label) + `<textarea name="` + esc(name) + `" rows="5"></textarea></label>`)
}

func selectInput(b *strings.Builder, name, label string, options []string) {
	b.WriteString(`<label>` + esc(label) + `<select name="` + esc(name) + `">`)
	for _, opt := range options {
		b.WriteString(`<option value="` + esc(opt) + `">` + esc(opt) + `</option>`)
	}
	b.WriteString(`</select></label>`)
}

func checkboxGroup(b *strings.Builder, name, label string, options []string) {
	b.WriteString(`<fieldset><legend>` + esc(label) + `</legend>`)
	for _, opt := range options {
		b.WriteString(`<label class="checkbox"><input type="checkbox" name="` + esc(name) + `" value="` + esc(opt) + `"/>` + esc(opt) + `</label>`)
	}
	b.WriteString(`</fieldset>`)
}
