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

// adminShell wraps admin pages in a minimal chrome without the public
// header, footer or tracking snippets.
func adminShell(title string, body func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		b.WriteString(`<meta name="robots" content="noindex, nofollow"/>`)
		b.WriteString(`<title>` + esc(title) + `</title>`)
		b.WriteString(`<link rel="stylesheet" href="/public/site.css"/>`)
		b.WriteString(`</head><body class="admin">`)
		body(&b)
		b.WriteString(`</body></html>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func csrfField(b *strings.Builder, token string) {
	b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(token) + `"/>`)
}

// AdminLogin renders the password prompt. errMsg is shown above the form
// when a previous attempt failed.
func AdminLogin(csrf, errMsg string) templ.Component {
	return adminShell("Admin Login", func(b *strings.Builder) {
		b.WriteString(`<main class="admin-login"><h1>Admin</h1>`)
		if errMsg != "" {
			b.WriteString(`<p class="error">` + esc(errMsg) + `</p>`)
		}
		b.WriteString(`<form action="/admin/login" method="POST">`)
		csrfField(b, csrf)
		b.WriteString(`<label>Password<input type="password" name="password" autofocus required/></label>`)
		b.WriteString(`<button type="submit">Sign in</button>`)
		b.WriteString(`</form></main>`)
	})
}

// AdminDashboard lists every post with edit and delete actions.
func AdminDashboard(posts []content.BlogPost, demoMode bool, csrf string) templ.Component {
	return adminShell("Dashboard", func(b *strings.Builder) {
		b.WriteString(`<main class="admin-dashboard">`)
		writeAdminBar(b, csrf)
		if demoMode {
			b.WriteString(`<p class="notice">Demo mode: no database configured. Saved posts are written to the content directory.</p>`)
		}
		b.WriteString(`<p><a class="button" href="/admin/posts/new">New post</a> <a class="button ghost" href="/admin/seo">SEO &amp; tracking</a></p>`)
		b.WriteString(`<table class="post-list"><thead><tr><th>Title</th><th>Date</th><th>Source</th><th></th></tr></thead><tbody>`)
		for _, p := range posts {
			b.WriteString(`<tr><td><a href="/admin/posts/` + esc(p.Slug) + `">` + esc(p.Title) + `</a></td>`)
			b.WriteString(`<td>` + esc(formatDateShort(p.EffectiveDate())) + `</td>`)
			b.WriteString(`<td>` + esc(string(p.Source)) + `</td>`)
			b.WriteString(`<td><form action="/admin/posts/` + esc(p.Slug) + `/delete" method="POST" onsubmit="return confirm('Delete this post?')">`)
			csrfField(b, csrf)
			b.WriteString(`<button type="submit" class="danger">Delete</button></form></td></tr>`)
		}
		b.WriteString(`</tbody></table></main>`)
	})
}

// AdminEditor renders the post editor for a new or existing post.
func AdminEditor(post content.BlogPost, isNew bool, csrf string) templ.Component {
	title := "Edit Post"
	action := "/admin/posts/" + post.Slug
	if isNew {
		title = "New Post"
		action = "/admin/posts"
	}
	return adminShell(title, func(b *strings.Builder) {
		b.WriteString(`<main class="admin-editor">`)
		writeAdminBar(b, csrf)
		b.WriteString(`<h1>` + esc(title) + `</h1>`)
		b.WriteString(`<form action="` + esc(action) + `" method="POST">`)
		csrfField(b, csrf)
		adminText(b, "title", "Title", post.Title, true)
		adminText(b, "slug", "Slug", post.Slug, false)
		adminText(b, "description", "Description", post.Description, false)
		adminText(b, "featuredImage", "Featured image URL", post.FeaturedImage, false)
		adminCheckbox(b, "featured", "Featured", post.Featured)
		adminCheckbox(b, "richText", "Body is HTML (rich text)", post.RichText)
		b.WriteString(`<label>Body<textarea name="content" rows="24">` + esc(post.Content) + `</textarea></label>`)
		b.WriteString(`<button type="submit">Save</button>`)
		b.WriteString(`</form></main>`)
	})
}

// AdminSeo renders the SEO and tracking-pixel settings form.
func AdminSeo(seo settings.Seo, csrf string, saved bool, saveErr string) templ.Component {
	return adminShell("SEO & Tracking", func(b *strings.Builder) {
		b.WriteString(`<main class="admin-seo">`)
		writeAdminBar(b, csrf)
		b.WriteString(`<h1>SEO &amp; tracking</h1>`)
		if saved {
			b.WriteString(`<p class="notice">Settings saved.</p>`)
		}
		if saveErr != "" {
			b.WriteString(`<p class="error">` + esc(saveErr) + `</p>`)
		}
		b.WriteString(`<form action="/admin/seo" method="POST">`)
		csrfField(b, csrf)
		b.WriteString(`<h2>Meta overrides</h2>`)
		adminText(b, "metaTitleOverride", "Homepage title override", seo.MetaTitleOverride, false)
		adminText(b, "metaDescriptionOverride", "Homepage description override", seo.MetaDescriptionOverride, false)
		b.WriteString(`<h2>Verification</h2>`)
		adminText(b, "googleSiteVerification", "Google site verification", seo.GoogleSiteVerification, false)
		adminText(b, "bingSiteVerification", "Bing site verification", seo.BingSiteVerification, false)
		b.WriteString(`<h2>Analytics &amp; pixels</h2>`)
		adminText(b, "ga4MeasurementId", "GA4 measurement ID", seo.GA4MeasurementID, false)
		adminText(b, "gtmContainerId", "Google Tag Manager container ID", seo.GTMContainerID, false)
		adminText(b, "facebookPixelId", "Facebook pixel ID", seo.FacebookPixelID, false)
		adminText(b, "tiktokPixelId", "TikTok pixel ID", seo.TikTokPixelID, false)
		adminText(b, "googleAdsConversionId", "Google Ads conversion ID", seo.GoogleAdsConversionID, false)
		adminText(b, "googleAdsConversionLabel", "Google Ads conversion label", seo.GoogleAdsConversionLabel, false)
		b.WriteString(`<h2>AI crawlers</h2>`)
		adminCheckbox(b, "aiOptimizationEnabled", "AI optimization enabled", seo.AIOptimizationEnabled)
		adminCheckbox(b, "allowAiTraining", "Allow AI training crawlers", seo.AllowAITraining)
		b.WriteString(`<button type="submit">Save settings</button>`)
		b.WriteString(`</form></main>`)
	})
}

func writeAdminBar(b *strings.Builder, csrf string) {
	b.WriteString(`<nav class="admin-bar"><a href="/admin">Dashboard</a> <a href="/" target="_blank">View site</a>`)
	b.WriteString(`<form action="/admin/logout" method="POST" class="inline">`)
	csrfField(b, csrf)
	b.WriteString(`<button type="submit" class="ghost">Log out</button></form></nav>`)
}

func adminText(b *strings.Builder, name, label, value string, required bool) {
	req := ""
	if required {
		req = ` required`
	}
	b.WriteString(`<label>` + esc(label) + `<input type="text" name="` + esc(name) + `" value="` + esc(value) + `"` + req + `/></label>`)
}

func adminCheckbox(b *strings.Builder, name, label string, checked bool) {
	c := ""
	if checked {
		c = ` checked`
	}
	b.WriteString(`<label class="checkbox"><input type="checkbox" name="` + esc(name) + `" value="` + strconv.FormatBool(true) + `"` + c + `/>` + esc(label) + `</label>`)
}
