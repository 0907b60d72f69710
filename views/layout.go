package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/acquiretoscale/website/settings"
)

// navLink is one header navigation entry.
type navLink struct {
	Href  string
	Label string
}

var headerNav = []navLink{
	{Href: "/", Label: "Home"},
	{Href: "/due-diligence", Label: "For Buyers"},
	{Href: "/seller-form", Label: "For Sellers"},
	{Href: "/scaling", Label: "For Scalers"},
	{Href: "/about", Label: "About"},
	{Href: "/blog", Label: "Blog"},
}

var footerNav = []navLink{
	{Href: "/privacy", Label: "Privacy Policy"},
	{Href: "/terms", Label: "Terms of Use"},
	{Href: "/modern-slavery-act", Label: "Modern Slavery Act"},
	{Href: "/cookie-policy", Label: "Cookie Policy"},
	{Href: "/career", Label: "Career"},
	{Href: "/contact", Label: "Contact"},
}

// Layout wraps body in the site chrome: head with SEO metadata and tracking
// snippets from the per-request settings snapshot, header navigation, and the
// footer with the site search form.
func Layout(site Site, seo settings.Seo, meta PageMeta, body templ.Component, extraJsonLD ...string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeHead(&b, site, seo, meta, extraJsonLD)
		writeHeader(&b, site)
		b.WriteString(`<main id="main">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		var f strings.Builder
		f.WriteString(`</main>`)
		writeFooter(&f, site)
		f.WriteString(`</body></html>`)
		_, err := io.WriteString(w, f.String())
		return err
	})
}

func writeHead(b *strings.Builder, site Site, seo settings.Seo, meta PageMeta, extraJsonLD []string) {
	title := meta.Title
	if seo.MetaTitleOverride != "" && meta.Path == "/" {
		title = seo.MetaTitleOverride
	}
	if title == "" {
		title = site.Name
	} else if title != site.Name {
		title += " | " + site.Name
	}
	description := meta.Description
	if seo.MetaDescriptionOverride != "" && meta.Path == "/" {
		description = seo.MetaDescriptionOverride
	}
	canonical := buildURL(site.URL, meta.Path)
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}

	b.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	b.WriteString(`<meta charset="utf-8"/>`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
	b.WriteString(`<title>` + esc(title) + `</title>`)
	if description != "" {
		b.WriteString(`<meta name="description" content="` + esc(description) + `"/>`)
	}
	if meta.NoIndex {
		b.WriteString(`<meta name="robots" content="noindex"/>`)
	}
	b.WriteString(`<link rel="canonical" href="` + esc(canonical) + `"/>`)
	b.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml"/>`)
	b.WriteString(`<link rel="stylesheet" href="/public/site.css"/>`)
	b.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + esc(site.Name) + `" href="/feed.xml"/>`)

	// OpenGraph / Twitter
	b.WriteString(`<meta property="og:title" content="` + esc(title) + `"/>`)
	if description != "" {
		b.WriteString(`<meta property="og:description" content="` + esc(description) + `"/>`)
	}
	b.WriteString(`<meta property="og:type" content="` + esc(ogType) + `"/>`)
	b.WriteString(`<meta property="og:url" content="` + esc(canonical) + `"/>`)
	b.WriteString(`<meta property="og:site_name" content="` + esc(site.Name) + `"/>`)
	b.WriteString(`<meta name="twitter:card" content="summary_large_image"/>`)

	// Search-engine verification from the settings snapshot.
	if seo.GoogleSiteVerification != "" {
		b.WriteString(`<meta name="google-site-verification" content="` + esc(seo.GoogleSiteVerification) + `"/>`)
	}
	if seo.BingSiteVerification != "" {
		b.WriteString(`<meta name="msvalidate.01" content="` + esc(seo.BingSiteVerification) + `"/>`)
	}

	writeTrackingSnippets(b, seo)

	b.WriteString(`<script type="application/ld+json">` + OrganizationJsonLD(site) + `</script>`)
	for _, ld := range extraJsonLD {
		b.WriteString(`<script type="application/ld+json">` + ld + `</script>`)
	}
	b.WriteString(`</head><body>`)
}

// writeTrackingSnippets injects the configured tracking pixels. Each snippet
// only appears when its ID is set in the settings row.
func writeTrackingSnippets(b *strings.Builder, seo settings.Seo) {
	if id := seo.GA4MeasurementID; id != "" {
		b.WriteString(`<script async src="https://www.googletagmanager.com/gtag/js?id=` + esc(id) + `"></script>`)
		b.WriteString(`<script>window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config','` + esc(id) + `');`)
		if seo.GoogleAdsConversionID != "" {
			b.WriteString(`gtag('config','` + esc(seo.GoogleAdsConversionID) + `');`)
		}
		b.WriteString(`</script>`)
	}
	if id := seo.GTMContainerID; id != "" {
		b.WriteString(`<script>(function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({'gtm.start':new Date().getTime(),event:'gtm.js'});var f=d.getElementsByTagName(s)[0],j=d.createElement(s);j.async=true;j.src='https://www.googletagmanager.com/gtm.js?id='+i;f.parentNode.insertBefore(j,f);})(window,document,'script','dataLayer','` + esc(id) + `');</script>`)
	}
	if id := seo.FacebookPixelID; id != "" {
		b.WriteString(`<script>!function(f,b,e,v,n,t,s){if(f.fbq)return;n=f.fbq=function(){n.callMethod?n.callMethod.apply(n,arguments):n.queue.push(arguments)};if(!f._fbq)f._fbq=n;n.push=n;n.loaded=!0;n.version='2.0';n.queue=[];t=b.createElement(e);t.async=!0;t.src=v;s=b.getElementsByTagName(e)[0];s.parentNode.insertBefore(t,s)}(window,document,'script','https://connect.facebook.net/en_US/fbevents.js');fbq('init','` + esc(id) + `');fbq('track','PageView');</script>`)
	}
	if id := seo.TikTokPixelID; id != "" {
		b.WriteString(`<script>!function(w,d,t){w.TiktokAnalyticsObject=t;var ttq=w[t]=w[t]||[];ttq.load=function(e){var i="https://analytics.tiktok.com/i18n/pixel/events.js";ttq._i=ttq._i||{};ttq._i[e]=[];ttq._t=ttq._t||{};ttq._t[e]=+new Date;ttq._o=ttq._o||{};var o=document.createElement("script");o.type="text/javascript";o.async=!0;o.src=i+"?sdkid="+e+"&lib="+t;var a=document.getElementsByTagName("script")[0];a.parentNode.insertBefore(o,a)};ttq.load('` + esc(id) + `');ttq.page();}(window,document,'ttq');</script>`)
	}
}

func writeHeader(b *strings.Builder, site Site) {
	b.WriteString(`<header class="site-header"><div class="container">`)
	b.WriteString(`<a class="site-logo" href="/">` + esc(site.Name) + `</a>`)
	b.WriteString(`<nav aria-label="Main"><ul>`)
	for _, link := range headerNav {
		b.WriteString(`<li><a href="` + esc(link.Href) + `">` + esc(link.Label) + `</a></li>`)
	}
	b.WriteString(`</ul></nav>`)
	b.WriteString(`</div></header>`)
}

func writeFooter(b *strings.Builder, site Site) {
	b.WriteString(`<footer class="site-footer"><div class="container">`)
	b.WriteString(`<form action="/search" method="GET" role="search">`)
	b.WriteString(`<label class="sr-only" for="footer-search">Search website</label>`)
	b.WriteString(`<input id="footer-search" type="search" name="q" placeholder="Search pages and blog&hellip;"/>`)
	b.WriteString(`<button type="submit">Search</button>`)
	b.WriteString(`</form>`)
	b.WriteString(`<nav aria-label="Footer"><ul>`)
	for _, link := range footerNav {
		b.WriteString(`<li><a href="` + esc(link.Href) + `">` + esc(link.Label) + `</a></li>`)
	}
	b.WriteString(`</ul></nav>`)
	b.WriteString(`<p class="tagline">` + esc(site.Tagline) + `</p>`)
	if site.NewsletterURL != "" {
		b.WriteString(`<p><a href="` + esc(site.NewsletterURL) + `" rel="noopener noreferrer" target="_blank">Newsletter</a></p>`)
	}
	b.WriteString(`<p>&copy; ` + esc(site.Name) + ` &middot; <a href="mailto:` + esc(site.ContactEmail) + `">` + esc(site.ContactEmail) + `</a></p>`)
	b.WriteString(`</div></footer>`)
}
