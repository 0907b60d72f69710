// Package catalog holds the hand-maintained inventory of static pages and
// due-diligence asset types. The search index and the sitemap both walk it.
package catalog

import "github.com/acquiretoscale/website/search"

// AssetType is one due-diligence service line with its own detail page.
type AssetType struct {
	Slug        string
	Title       string
	Description string
	DetailIntro string
}

// AssetTypes lists every asset class the advisory covers, in display order.
var AssetTypes = []AssetType{
	{
		Slug:        "saas-apps",
		Title:       "Due Diligence for SaaS / Webapps",
		Description: "Specialized analysis for software-as-a-service and web application businesses, focusing on recurring revenue, churn, tech stack, and user acquisition metrics.",
		DetailIntro: "We evaluate SaaS and web app businesses with a focus on unit economics, retention, tech stack maintainability, and growth levers so you can invest with confidence.",
	},
	{
		Slug:        "content-websites",
		Title:       "Due Diligence for Content Websites",
		Description: "In-depth review of traffic, monetization, and content sustainability.",
		DetailIntro: "We assess content and affiliate sites for traffic quality, monetization mix, SEO risk, and content scalability so you know exactly what you're buying.",
	},
	{
		Slug:        "newsletters",
		Title:       "Due Diligence for Newsletters",
		Description: "Subscriber quality, growth levers, and revenue durability.",
		DetailIntro: "We analyze list health, open rates, revenue per subscriber, and growth channels to ensure your newsletter acquisition is built on solid foundations.",
	},
	{
		Slug:        "kdp-digital-products",
		Title:       "Due Diligence for KDP & Digital Products",
		Description: "Catalog performance, competition, and scalability.",
		DetailIntro: "We review catalog performance, market saturation, and scalability of KDP and other digital product businesses so you can spot winners and avoid duds.",
	},
	{
		Slug:        "youtube-channels",
		Title:       "Due Diligence for YouTube Channels",
		Description: "Audience, CPM, and content strategy for faceless and creator-led channels.",
		DetailIntro: "We evaluate audience quality, CPM sustainability, and content strategy for both faceless and creator-led YouTube channels so you know the real upside and risks.",
	},
}

// AssetBySlug returns the asset type for slug, or false when unknown.
func AssetBySlug(slug string) (AssetType, bool) {
	for _, a := range AssetTypes {
		if a.Slug == slug {
			return a, true
		}
	}
	return AssetType{}, false
}

// StaticPages returns the search catalog: every static page with the title
// and description its search hit shows, in listed order, followed by the
// asset-type detail pages.
func StaticPages() []search.Page {
	pages := []search.Page{
		{Href: "/", Title: "Home", Description: "Acquire To Scale – due diligence for small deals."},
		{Href: "/about", Title: "About", Description: "Learn about Acquire To Scale."},
		{Href: "/blog", Title: "Blog", Description: "Articles and insights on buying and scaling digital assets."},
		{Href: "/contact", Title: "Contact", Description: "Get in touch for due diligence and advisory."},
		{Href: "/due-diligence", Title: "Due Diligence", Description: "Operator-led due diligence by asset type, deal sourcing, and clarity calls."},
		{Href: "/who-its-for", Title: "Who It's For", Description: "Who we help – first-time buyers and serial acquirers."},
		{Href: "/seller-form", Title: "Sell Your Business", Description: "Submit your profitable digital business for review. We review a limited number of assets for acquisition or introduction to buyers."},
		{Href: "/clarity-call", Title: "Clarity Call", Description: "A high-level discussion for buyers or sellers. Surface-level review, positioning, and next steps. Book a call."},
		{Href: "/scaling", Title: "Scaling Advisory & Mentorship", Description: "Strategic guidance on what breaks, what to fix first, and where to focus for rapid post-acquisition growth."},
		{Href: "/global-operations", Title: "Global Operations & Infrastructure", Description: "Offshore incorporation & tax optimization, expert banking and payment processing for high-volume merchant accounts."},
		{Href: "/privacy", Title: "Privacy Policy", Description: "Privacy Policy for Acquire To Scale."},
		{Href: "/terms", Title: "Terms of Use", Description: "Terms of Use for Acquire To Scale."},
		{Href: "/modern-slavery-act", Title: "Modern Slavery Act", Description: "Modern Slavery Act statement."},
		{Href: "/cookie-policy", Title: "Cookie Policy", Description: "Cookie Policy for Acquire To Scale."},
		{Href: "/career", Title: "Career", Description: "Careers at Acquire To Scale."},
	}
	for _, a := range AssetTypes {
		pages = append(pages, search.Page{
			Href:        "/due-diligence/" + a.Slug,
			Title:       a.Title,
			Description: a.Description,
		})
	}
	return pages
}

// SitemapRoutes lists every static route that belongs in sitemap.xml,
// including pages that are not search candidates (forms, thank-you, search).
func SitemapRoutes() []string {
	routes := []string{
		"/",
		"/about",
		"/contact",
		"/buyer-form",
		"/sell-your-business",
		"/seller-form",
		"/clarity-call",
		"/investor-portal",
		"/scaling",
		"/global-operations",
		"/who-its-for",
		"/blog",
		"/search",
		"/privacy",
		"/terms",
		"/modern-slavery-act",
		"/cookie-policy",
		"/career",
		"/due-diligence",
	}
	for _, a := range AssetTypes {
		routes = append(routes, "/due-diligence/"+a.Slug)
	}
	return routes
}
