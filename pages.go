package website

import "github.com/acquiretoscale/website/views"

// staticPages holds the copy for every plain content page. Each entry
// becomes a GET route and renders through views.ContentPage.
var staticPages = []views.StaticPage{
	{
		Path:        "/about",
		Title:       "About",
		Description: "Learn about Acquire To Scale.",
		Heading:     "About Acquire To Scale",
		Intro:       "We are operators first, advisors second.",
		Paragraphs: []string{
			"Acquire To Scale was built by people who have bought, run, and sold digital businesses. We know what the listing never tells you, and we know where sellers hide the bodies.",
			"Our due diligence engagements combine financial review, technical inspection, and market analysis into one verdict: buy, renegotiate, or walk away.",
			"Beyond diligence, we help new owners through their first hundred days with scaling advisory and operational mentorship.",
		},
		CTALabel: "Work with us",
		CTAHref:  "/buyer-form",
	},
	{
		Path:        "/contact",
		Title:       "Contact",
		Description: "Get in touch for due diligence and advisory.",
		Heading:     "Contact us",
		Intro:       "Questions about an engagement, a deal, or something else?",
		Paragraphs: []string{
			"For due diligence enquiries, the fastest route is the buyer form. For everything else, email us and we will respond within one business day.",
		},
		CTALabel: "Start with the buyer form",
		CTAHref:  "/buyer-form",
	},
	{
		Path:        "/who-its-for",
		Title:       "Who It's For",
		Description: "Who we help – first-time buyers and serial acquirers.",
		Heading:     "Who we help",
		Intro:       "From first acquisition to portfolio building.",
		Paragraphs: []string{
			"First-time buyers use us as the experienced partner they don't have yet: we translate listings, stress-test seller claims, and flag the risks that only show up after closing.",
			"Serial acquirers use us as scalable deal capacity: a repeatable diligence process so they can evaluate more deals without growing an in-house team.",
			"Sellers use us to prepare: an honest pre-sale review of what a sophisticated buyer will find, and what to fix before going to market.",
		},
		CTALabel: "Tell us about your deal",
		CTAHref:  "/buyer-form",
	},
	{
		Path:        "/clarity-call",
		Title:       "Clarity Call",
		Description: "A high-level discussion for buyers or sellers. Surface-level review, positioning, and next steps. Book a call.",
		Heading:     "Clarity call",
		Intro:       "One hour. Your deal, our experience, a clear next step.",
		Paragraphs: []string{
			"A clarity call is a high-level working session for buyers or sellers: we review the asset together, discuss positioning, and map out next steps.",
			"It is not full due diligence. It is the fastest way to find out whether a deal deserves full due diligence.",
		},
		CTALabel: "Book a call",
		CTAHref:  "/buyer-form",
	},
	{
		Path:        "/scaling",
		Title:       "Scaling Advisory & Mentorship",
		Description: "Strategic guidance on what breaks, what to fix first, and where to focus for rapid post-acquisition growth.",
		Heading:     "Scaling advisory & mentorship",
		Intro:       "The first hundred days decide the next three years.",
		Paragraphs: []string{
			"Most acquisitions don't fail at closing, they fail in the transition. We work with new owners on what breaks first, what to fix first, and where to focus for growth.",
			"Engagements are structured as recurring advisory sessions with asynchronous support between them, scoped to your asset class and your operating experience.",
		},
		CTALabel: "Ask about advisory",
		CTAHref:  "/contact",
	},
	{
		Path:        "/global-operations",
		Title:       "Global Operations & Infrastructure",
		Description: "Offshore incorporation & tax optimization, expert banking and payment processing for high-volume merchant accounts.",
		Heading:     "Global operations & infrastructure",
		Intro:       "Structure, banking, and payments for international operators.",
		Paragraphs: []string{
			"We connect buyers with vetted partners for offshore incorporation and tax optimization, so your holding structure matches where you live and where you operate.",
			"For high-volume businesses we arrange banking and payment processing relationships, including merchant accounts that survive the volumes marketplaces flag.",
		},
		CTALabel: "Discuss your setup",
		CTAHref:  "/contact",
	},
	{
		Path:        "/investor-portal",
		Title:       "Investor Portal",
		Description: "Deal flow and portfolio updates for investors.",
		Heading:     "Investor portal",
		Intro:       "Curated deal flow for committed capital.",
		Paragraphs: []string{
			"Investors working with us receive vetted deal flow matched to their mandate, plus diligence summaries for every asset we pass along.",
			"Access is by introduction. If you deploy capital into digital assets and want in, get in touch.",
		},
		CTALabel: "Request access",
		CTAHref:  "/contact",
	},
	{
		Path:        "/privacy",
		Title:       "Privacy Policy",
		Description: "Privacy Policy for Acquire To Scale.",
		Heading:     "Privacy policy",
		Paragraphs: []string{
			"We collect only the information you submit through our forms: your name, contact details, and what you tell us about your deal. We use it to respond to your enquiry and deliver the services you ask for.",
			"We do not sell personal data. Form submissions are stored in our systems and relayed to our team by email. Analytics and advertising pixels run only as described in the cookie policy.",
			"You may request a copy or deletion of your data at any time by emailing us.",
		},
	},
	{
		Path:        "/terms",
		Title:       "Terms of Use",
		Description: "Terms of Use for Acquire To Scale.",
		Heading:     "Terms of use",
		Paragraphs: []string{
			"The content of this site is provided for general information and does not constitute financial, legal, or investment advice. Due diligence reports are prepared for the named client and engagement only.",
			"We make no warranty that any business evaluated will perform as projected. Acquisition decisions remain yours.",
			"By using this site you agree not to scrape, republish, or resell its content without permission.",
		},
	},
	{
		Path:        "/modern-slavery-act",
		Title:       "Modern Slavery Act",
		Description: "Modern Slavery Act statement.",
		Heading:     "Modern Slavery Act statement",
		Paragraphs: []string{
			"Acquire To Scale is committed to preventing slavery and human trafficking in its operations and supply chain.",
			"Our supply chain consists primarily of professional services and software vendors. We assess new suppliers for compliance with applicable anti-slavery legislation and expect the same standards from our partners.",
		},
	},
	{
		Path:        "/cookie-policy",
		Title:       "Cookie Policy",
		Description: "Cookie Policy for Acquire To Scale.",
		Heading:     "Cookie policy",
		Paragraphs: []string{
			"This site uses a session cookie for admin authentication and a CSRF cookie for form protection. Both are strictly necessary and carry no tracking data.",
			"When analytics or advertising integrations are enabled, Google Analytics, Google Tag Manager, Facebook, and TikTok may set their own cookies under their respective policies.",
		},
	},
	{
		Path:        "/career",
		Title:       "Career",
		Description: "Careers at Acquire To Scale.",
		Heading:     "Careers",
		Intro:       "We hire operators, not analysts.",
		Paragraphs: []string{
			"We occasionally bring on diligence specialists with hands-on experience running SaaS products, content sites, newsletters, or YouTube channels.",
			"There are no open roles listed right now. If you have operated and exited a digital business, introduce yourself anyway.",
		},
		CTALabel: "Introduce yourself",
		CTAHref:  "/contact",
	},
}
