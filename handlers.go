package website

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/acquiretoscale/website/catalog"
	"github.com/acquiretoscale/website/content"
	"github.com/acquiretoscale/website/views"
)

func (a *App) handleHome(c echo.Context) error {
	ctx := c.Request().Context()
	seo := a.Settings.Current(ctx)
	featured := a.Content.ListFeatured(ctx)
	return Render(c, views.Home(a.Config.Site(), seo, featured))
}

func (a *App) handleStaticPage(page views.StaticPage) echo.HandlerFunc {
	return func(c echo.Context) error {
		seo := a.Settings.Current(c.Request().Context())
		return Render(c, views.ContentPage(a.Config.Site(), seo, page))
	}
}

func (a *App) handleDueDiligence(c echo.Context) error {
	seo := a.Settings.Current(c.Request().Context())
	return Render(c, views.DueDiligenceIndex(a.Config.Site(), seo))
}

func (a *App) handleDueDiligenceDetail(c echo.Context) error {
	asset, ok := catalog.AssetBySlug(c.Param("slug"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	seo := a.Settings.Current(c.Request().Context())
	return Render(c, views.DueDiligenceDetail(a.Config.Site(), seo, asset))
}

func (a *App) handleBlogList(c echo.Context) error {
	ctx := c.Request().Context()
	seo := a.Settings.Current(ctx)
	posts := a.Content.ListAll(ctx)
	return Render(c, views.BlogList(a.Config.Site(), seo, posts))
}

func (a *App) handleBlogPost(c echo.Context) error {
	ctx := c.Request().Context()
	post, err := a.Content.BySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	seo := a.Settings.Current(ctx)
	return Render(c, views.BlogPost(a.Config.Site(), seo, post))
}

func (a *App) handleSearch(c echo.Context) error {
	ctx := c.Request().Context()
	query := strings.TrimSpace(c.QueryParam("q"))
	results := a.Search.Search(ctx, query)
	seo := a.Settings.Current(ctx)
	return Render(c, views.SearchPage(a.Config.Site(), seo, query, results))
}

func (a *App) handleBuyerForm(c echo.Context) error {
	seo := a.Settings.Current(c.Request().Context())
	return Render(c, views.BuyerForm(a.Config.Site(), seo))
}

func (a *App) handleSellerForm(c echo.Context) error {
	seo := a.Settings.Current(c.Request().Context())
	return Render(c, views.SellerForm(a.Config.Site(), seo))
}

func (a *App) handleSellRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/seller-form/")
}

func (a *App) handleThankYou(path string) echo.HandlerFunc {
	return func(c echo.Context) error {
		seo := a.Settings.Current(c.Request().Context())
		return Render(c, views.ThankYou(a.Config.Site(), seo, path))
	}
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.Config.StaticDir + "/favicon.svg")
}

// aiCrawlers are the training-focused user agents blocked when AI
// training is disallowed in settings.
var aiCrawlers = []string{
	"GPTBot",
	"ChatGPT-User",
	"CCBot",
	"anthropic-ai",
	"ClaudeBot",
	"Google-Extended",
	"PerplexityBot",
}

func (a *App) handleRobots(c echo.Context) error {
	seo := a.Settings.Current(c.Request().Context())

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin\n")
	b.WriteString("Disallow: /api/\n\n")
	if !seo.AllowAITraining {
		for _, agent := range aiCrawlers {
			b.WriteString("User-agent: " + agent + "\nDisallow: /\n\n")
		}
	}
	b.WriteString("Sitemap: " + strings.TrimRight(a.Config.SiteURL, "/") + "/sitemap.xml\n")

	return c.String(http.StatusOK, b.String())
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		seo := a.Settings.Current(c.Request().Context())
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config.Site(), seo))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error("server error", "uri", c.Request().RequestURI, "err", err)
		_ = RenderStatus(c, code, views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
