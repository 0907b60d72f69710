package website

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acquiretoscale/website/catalog"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (a *App) handleSitemap(c echo.Context) error {
	base := a.Config.SiteURL

	var urls []sitemapURL
	for _, route := range catalog.SitemapRoutes() {
		if route == "/" {
			urls = append(urls, sitemapURL{Loc: absoluteURL(base)})
			continue
		}
		urls = append(urls, sitemapURL{Loc: absoluteURL(base, route)})
	}
	for _, p := range a.Content.ListAll(c.Request().Context()) {
		urls = append(urls, sitemapURL{
			Loc:     absoluteURL(base, "blog", p.Slug),
			LastMod: p.EffectiveDate().Format("2006-01-02"),
		})
	}

	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
