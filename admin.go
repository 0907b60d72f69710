package website

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/acquiretoscale/website/content"
	"github.com/acquiretoscale/website/settings"
	"github.com/acquiretoscale/website/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(CsrfToken(c), ""))
	}
	return a.renderAdminDashboard(c)
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(c.RealIP())
	return Render(c, views.AdminLogin(CsrfToken(c), "Wrong password."))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) renderAdminDashboard(c echo.Context) error {
	posts := a.Content.ListAll(c.Request().Context())
	return Render(c, views.AdminDashboard(posts, a.Config.DemoMode(), CsrfToken(c)))
}

func (a *App) handleAdminNewPost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, views.AdminEditor(content.BlogPost{}, true, CsrfToken(c)))
}

func (a *App) handleAdminEditPost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	post, err := a.Content.BySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	return Render(c, views.AdminEditor(post, false, CsrfToken(c)))
}

func (a *App) handleAdminSavePost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	title := strings.TrimSpace(c.FormValue("title"))
	slug := strings.TrimSpace(c.FormValue("slug"))
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return c.String(http.StatusBadRequest, "Slug is required. Add a title or slug.")
	}
	prevSlug := c.Param("slug")

	post := content.BlogPost{
		Slug:          slug,
		Title:         title,
		Description:   strings.TrimSpace(c.FormValue("description")),
		Content:       c.FormValue("content"),
		FeaturedImage: strings.TrimSpace(c.FormValue("featuredImage")),
		Featured:      c.FormValue("featured") != "",
		RichText:      c.FormValue("richText") != "",
		Date:          time.Now().UTC(),
	}
	if prevSlug != "" {
		if prev, err := a.Content.BySlug(c.Request().Context(), prevSlug); err == nil {
			post.Date = prev.Date
			post.Updated = time.Now().UTC()
		}
	}

	if a.Config.DemoMode() {
		if err := a.savePostFile(post); err != nil {
			return err
		}
	} else {
		if err := a.Posts.Save(c.Request().Context(), post); err != nil {
			return err
		}
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminDeletePost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	slug := c.Param("slug")
	post, err := a.Content.BySlug(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	if post.Source == content.SourceDatabase {
		if err := a.Posts.Delete(c.Request().Context(), slug); err != nil {
			return err
		}
	} else {
		if err := a.deletePostFile(slug); err != nil {
			return err
		}
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// savePostFile writes a post as a front-matter markdown file in the
// content directory. This is the demo-mode persistence path.
func (a *App) savePostFile(p content.BlogPost) error {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", p.Title)
	fmt.Fprintf(&b, "slug: %s\n", p.Slug)
	if p.Description != "" {
		fmt.Fprintf(&b, "description: %q\n", p.Description)
	}
	fmt.Fprintf(&b, "date: %s\n", p.Date.Format("2006-01-02"))
	if !p.Updated.IsZero() {
		fmt.Fprintf(&b, "updated: %s\n", p.Updated.Format("2006-01-02"))
	}
	if p.FeaturedImage != "" {
		fmt.Fprintf(&b, "featuredImage: %s\n", p.FeaturedImage)
	}
	if p.Featured {
		b.WriteString("featured: true\n")
	}
	b.WriteString("---\n\n")
	b.WriteString(p.Content)
	if !strings.HasSuffix(p.Content, "\n") {
		b.WriteString("\n")
	}

	dir := a.Files.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create content dir: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, p.Slug+".md"), []byte(b.String()), 0o644)
}

func (a *App) deletePostFile(slug string) error {
	dir := a.Files.Dir()
	for _, ext := range []string{".mdx", ".md"} {
		path := filepath.Join(dir, slug+ext)
		if _, err := os.Stat(path); err == nil {
			return os.Remove(path)
		}
	}
	return content.ErrNotFound
}

func (a *App) handleAdminSeo(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	seo := a.Settings.Current(c.Request().Context())
	return Render(c, views.AdminSeo(seo, CsrfToken(c), c.QueryParam("saved") == "1", ""))
}

func (a *App) handleAdminSeoSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	seo := settings.Seo{
		GA4MeasurementID:         strings.TrimSpace(c.FormValue("ga4MeasurementId")),
		GoogleSiteVerification:   strings.TrimSpace(c.FormValue("googleSiteVerification")),
		BingSiteVerification:     strings.TrimSpace(c.FormValue("bingSiteVerification")),
		AIOptimizationEnabled:    c.FormValue("aiOptimizationEnabled") != "",
		AllowAITraining:          c.FormValue("allowAiTraining") != "",
		GTMContainerID:           strings.TrimSpace(c.FormValue("gtmContainerId")),
		FacebookPixelID:          strings.TrimSpace(c.FormValue("facebookPixelId")),
		TikTokPixelID:            strings.TrimSpace(c.FormValue("tiktokPixelId")),
		GoogleAdsConversionID:    strings.TrimSpace(c.FormValue("googleAdsConversionId")),
		GoogleAdsConversionLabel: strings.TrimSpace(c.FormValue("googleAdsConversionLabel")),
		MetaTitleOverride:        strings.TrimSpace(c.FormValue("metaTitleOverride")),
		MetaDescriptionOverride:  strings.TrimSpace(c.FormValue("metaDescriptionOverride")),
	}
	if err := a.Settings.Update(c.Request().Context(), seo); err != nil {
		if errors.Is(err, settings.ErrUnavailable) {
			return Render(c, views.AdminSeo(seo, CsrfToken(c), false,
				"Settings cannot be saved in demo mode: no database configured."))
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/seo/?saved=1")
}
