package website

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acquiretoscale/website/leads"
)

// stubMailer records sends instead of calling the Resend API.
type stubMailer struct {
	sent []leads.Email
}

func (m *stubMailer) Send(_ context.Context, e leads.Email) error {
	m.sent = append(m.sent, e)
	return nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	contentDir := t.TempDir()
	post := `---
title: "Spotting Inflated Multiples"
description: "How sellers dress up the asking price."
date: 2025-02-01
featured: true
---

Every listing has a story. Check the numbers behind it.
`
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "spotting-inflated-multiples.md"), []byte(post), 0o644))

	cfg := Config{
		ContentDir:      contentDir,
		StaticDir:       t.TempDir(),
		AdminPassword:   "test-password",
		SessionSecret:   "test-secret",
		DemoLeadsDBPath: filepath.Join(t.TempDir(), "leads.db"),
	}
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Log:    slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
	}
	require.NoError(t, a.initBackends())
	a.Mailer = &stubMailer{}
	a.loginLimiter = NewLoginLimiter(5, time.Minute)
	a.setupMiddleware()
	a.setupRoutes()
	t.Cleanup(func() { a.Close() })
	return a
}

func get(a *App, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestHomePage(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Acquire To Scale")
	assert.Contains(t, body, "Spotting Inflated Multiples", "featured post appears on the homepage")
}

func TestStaticPageTrailingSlashRedirect(t *testing.T) {
	a := newTestApp(t)

	rec := get(a, "/about")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/about/", rec.Header().Get(echo.HeaderLocation))

	rec = get(a, "/about/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "About Acquire To Scale")
}

func TestBlogListAndDetail(t *testing.T) {
	a := newTestApp(t)

	rec := get(a, "/blog/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Spotting Inflated Multiples")

	rec = get(a, "/blog/spotting-inflated-multiples/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Check the numbers behind it")

	rec = get(a, "/blog/no-such-post/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestDueDiligencePages(t *testing.T) {
	a := newTestApp(t)

	rec := get(a, "/due-diligence/")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(a, "/due-diligence/saas-apps/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SaaS")

	rec = get(a, "/due-diligence/crypto-tokens/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchPage(t *testing.T) {
	a := newTestApp(t)

	rec := get(a, "/search/?q=a")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Type at least 2 characters")

	rec = get(a, "/search/?q=multiples")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/blog/spotting-inflated-multiples")
}

func TestRobotsTxt(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/robots.txt")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Disallow: /admin")
	assert.Contains(t, body, "Sitemap: http://localhost:3000/sitemap.xml")
	assert.NotContains(t, body, "GPTBot", "AI crawlers stay allowed by default")
}

func TestSitemap(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/sitemap.xml")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<loc>http://localhost:3000/due-diligence/saas-apps</loc>")
	assert.Contains(t, body, "/blog/spotting-inflated-multiples")
	assert.Contains(t, body, "<lastmod>2025-02-01</lastmod>")
}

func TestFeed(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/feed.xml")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/rss+xml")
	assert.Contains(t, rec.Body.String(), "Spotting Inflated Multiples")
}

func TestBuyerFormSubmitJSON(t *testing.T) {
	a := newTestApp(t)

	body := `{"fullName":"Ada Example","email":"ada@example.com","primaryAsset":"SaaS / Webapp"}`
	req := httptest.NewRequest(http.MethodPost, "/api/buyer-form", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	mailer := a.Mailer.(*stubMailer)
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].Subject, "Ada Example")
	assert.Equal(t, "ada@example.com", mailer.sent[0].ReplyTo)
}

func TestBuyerFormSubmitWithoutMailer(t *testing.T) {
	a := newTestApp(t)
	a.Mailer = nil

	body := `{"fullName":"Ada Example","email":"ada@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/buyer-form", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}

func TestBuyerFormSubmitMissingFields(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/buyer-form", strings.NewReader(`{"fullName":"No Email"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSellerFormSubmitJSON(t *testing.T) {
	a := newTestApp(t)

	body := `{"fullName":"Sam Example","email":"sam@example.com","assetUrl":"https://example.com","helpWith":["Valuation"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/seller-form", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestAdminRequiresAuth(t *testing.T) {
	a := newTestApp(t)

	rec := get(a, "/admin/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password", "unauthenticated admin shows the login form")

	rec = get(a, "/admin/posts/new/")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/", rec.Header().Get(echo.HeaderLocation))
}

func TestSellYourBusinessRedirect(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/sell-your-business/")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/seller-form/", rec.Header().Get(echo.HeaderLocation))
}
