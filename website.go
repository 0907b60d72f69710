// Package website is the Acquire To Scale marketing site: static service
// pages, a dual-source blog (markdown files merged with a hosted Postgres
// table), in-house site search, lead intake forms, and an admin dashboard
// for posts and SEO settings.
//
// The site degrades gracefully without Postgres: blog posts come from
// files, SEO settings fall back to environment defaults, and lead
// submissions land in a local SQLite database.
package website

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	_ "github.com/lib/pq"

	"github.com/acquiretoscale/website/catalog"
	"github.com/acquiretoscale/website/content"
	"github.com/acquiretoscale/website/leads"
	"github.com/acquiretoscale/website/search"
	"github.com/acquiretoscale/website/settings"
)

// App wires together the content aggregator, search index, settings
// service, lead stores, and the Echo server.
type App struct {
	Config Config
	Echo   *echo.Echo
	Log    *slog.Logger

	Content  *content.Aggregator
	Files    *content.FileRepo
	Posts    *content.PostgresRepo
	Search   *search.Index
	Settings *settings.Service
	Leads    leads.Store
	Mailer   leads.Mailer

	db           *sqlx.DB
	demoLeads    *leads.SQLiteStore
	loginLimiter *LoginLimiter
}

// New creates the App with the given configuration. Call Start to
// initialize backends and serve.
func New(cfg Config, log *slog.Logger) *App {
	cfg.setDefaults()
	if log == nil {
		log = slog.Default()
	}
	return &App{
		Config: cfg,
		Echo:   echo.New(),
		Log:    log,
	}
}

// Start initializes stores, middleware, and routes, then serves until the
// listener closes. An unreachable Postgres does not fail startup; reads
// degrade to file content and defaults at request time.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("website: ADMIN_PASSWORD is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("website: SESSION_SECRET is required")
	}

	if err := a.initBackends(); err != nil {
		return err
	}

	a.loginLimiter = NewLoginLimiter(5, loginWindow)

	a.setupMiddleware()
	a.setupRoutes()

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) initBackends() error {
	a.Files = content.NewFileRepo(a.Config.ContentDir, a.Log)

	var dbRepo content.Repository
	if !a.Config.DemoMode() {
		// sqlx.Open does not ping, so a down database surfaces per
		// request instead of at boot.
		db, err := sqlx.Open("postgres", a.Config.DatabaseURL)
		if err != nil {
			return fmt.Errorf("website: open postgres: %w", err)
		}
		a.db = db
		a.Posts = content.NewPostgresRepo(db)
		dbRepo = a.Posts
		a.Leads = leads.NewPostgresStore(db)
	} else {
		a.Log.Info("no DATABASE_URL configured, running in demo mode")
		store, err := leads.NewSQLiteStore(a.Config.DemoLeadsDBPath)
		if err != nil {
			return fmt.Errorf("website: open demo leads store: %w", err)
		}
		a.demoLeads = store
		a.Leads = store
	}

	a.Content = content.NewAggregator(a.Files, dbRepo, a.Log)
	a.Settings = settings.NewService(a.db, a.Config.SeoDefaults(), a.Log)

	a.Search = &search.Index{
		Pages: catalog.StaticPages(),
		Files: a.Files,
		Log:   a.Log,
	}
	if a.Posts != nil {
		a.Search.DB = a.Posts
	}

	mailer, err := leads.NewResendMailer(a.Config.ResendAPIKey)
	if err != nil {
		a.Log.Warn("lead notification email disabled", "reason", err)
	} else {
		a.Mailer = mailer
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	for _, p := range staticPages {
		e.GET(p.Path+"/", a.handleStaticPage(p))
	}
	e.GET("/due-diligence/", a.handleDueDiligence)
	e.GET("/due-diligence/:slug/", a.handleDueDiligenceDetail)
	e.GET("/blog/", a.handleBlogList)
	e.GET("/blog/:slug/", a.handleBlogPost)
	e.GET("/search/", a.handleSearch)
	e.GET("/buyer-form/", a.handleBuyerForm)
	e.GET("/seller-form/", a.handleSellerForm)
	e.GET("/sell-your-business/", a.handleSellRedirect)
	e.GET("/buyer-form/thank-you/", a.handleThankYou("/buyer-form/thank-you"))
	e.GET("/seller-form/thank-you/", a.handleThankYou("/seller-form/thank-you"))

	e.POST("/api/buyer-form", a.handleBuyerSubmit)
	e.POST("/api/seller-form", a.handleSellerSubmit)

	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/posts/new/", a.handleAdminNewPost)
	e.GET("/admin/posts/:slug/", a.handleAdminEditPost)
	e.POST("/admin/posts/", a.handleAdminSavePost)
	e.POST("/admin/posts/:slug/", a.handleAdminSavePost)
	e.POST("/admin/posts/:slug/delete/", a.handleAdminDeletePost)
	e.GET("/admin/seo/", a.handleAdminSeo)
	e.POST("/admin/seo/", a.handleAdminSeoSave)
	e.POST("/admin/images/upload/", a.handleImageUpload)
}

// Close releases database handles. Call on shutdown.
func (a *App) Close() error {
	if a.db != nil {
		a.db.Close()
	}
	if a.demoLeads != nil {
		a.demoLeads.Close()
	}
	return nil
}
