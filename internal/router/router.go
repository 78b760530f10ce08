package router

import (
	"html/template"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/okinedo-site/internal/handler"
)

// Options carries the paths and secrets the router needs.
type Options struct {
	SessionSecret string
	TemplateGlob  string
	StaticDir     string
	LegacyDir     string
}

// Setup configures the gin engine and mounts all routes for the given API.
func Setup(api *handler.API, opts Options) *gin.Engine {
	r := gin.Default()

	secret := opts.SessionSecret
	if secret == "" {
		secret = "okinedo-dev-secret"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("okinedo_session", store))

	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("January 2, 2006")
		},
		"isodate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02")
		},
	})

	if opts.TemplateGlob != "" {
		r.LoadHTMLGlob(opts.TemplateGlob)
	}

	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
	}
	// Legacy plain-HTML variant of the portfolio.
	if opts.LegacyDir != "" {
		r.Static("/legacy", opts.LegacyDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/", api.ShowHome)
	r.GET("/about", api.ShowAbout)
	r.GET("/work", api.ShowWork)
	r.GET("/gallery", api.ShowGallery)
	r.GET("/blog", api.ShowBlog)
	r.GET("/blog/tags", api.ShowTagArchive)
	r.GET("/blog/:slug", api.ShowPostDetail)

	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)
			auth.POST("/api/resync", api.Resync)
		}
	}

	r.NoRoute(api.NotFound)

	return r
}
