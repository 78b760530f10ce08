package main

import (
	"log"

	"github.com/okinedo-site/internal/config"
	"github.com/okinedo-site/internal/db"
	"github.com/okinedo-site/internal/handler"
	"github.com/okinedo-site/internal/router"
)

func main() {
	cfg := config.Load()

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.EnsureUser(cfg.SuperRootUserName, cfg.SuperRootPassword); err != nil {
		log.Fatalf("failed to ensure root user: %v", err)
	}

	api := handler.NewAPI(db.DB, cfg.PostsDir, "web/static", cfg.SiteBaseURL)

	// Index the post collection before serving; a broken post file should
	// stop the deploy, not render with blank fields.
	if _, err := api.Sync(); err != nil {
		log.Fatalf("failed to sync posts: %v", err)
	}

	r := router.Setup(api, router.Options{
		SessionSecret: cfg.SessionSecret,
		TemplateGlob:  "web/template/*.html",
		StaticDir:     "web/static",
		LegacyDir:     cfg.LegacyDir,
	})

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
