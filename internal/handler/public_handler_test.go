package handler_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/okinedo-site/internal/db"
	"github.com/okinedo-site/internal/handler"
	"github.com/okinedo-site/internal/router"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ginOnce sync.Once

func setupHandlerTest(t *testing.T) (*handler.API, *gin.Engine, string, func()) {
	t.Helper()

	ginOnce.Do(func() {
		gin.SetMode(gin.TestMode)
	})

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.User{}, &db.Post{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	db.DB = gdb

	postsDir := t.TempDir()
	api := handler.NewAPI(gdb, postsDir, "", "https://example.test")
	r := router.Setup(api, router.Options{
		SessionSecret: "test-secret",
		TemplateGlob:  "../../web/template/*.html",
	})

	cleanup := func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	return api, r, postsDir, cleanup
}

func writeHandlerPost(t *testing.T, dir, name, title, date string) {
	t.Helper()

	source := "---\n" +
		"title: \"" + title + "\"\n" +
		"summary: \"Summary of " + title + "\"\n" +
		"publishedAt: \"" + date + "\"\n" +
		"tag: \"LLM\"\n" +
		"---\n\n" +
		"## Section\n\nBody of " + title + ".\n"

	if err := os.WriteFile(filepath.Join(dir, name), []byte(source), 0o644); err != nil {
		t.Fatalf("failed to write post fixture: %v", err)
	}
}

func TestShowBlogOrdersNewestFirst(t *testing.T) {
	api, r, postsDir, cleanup := setupHandlerTest(t)
	defer cleanup()

	writeHandlerPost(t, postsDir, "older.mdx", "January Post", "2025-01-15")
	writeHandlerPost(t, postsDir, "newer.mdx", "February Post", "2025-02-02")

	if _, err := api.Sync(); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/blog", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	newer := strings.Index(body, "February Post")
	older := strings.Index(body, "January Post")
	if newer < 0 || older < 0 {
		t.Fatal("expected both posts in the listing")
	}
	if newer > older {
		t.Fatal("expected the 2025-02-02 post before the 2025-01-15 post")
	}
}

func TestShowPostDetailRendersMarkdown(t *testing.T) {
	api, r, postsDir, cleanup := setupHandlerTest(t)
	defer cleanup()

	writeHandlerPost(t, postsDir, "hello.mdx", "Hello Post", "2025-01-01")
	if _, err := api.Sync(); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/blog/hello", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Hello Post") {
		t.Fatal("expected post title in response")
	}
	if !strings.Contains(body, "<h2") {
		t.Fatal("expected markdown heading rendered as HTML")
	}
}

func TestShowPostDetailUnknownSlug(t *testing.T) {
	_, r, _, cleanup := setupHandlerTest(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/blog/does-not-exist", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown slug, got %d", w.Code)
	}
}

func TestShowAboutHidesUnsetSocialLink(t *testing.T) {
	_, r, _, cleanup := setupHandlerTest(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Kevin Okinedo") {
		t.Fatal("expected owner name on about page")
	}
	if !strings.Contains(body, ">GitHub</a>") {
		t.Fatal("expected GitHub link to be rendered")
	}
	// The X entry has no URL yet; it must be hidden, not rendered dead.
	if strings.Contains(body, ">X</a>") {
		t.Fatal("social entry with empty link should not be rendered")
	}
}

func TestShowHomeShowsHeadlineAndLatestPosts(t *testing.T) {
	api, r, postsDir, cleanup := setupHandlerTest(t)
	defer cleanup()

	writeHandlerPost(t, postsDir, "latest.mdx", "Latest Post", "2025-03-01")
	if _, err := api.Sync(); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "AI engineer and builder") {
		t.Fatal("expected headline on home page")
	}
	if !strings.Contains(body, "Latest Post") {
		t.Fatal("expected latest post on home page")
	}
}

func TestShowGalleryRendersAuthoredImages(t *testing.T) {
	_, r, _, cleanup := setupHandlerTest(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gallery", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "/static/images/gallery/") {
		t.Fatal("expected gallery images in response")
	}
}
