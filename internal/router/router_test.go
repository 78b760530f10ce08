package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/okinedo-site/internal/db"
	"github.com/okinedo-site/internal/handler"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouterTest(t *testing.T, opts Options) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&db.User{}, &db.Post{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	db.DB = gdb

	api := handler.NewAPI(gdb, t.TempDir(), "", "")
	return Setup(api, opts)
}

func TestPingRoute(t *testing.T) {
	r := setupRouterTest(t, Options{SessionSecret: "test-secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestLegacyVariantIsServed(t *testing.T) {
	legacyDir := t.TempDir()
	content := []byte("<html><body>legacy portfolio</body></html>")
	if err := os.WriteFile(filepath.Join(legacyDir, "index.html"), content, 0o644); err != nil {
		t.Fatalf("failed to write legacy page: %v", err)
	}

	r := setupRouterTest(t, Options{SessionSecret: "test-secret", LegacyDir: legacyDir})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/legacy/index.html", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Body.String() != string(content) {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}
