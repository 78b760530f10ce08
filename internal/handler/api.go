package handler

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/okinedo-site/internal/content"
	"github.com/okinedo-site/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db       *gorm.DB
	posts    *service.PostService
	gallery  *service.GalleryService
	registry *content.Registry
	postsDir string
	baseURL  string

	mu       sync.Mutex
	lastSync syncState
}

// syncState remembers the most recent post sync for the dashboard.
type syncState struct {
	RunID    string
	At       time.Time
	Imported int
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, postsDir, staticDir, baseURL string) *API {
	return &API{
		db:       gdb,
		posts:    service.NewPostService(gdb),
		gallery:  service.NewGalleryService(staticDir),
		registry: content.Get(),
		postsDir: postsDir,
		baseURL:  baseURL,
	}
}

// DB exposes the underlying gorm instance for tests.
func (a *API) DB() *gorm.DB {
	return a.db
}

// Sync rebuilds the post index from the configured directory and records the
// run for the dashboard.
func (a *API) Sync() (int, error) {
	runID := uuid.NewString()

	imported, err := a.posts.Sync(a.postsDir)
	if err != nil {
		return 0, err
	}

	a.rememberSync(syncState{RunID: runID, At: time.Now(), Imported: imported})
	return imported, nil
}

// renderHTML renders a template with the registry-driven site payload merged
// in, so every page gets navigation, owner identity and social links.
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["site"]; !exists {
		payload["site"] = gin.H{
			"name":    a.registry.Person.Name(),
			"role":    a.registry.Person.Role,
			"avatar":  a.registry.Person.Avatar,
			"baseURL": a.baseURL,
		}
	}
	if _, exists := payload["nav"]; !exists {
		payload["nav"] = a.registry.Nav()
	}
	if _, exists := payload["social"]; !exists {
		payload["social"] = a.registry.VisibleSocial()
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}

	c.HTML(status, template, payload)
}

func (a *API) rememberSync(state syncState) {
	a.mu.Lock()
	a.lastSync = state
	a.mu.Unlock()
}

func (a *API) lastSyncState() syncState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastSync
}
