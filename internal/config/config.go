package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig bundles everything the server needs at startup.
type AppConfig struct {
	ListenAddr        string
	Port              string
	DatabasePath      string
	PostsDir          string
	LegacyDir         string
	SessionSecret     string
	GinMode           string
	SuperRootUserName string
	SuperRootPassword string
	SiteBaseURL       string
}

// Load reads the app configuration from environment variables and fills
// missing entries with safe defaults.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "okinedo.db"
	}

	postsDir := strings.TrimSpace(os.Getenv("POSTS_DIR"))
	if postsDir == "" {
		postsDir = "content/posts"
	}

	legacyDir := strings.TrimSpace(os.Getenv("LEGACY_DIR"))
	if legacyDir == "" {
		legacyDir = "web/legacy"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "okinedo-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	siteBaseURL := strings.TrimSpace(os.Getenv("SITE_BASE_URL"))
	if siteBaseURL == "" {
		siteBaseURL = "https://kevinokinedo.com"
	}

	superRootUserName := strings.TrimSpace(os.Getenv("SUPER_ROOT_USER_NAME"))
	superRootPassword := strings.TrimSpace(os.Getenv("SUPER_ROOT_PASSWORD"))

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		DatabasePath:      databasePath,
		PostsDir:          postsDir,
		LegacyDir:         legacyDir,
		SessionSecret:     sessionSecret,
		GinMode:           ginMode,
		SuperRootUserName: superRootUserName,
		SuperRootPassword: superRootPassword,
		SiteBaseURL:       siteBaseURL,
	}
}
