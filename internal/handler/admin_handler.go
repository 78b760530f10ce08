package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/okinedo-site/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// ShowLoginPage renders the admin login form.
func (a *API) ShowLoginPage(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "login.html", gin.H{
		"title": "Admin login",
	})
}

// Login validates credentials against the users table and opens a session.
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var user db.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"title": "Admin login",
			"error": "invalid username or password",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"title": "Admin login",
			"error": "invalid username or password",
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "login.html", gin.H{
			"title": "Admin login",
			"error": "failed to save session",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout clears the session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowDashboard reports the state of the post index.
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get("username")

	postCount, err := a.posts.Count()
	if err != nil {
		c.Error(err)
	}

	last := a.lastSyncState()

	a.renderHTML(c, http.StatusOK, "dashboard.html", gin.H{
		"title":     "Dashboard",
		"username":  username,
		"postCount": postCount,
		"lastSync":  last.At,
		"lastRunID": last.RunID,
	})
}

// Resync re-reads the post directory and rebuilds the index. The equivalent
// of a redeploy for file-backed content.
func (a *API) Resync(c *gin.Context) {
	imported, err := a.Sync()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"runId":    a.lastSyncState().RunID,
		"imported": imported,
	})
}

// AuthRequired redirects unauthenticated requests to the login page.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")
		if userID == nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
