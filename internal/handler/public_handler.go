package handler

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/okinedo-site/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// ShowHome renders the landing page: headline, latest posts, featured work.
func (a *API) ShowHome(c *gin.Context) {
	meta, _ := a.registry.Page("home")

	latest, err := a.posts.List(service.PostFilter{Page: 1, PerPage: 3})
	if err != nil {
		c.Error(err)
		latest = &service.PostListResult{}
	}

	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title":       meta.Title,
		"description": meta.Description,
		"headline":    a.registry.Headline,
		"subline":     a.registry.Subline,
		"posts":       latest.Posts,
		"work":        a.registry.Work,
	})
}

// ShowAbout renders the about page from the registry: intro, work history,
// studies, skills and contact links.
func (a *API) ShowAbout(c *gin.Context) {
	meta, _ := a.registry.Page("about")

	intro, err := renderMarkdown(a.registry.Intro)
	if err != nil {
		c.Error(err)
		intro = template.HTML("")
	}

	a.renderHTML(c, http.StatusOK, "about.html", gin.H{
		"title":       meta.Title,
		"description": meta.Description,
		"person":      a.registry.Person,
		"intro":       intro,
		"work":        a.registry.Work,
		"studies":     a.registry.Studies,
		"skills":      a.registry.Skills,
	})
}

// ShowWork renders the work history as its own section.
func (a *API) ShowWork(c *gin.Context) {
	meta, _ := a.registry.Page("work")

	a.renderHTML(c, http.StatusOK, "work.html", gin.H{
		"title":       meta.Title,
		"description": meta.Description,
		"work":        a.registry.Work,
	})
}

// ShowGallery renders the photo gallery with resolved orientations.
func (a *API) ShowGallery(c *gin.Context) {
	meta, _ := a.registry.Page("gallery")

	a.renderHTML(c, http.StatusOK, "gallery.html", gin.H{
		"title":       meta.Title,
		"description": meta.Description,
		"images":      a.gallery.Resolve(a.registry.Gallery),
	})
}

// ShowBlog lists published posts, newest first, with optional tag and search
// filters.
func (a *API) ShowBlog(c *gin.Context) {
	meta, _ := a.registry.Page("blog")

	search := strings.TrimSpace(c.Query("search"))
	tag := strings.TrimSpace(c.Query("tag"))
	page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)

	filter := service.PostFilter{
		Search:  search,
		Tag:     tag,
		Page:    page,
		PerPage: 6,
	}

	posts, err := a.posts.List(filter)
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "blog.html", gin.H{
			"title": meta.Title,
			"error": "failed to load posts",
		})
		return
	}

	tags, err := a.posts.TagStats()
	if err != nil {
		c.Error(err)
		tags = nil
	}

	a.renderHTML(c, http.StatusOK, "blog.html", gin.H{
		"title":       meta.Title,
		"description": meta.Description,
		"search":      search,
		"tag":         tag,
		"tags":        tags,
		"posts":       posts.Posts,
		"page":        posts.Page,
		"totalPages":  posts.TotalPages,
		"hasMore":     posts.Page < posts.TotalPages,
	})
}

// ShowPostDetail renders one post with its markdown body converted to HTML.
func (a *API) ShowPostDetail(c *gin.Context) {
	slug := c.Param("slug")

	post, err := a.posts.GetBySlug(slug)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	htmlContent, err := renderMarkdown(post.Body)
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "post_detail.html", gin.H{
			"title": post.Title,
			"error": "failed to render content",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "post_detail.html", gin.H{
		"title":   post.Title,
		"post":    post,
		"content": htmlContent,
	})
}

// ShowTagArchive lists tags with their published post counts.
func (a *API) ShowTagArchive(c *gin.Context) {
	tags, err := a.posts.TagStats()
	if err != nil {
		c.Error(err)
		tags = nil
	}

	a.renderHTML(c, http.StatusOK, "tag_list.html", gin.H{
		"title": "Tags",
		"tags":  tags,
	})
}

// renderMarkdown converts markdown to sanitized HTML. Raw component tags in
// MDX bodies are stripped by the policy and degrade to their text content.
func renderMarkdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	safe := sanitizer.SanitizeBytes(buf.Bytes())
	return template.HTML(safe), nil
}
