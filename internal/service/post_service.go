package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/okinedo-site/internal/db"
	"github.com/okinedo-site/internal/mdx"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrPostsDir     = errors.New("posts directory is not readable")
)

// PostService keeps the sqlite post index in step with the MDX files on disk
// and serves the public listing queries.
type PostService struct {
	db *gorm.DB
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// PostFilter describes filters for listing posts.
type PostFilter struct {
	Search  string
	Tag     string
	Page    int
	PerPage int
}

// PostListResult aggregates paginated list data.
type PostListResult struct {
	Posts      []db.Post
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
}

// TagStat is one entry of the tag archive.
type TagStat struct {
	Name  string
	Count int
}

// Sync replaces the post index with the MDX files found in dir.
// Any file that fails front-matter validation aborts the whole sync; a broken
// post should fail loudly instead of rendering with blank fields.
func (s *PostService) Sync(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPostsDir, err)
	}

	var posts []db.Post
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".mdx") && !strings.HasSuffix(name, ".md") {
			continue
		}

		doc, err := mdx.ParseFile(filepath.Join(dir, name))
		if err != nil {
			return 0, err
		}

		slug := strings.TrimSuffix(strings.TrimSuffix(name, ".mdx"), ".md")
		posts = append(posts, db.Post{
			Slug:        slug,
			Title:       doc.FrontMatter.Title,
			Summary:     doc.FrontMatter.Summary,
			Tag:         doc.FrontMatter.Tag,
			Image:       doc.FrontMatter.Image,
			Body:        doc.Body,
			PublishedAt: doc.PublishedDate(),
			ReadingTime: calculateReadingTime(doc.Body),
		})
	}

	// Stable insert order so row ids follow publication order and the
	// id tiebreaker in listings stays deterministic.
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].PublishedAt.Equal(posts[j].PublishedAt) {
			return posts[i].Slug < posts[j].Slug
		}
		return posts[i].PublishedAt.Before(posts[j].PublishedAt)
	})

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(&db.Post{}).Error; err != nil {
			return err
		}
		for i := range posts {
			if err := tx.Create(&posts[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("sync posts: %w", err)
	}

	return len(posts), nil
}

// List provides paginated posts ordered by publication date descending.
func (s *PostService) List(filter PostFilter) (*PostListResult, error) {
	result := &PostListResult{Page: filter.Page, PerPage: filter.PerPage}
	if result.Page <= 0 {
		result.Page = 1
	}
	if result.PerPage <= 0 {
		result.PerPage = 10
	}

	countQuery := s.applyFilters(s.db.Model(&db.Post{}), filter)
	if err := countQuery.Count(&result.Total).Error; err != nil {
		return nil, err
	}

	offset := (result.Page - 1) * result.PerPage

	var posts []db.Post
	dataQuery := s.applyFilters(s.db.Model(&db.Post{}), filter)
	if err := dataQuery.
		Order("published_at desc, id desc").
		Limit(result.PerPage).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, err
	}

	if result.Total == 0 {
		result.TotalPages = 1
	} else {
		result.TotalPages = int((result.Total + int64(result.PerPage) - 1) / int64(result.PerPage))
	}

	result.Posts = posts
	return result, nil
}

// ListAll returns every indexed post, newest first.
func (s *PostService) ListAll() ([]db.Post, error) {
	var posts []db.Post
	if err := s.db.Order("published_at desc, id desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetBySlug fetches a single post by its file slug.
func (s *PostService) GetBySlug(slug string) (*db.Post, error) {
	var post db.Post
	if err := s.db.Where("slug = ?", strings.TrimSpace(slug)).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Count returns the number of indexed posts.
func (s *PostService) Count() (int64, error) {
	var total int64
	if err := s.db.Model(&db.Post{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// TagStats returns tags with post counts, most used first.
func (s *PostService) TagStats() ([]TagStat, error) {
	var stats []TagStat
	if err := s.db.Model(&db.Post{}).
		Select("tag as name, count(*) as count").
		Where("tag <> ''").
		Group("tag").
		Order("count desc, tag asc").
		Scan(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *PostService) applyFilters(query *gorm.DB, filter PostFilter) *gorm.DB {
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("(title LIKE ? OR summary LIKE ? OR body LIKE ?)", like, like, like)
	}
	if tag := strings.TrimSpace(filter.Tag); tag != "" {
		query = query.Where("tag = ?", tag)
	}
	return query
}

// calculateReadingTime estimates minutes at roughly 200 words per minute,
// with a floor of one minute for non-empty bodies.
func calculateReadingTime(body string) int {
	words := len(strings.Fields(body))
	if words == 0 {
		return 0
	}

	minutes := words / 200
	if words%200 != 0 {
		minutes++
	}
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
