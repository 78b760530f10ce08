package db

import (
	"time"

	"gorm.io/gorm"
)

// Post is one row of the blog post index. The MDX file on disk stays the
// source of truth; rows are rewritten on every sync.
type Post struct {
	gorm.Model
	Slug        string `gorm:"uniqueIndex;size:200;not null"`
	Title       string `gorm:"not null"`
	Summary     string `gorm:"not null"`
	Tag         string `gorm:"size:80;index"`
	Image       string `gorm:"size:255"`
	Body        string
	PublishedAt time.Time `gorm:"index"`
	ReadingTime int
}
