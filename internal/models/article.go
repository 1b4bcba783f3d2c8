package models

import (
	"time"

	"gorm.io/gorm"
)

// Article is a CMS entry authored by an admin.
type Article struct {
	gorm.Model
	AuthorID    uint       `gorm:"index;not null" json:"author_id"`
	Title       string     `gorm:"not null" json:"title"`
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `gorm:"type:text" json:"content"`
	CoverURL    string     `json:"cover_url"`
	Published   bool       `gorm:"default:false" json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type ArticleInput struct {
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	CoverURL  string `json:"cover_url"`
	Published bool   `json:"published"`
}
