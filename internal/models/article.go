package models

import (
	"time"
)

// ArticleStatus represents the visibility state of an article
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

// ValidStatuses defines allowed article statuses
var ValidStatuses = map[ArticleStatus]bool{
	StatusDraft:     true,
	StatusPublished: true,
}

// Article represents an article in the system. Imported articles always
// start in draft status; PublishedAt is set when the status transitions
// to published.
type Article struct {
	ID            string        `json:"id" db:"id"`
	Slug          string        `json:"slug" db:"slug"`
	Title         string        `json:"title" db:"title"`
	ContentMD     string        `json:"content_md" db:"content_md"`
	ContentHTML   string        `json:"content_html" db:"content_html"`
	CoverImageURL string        `json:"cover_image_url,omitempty" db:"cover_image_url"`
	Status        ArticleStatus `json:"status" db:"status"`
	CategoryID    *string       `json:"category_id,omitempty" db:"category_id"`
	PublishedAt   *time.Time    `json:"published_at,omitempty" db:"published_at"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`

	// Category is populated by listing queries via join, not stored on the row
	Category *Category `json:"category,omitempty" db:"-"`
}
