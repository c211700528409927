package models

import (
	"time"
)

// Category groups published articles; an article belongs to at most one
type Category struct {
	ID        string    `json:"id" db:"id"`
	Slug      string    `json:"slug" db:"slug"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Tag labels articles many-to-many via article_tags
type Tag struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// ArticleTag is the join row between articles and tags
type ArticleTag struct {
	ArticleID string `json:"article_id" db:"article_id"`
	TagID     string `json:"tag_id" db:"tag_id"`
}
