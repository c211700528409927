package models

import (
	"time"
)

// SourceType identifies where imported content came from
type SourceType string

const (
	SourceMarkdown SourceType = "markdown"
	SourceURL      SourceType = "url"
)

// ImportStatus represents the lifecycle state of an import attempt
type ImportStatus string

const (
	ImportStatusPending ImportStatus = "pending"
	ImportStatusSuccess ImportStatus = "success"
	ImportStatusError   ImportStatus = "error"
)

// ImportRecord is the audit row for one import attempt. Records are created
// in pending state before the article write and moved to a terminal state
// afterwards. They are append-only and never deleted, so a failed article
// write leaves a permanent error-status entry.
type ImportRecord struct {
	ID         string       `json:"id" db:"id"`
	SourceType SourceType   `json:"source_type" db:"source_type"`
	SourceRef  string       `json:"source_ref" db:"source_ref"`
	Status     ImportStatus `json:"status" db:"status"`
	Message    string       `json:"message,omitempty" db:"message"`
	ArticleID  *string      `json:"article_id,omitempty" db:"article_id"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
}
