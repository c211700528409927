package repository

import (
	"context"
	"time"

	"github.com/content-publish-api/internal/database"
	"github.com/content-publish-api/internal/models"
)

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	ListPublished(ctx context.Context, limit int) ([]*models.Article, error)
	ListByCategorySlug(ctx context.Context, categorySlug string) ([]*models.Article, error)
	ListByTagName(ctx context.Context, tagName string) ([]*models.Article, error)
	ListAll(ctx context.Context) ([]*models.Article, error)
	UpdateStatus(ctx context.Context, id string, status models.ArticleStatus, publishedAt *time.Time) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	List(ctx context.Context) ([]*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
}

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	List(ctx context.Context) ([]*models.Tag, error)
	GetByName(ctx context.Context, name string) (*models.Tag, error)
}

// ImportRepository defines the interface for the import audit trail.
// Records are append-only: they are created pending and finalized exactly
// once, never deleted.
type ImportRepository interface {
	Create(ctx context.Context, record *models.ImportRecord) error
	MarkSuccess(ctx context.Context, id, articleID string) error
	MarkError(ctx context.Context, id, message string) error
	GetByID(ctx context.Context, id string) (*models.ImportRecord, error)
	List(ctx context.Context, limit int) ([]*models.ImportRecord, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article  ArticleRepository
	Category CategoryRepository
	Tag      TagRepository
	Import   ImportRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article:  NewArticleRepo(db),
		Category: NewCategoryRepo(db),
		Tag:      NewTagRepo(db),
		Import:   NewImportRepo(db),
	}
}
