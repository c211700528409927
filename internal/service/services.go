package service

import (
	"context"
	"fmt"

	"github.com/content-publish-api/internal/config"
	"github.com/content-publish-api/internal/importer"
	"github.com/content-publish-api/internal/models"
	"github.com/content-publish-api/internal/repository"
	"github.com/rs/zerolog"
)

// PersistenceError wraps a data-store write failure that happened after
// extraction succeeded. The detailed cause is retained in the import audit
// record; callers surface a generic failure message.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ImportService defines the interface for the import pipeline
type ImportService interface {
	Import(ctx context.Context, src importer.Source) (*models.Article, error)
	ListRecords(ctx context.Context, limit int) ([]*models.ImportRecord, error)
}

// ArticleService defines the interface for article reads and admin writes
type ArticleService interface {
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error)
	ListPublished(ctx context.Context, limit int) ([]*models.Article, error)
	ListByCategory(ctx context.Context, categorySlug string) ([]*models.Article, error)
	ListByTag(ctx context.Context, tagName string) ([]*models.Article, error)
	ListAll(ctx context.Context) ([]*models.Article, error)
	ToggleStatus(ctx context.Context, id string) (*models.Article, error)
	Delete(ctx context.Context, id string) error
}

// TaxonomyService defines the interface for category and tag reads
type TaxonomyService interface {
	ListCategories(ctx context.Context) ([]*models.Category, error)
	ListTags(ctx context.Context) ([]*models.Tag, error)
}

// Services holds all service interfaces
type Services struct {
	Import   ImportService
	Article  ArticleService
	Taxonomy TaxonomyService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	extractor := importer.NewExtractor(cfg.Import.FetchTimeout)

	return &Services{
		Import:   newImportService(repos, extractor, log),
		Article:  newArticleService(repos, log),
		Taxonomy: newTaxonomyService(repos, log),
	}
}
