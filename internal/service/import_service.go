package service

import (
	"context"
	"fmt"
	"time"

	"github.com/content-publish-api/internal/importer"
	"github.com/content-publish-api/internal/models"
	"github.com/content-publish-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// urlExtractor abstracts the remote fetch so tests can avoid the network
type urlExtractor interface {
	ExtractFromURL(url string) (*importer.Result, error)
}

// importService is the concrete implementation of ImportService
type importService struct {
	repos     *repository.Repositories
	extractor urlExtractor
	log       zerolog.Logger
	now       func() time.Time
}

// newImportService creates a new ImportService
func newImportService(repos *repository.Repositories, extractor urlExtractor, log zerolog.Logger) *importService {
	return &importService{
		repos:     repos,
		extractor: extractor,
		log:       log.With().Str("service", "import").Logger(),
		now:       time.Now,
	}
}

// Import runs the pipeline for one source: extract, resolve the slug,
// record a pending audit row, persist the draft article, and finalize the
// audit row. Extraction failures propagate before anything is written;
// persistence failures after that point leave a permanent error-status
// import record.
func (s *importService) Import(ctx context.Context, src importer.Source) (*models.Article, error) {
	result, err := s.extract(src)
	if err != nil {
		s.log.Warn().Err(err).Str("source_ref", src.SourceRef()).Msg("Extraction failed")
		return nil, err
	}

	slug, err := s.resolveSlug(ctx, result.Slug)
	if err != nil {
		return nil, err
	}

	record := &models.ImportRecord{
		ID:         uuid.New().String(),
		SourceType: src.SourceType(),
		SourceRef:  src.SourceRef(),
		Status:     models.ImportStatusPending,
		CreatedAt:  s.now(),
	}
	if err := s.repos.Import.Create(ctx, record); err != nil {
		return nil, &PersistenceError{Op: "create import record", Err: err}
	}

	now := s.now()
	article := &models.Article{
		ID:          uuid.New().String(),
		Slug:        slug,
		Title:       result.Title,
		ContentMD:   result.ContentMD,
		ContentHTML: result.ContentHTML,
		Status:      models.StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.writeArticle(ctx, record, article); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("article_id", article.ID).
		Str("slug", article.Slug).
		Str("source_type", string(src.SourceType())).
		Msg("Import completed")

	return article, nil
}

// ListRecords retrieves the most recent import audit rows
func (s *importService) ListRecords(ctx context.Context, limit int) ([]*models.ImportRecord, error) {
	return s.repos.Import.List(ctx, limit)
}

// extract dispatches to the importer matching the source variant
func (s *importService) extract(src importer.Source) (*importer.Result, error) {
	switch v := src.(type) {
	case importer.MarkdownSource:
		return importer.ProcessMarkdown(v.Content), nil
	case importer.URLSource:
		return s.extractor.ExtractFromURL(v.URL)
	default:
		return nil, fmt.Errorf("unsupported source %T", src)
	}
}

// resolveSlug suffixes the slug with the current Unix millisecond when an
// article already holds it. Coarse de-duplication: two imports of the same
// title in the same millisecond can still collide, which is accepted since
// slugs only need practical uniqueness.
func (s *importService) resolveSlug(ctx context.Context, slug string) (string, error) {
	exists, err := s.repos.Article.SlugExists(ctx, slug)
	if err != nil {
		return "", &PersistenceError{Op: "check slug", Err: err}
	}
	if !exists {
		return slug, nil
	}

	suffixed := fmt.Sprintf("%s-%d", slug, s.now().UnixMilli())
	s.log.Debug().Str("slug", slug).Str("resolved", suffixed).Msg("Slug collision resolved")
	return suffixed, nil
}

// writeArticle persists the draft and finalizes the pending import record.
// The finalization runs in a defer, so the audit row reaches a terminal
// state even if the article write fails. A failed record update is logged
// but does not mask the primary outcome.
func (s *importService) writeArticle(ctx context.Context, record *models.ImportRecord, article *models.Article) (err error) {
	defer func() {
		if err != nil {
			if ferr := s.repos.Import.MarkError(ctx, record.ID, err.Error()); ferr != nil {
				s.log.Error().Err(ferr).Str("import_id", record.ID).Msg("Failed to finalize import record")
			}
			return
		}
		if ferr := s.repos.Import.MarkSuccess(ctx, record.ID, article.ID); ferr != nil {
			s.log.Error().Err(ferr).Str("import_id", record.ID).Msg("Failed to finalize import record")
		}
	}()

	if createErr := s.repos.Article.Create(ctx, article); createErr != nil {
		err = &PersistenceError{Op: "create article", Err: createErr}
	}
	return err
}
