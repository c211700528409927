package service

import (
	"context"
	"errors"
	"time"

	"github.com/content-publish-api/internal/models"
	"github.com/content-publish-api/internal/repository"
	"github.com/rs/zerolog"
)

// ErrArticleNotFound is returned when an article id or slug matches nothing
var ErrArticleNotFound = errors.New("article not found")

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repos *repository.Repositories
	log   zerolog.Logger
	now   func() time.Time
}

// newArticleService creates a new ArticleService
func newArticleService(repos *repository.Repositories, log zerolog.Logger) *articleService {
	return &articleService{
		repos: repos,
		log:   log.With().Str("service", "article").Logger(),
		now:   time.Now,
	}
}

// GetPublishedBySlug retrieves one published article
func (s *articleService) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	article, err := s.repos.Article.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// ListPublished retrieves published articles, newest first
func (s *articleService) ListPublished(ctx context.Context, limit int) ([]*models.Article, error) {
	return s.repos.Article.ListPublished(ctx, limit)
}

// ListByCategory retrieves published articles in a category
func (s *articleService) ListByCategory(ctx context.Context, categorySlug string) ([]*models.Article, error) {
	return s.repos.Article.ListByCategorySlug(ctx, categorySlug)
}

// ListByTag retrieves published articles carrying a tag
func (s *articleService) ListByTag(ctx context.Context, tagName string) ([]*models.Article, error) {
	return s.repos.Article.ListByTagName(ctx, tagName)
}

// ListAll retrieves every article including drafts for the admin panel
func (s *articleService) ListAll(ctx context.Context) ([]*models.Article, error) {
	return s.repos.Article.ListAll(ctx)
}

// ToggleStatus flips an article between draft and published. The publish
// time is set on the draft-to-published transition and kept on unpublish.
func (s *articleService) ToggleStatus(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	newStatus := models.StatusPublished
	var publishedAt *time.Time
	if article.Status == models.StatusPublished {
		newStatus = models.StatusDraft
	} else {
		now := s.now()
		publishedAt = &now
	}

	if err := s.repos.Article.UpdateStatus(ctx, id, newStatus, publishedAt); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("article_id", id).
		Str("status", string(newStatus)).
		Msg("Article status updated")

	article.Status = newStatus
	if publishedAt != nil {
		article.PublishedAt = publishedAt
	}
	return article, nil
}

// Delete removes an article
func (s *articleService) Delete(ctx context.Context, id string) error {
	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrArticleNotFound
	}

	if err := s.repos.Article.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("article_id", id).Str("slug", article.Slug).Msg("Article deleted")
	return nil
}
