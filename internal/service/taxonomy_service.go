package service

import (
	"context"

	"github.com/content-publish-api/internal/models"
	"github.com/content-publish-api/internal/repository"
	"github.com/rs/zerolog"
)

// taxonomyService is the concrete implementation of TaxonomyService
type taxonomyService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newTaxonomyService(repos *repository.Repositories, log zerolog.Logger) *taxonomyService {
	return &taxonomyService{
		repos: repos,
		log:   log.With().Str("service", "taxonomy").Logger(),
	}
}

// ListCategories retrieves all categories ordered by name
func (s *taxonomyService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.repos.Category.List(ctx)
}

// ListTags retrieves all tags ordered by name
func (s *taxonomyService) ListTags(ctx context.Context) ([]*models.Tag, error) {
	return s.repos.Tag.List(ctx)
}
