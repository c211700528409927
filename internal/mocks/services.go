package mocks

import (
	"context"

	"github.com/content-publish-api/internal/importer"
	"github.com/content-publish-api/internal/models"
)

// MockImportService is a mock implementation of service.ImportService
type MockImportService struct {
	ImportFunc  func(ctx context.Context, src importer.Source) (*models.Article, error)
	Records     []*models.ImportRecord
	ImportCalls int
	LastSource  importer.Source
}

func NewMockImportService() *MockImportService {
	return &MockImportService{}
}

func (m *MockImportService) Import(ctx context.Context, src importer.Source) (*models.Article, error) {
	m.ImportCalls++
	m.LastSource = src
	if m.ImportFunc != nil {
		return m.ImportFunc(ctx, src)
	}
	return &models.Article{ID: "article-1", Slug: "imported", Status: models.StatusDraft}, nil
}

func (m *MockImportService) ListRecords(ctx context.Context, limit int) ([]*models.ImportRecord, error) {
	if limit > 0 && len(m.Records) > limit {
		return m.Records[:limit], nil
	}
	return m.Records, nil
}

// MockArticleService is a mock implementation of service.ArticleService.
// NotFoundErr is returned for misses so tests can inject the service's
// sentinel without this package depending on it.
type MockArticleService struct {
	Articles     map[string]*models.Article // keyed by slug
	AllArticles  []*models.Article
	NotFoundErr  error
	GetError     error
	ListError    error
	ToggleFunc   func(ctx context.Context, id string) (*models.Article, error)
	DeleteError  error
	DeletedIDs   []string
	GetBySlugLog []string
}

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{
		Articles: make(map[string]*models.Article),
	}
}

func (m *MockArticleService) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	m.GetBySlugLog = append(m.GetBySlugLog, slug)
	if m.GetError != nil {
		return nil, m.GetError
	}
	if a, ok := m.Articles[slug]; ok {
		return a, nil
	}
	return nil, m.NotFoundErr
}

func (m *MockArticleService) ListPublished(ctx context.Context, limit int) ([]*models.Article, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	if limit > 0 && len(m.AllArticles) > limit {
		return m.AllArticles[:limit], nil
	}
	return m.AllArticles, nil
}

func (m *MockArticleService) ListByCategory(ctx context.Context, categorySlug string) ([]*models.Article, error) {
	return m.AllArticles, m.ListError
}

func (m *MockArticleService) ListByTag(ctx context.Context, tagName string) ([]*models.Article, error) {
	return m.AllArticles, m.ListError
}

func (m *MockArticleService) ListAll(ctx context.Context) ([]*models.Article, error) {
	return m.AllArticles, m.ListError
}

func (m *MockArticleService) ToggleStatus(ctx context.Context, id string) (*models.Article, error) {
	if m.ToggleFunc != nil {
		return m.ToggleFunc(ctx, id)
	}
	return nil, m.NotFoundErr
}

func (m *MockArticleService) Delete(ctx context.Context, id string) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.DeletedIDs = append(m.DeletedIDs, id)
	return nil
}

// MockTaxonomyService is a mock implementation of service.TaxonomyService
type MockTaxonomyService struct {
	Categories []*models.Category
	Tags       []*models.Tag
}

func NewMockTaxonomyService() *MockTaxonomyService {
	return &MockTaxonomyService{}
}

func (m *MockTaxonomyService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return m.Categories, nil
}

func (m *MockTaxonomyService) ListTags(ctx context.Context) ([]*models.Tag, error) {
	return m.Tags, nil
}
