package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/content-publish-api/internal/models"
)

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Articles    map[string]*models.Article
	CreateError error
	SlugError   error
	CreateCalls int
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[string]*models.Article),
	}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	m.CreateCalls++
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Articles[article.ID] = article
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return m.Articles[id], nil
}

func (m *MockArticleRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	for _, a := range m.Articles {
		if a.Slug == slug && a.Status == models.StatusPublished {
			return a, nil
		}
	}
	return nil, nil
}

func (m *MockArticleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.SlugError != nil {
		return false, m.SlugError
	}
	for _, a := range m.Articles {
		if a.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockArticleRepository) ListPublished(ctx context.Context, limit int) ([]*models.Article, error) {
	var articles []*models.Article
	for _, a := range m.Articles {
		if a.Status == models.StatusPublished {
			articles = append(articles, a)
		}
	}
	sortByPublishedAtDesc(articles)
	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}

func (m *MockArticleRepository) ListByCategorySlug(ctx context.Context, categorySlug string) ([]*models.Article, error) {
	var articles []*models.Article
	for _, a := range m.Articles {
		if a.Status == models.StatusPublished && a.Category != nil && a.Category.Slug == categorySlug {
			articles = append(articles, a)
		}
	}
	sortByPublishedAtDesc(articles)
	return articles, nil
}

func (m *MockArticleRepository) ListByTagName(ctx context.Context, tagName string) ([]*models.Article, error) {
	// Tag joins are not modeled in the mock; override per test when needed
	return nil, nil
}

func (m *MockArticleRepository) ListAll(ctx context.Context) ([]*models.Article, error) {
	var articles []*models.Article
	for _, a := range m.Articles {
		articles = append(articles, a)
	}
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
	return articles, nil
}

func (m *MockArticleRepository) UpdateStatus(ctx context.Context, id string, status models.ArticleStatus, publishedAt *time.Time) error {
	a, ok := m.Articles[id]
	if !ok {
		return nil
	}
	a.Status = status
	if publishedAt != nil {
		a.PublishedAt = publishedAt
	}
	return nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id string) error {
	delete(m.Articles, id)
	return nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	return len(m.Articles), nil
}

func sortByPublishedAtDesc(articles []*models.Article) {
	sort.Slice(articles, func(i, j int) bool {
		var ti, tj time.Time
		if articles[i].PublishedAt != nil {
			ti = *articles[i].PublishedAt
		}
		if articles[j].PublishedAt != nil {
			tj = *articles[j].PublishedAt
		}
		return ti.After(tj)
	})
}

// MockImportRepository is a mock implementation of ImportRepository
type MockImportRepository struct {
	Records       map[string]*models.ImportRecord
	CreateError   error
	FinalizeError error
	CreateOrder   []string
}

func NewMockImportRepository() *MockImportRepository {
	return &MockImportRepository{
		Records: make(map[string]*models.ImportRecord),
	}
}

func (m *MockImportRepository) Create(ctx context.Context, record *models.ImportRecord) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	clone := *record
	m.Records[record.ID] = &clone
	m.CreateOrder = append(m.CreateOrder, record.ID)
	return nil
}

func (m *MockImportRepository) MarkSuccess(ctx context.Context, id, articleID string) error {
	if m.FinalizeError != nil {
		return m.FinalizeError
	}
	if r, ok := m.Records[id]; ok && r.Status == models.ImportStatusPending {
		r.Status = models.ImportStatusSuccess
		r.ArticleID = &articleID
	}
	return nil
}

func (m *MockImportRepository) MarkError(ctx context.Context, id, message string) error {
	if m.FinalizeError != nil {
		return m.FinalizeError
	}
	if r, ok := m.Records[id]; ok && r.Status == models.ImportStatusPending {
		r.Status = models.ImportStatusError
		r.Message = message
	}
	return nil
}

func (m *MockImportRepository) GetByID(ctx context.Context, id string) (*models.ImportRecord, error) {
	return m.Records[id], nil
}

func (m *MockImportRepository) List(ctx context.Context, limit int) ([]*models.ImportRecord, error) {
	var records []*models.ImportRecord
	for i := len(m.CreateOrder) - 1; i >= 0; i-- {
		if r, ok := m.Records[m.CreateOrder[i]]; ok {
			records = append(records, r)
		}
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	Categories []*models.Category
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{}
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	return m.Categories, nil
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for _, c := range m.Categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

// MockTagRepository is a mock implementation of TagRepository
type MockTagRepository struct {
	Tags []*models.Tag
}

func NewMockTagRepository() *MockTagRepository {
	return &MockTagRepository{}
}

func (m *MockTagRepository) List(ctx context.Context) ([]*models.Tag, error) {
	return m.Tags, nil
}

func (m *MockTagRepository) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	for _, t := range m.Tags {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}
