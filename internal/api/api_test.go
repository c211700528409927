package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/content-publish-api/internal/api"
	"github.com/content-publish-api/internal/auth"
	"github.com/content-publish-api/internal/config"
	"github.com/content-publish-api/internal/importer"
	"github.com/content-publish-api/internal/mocks"
	"github.com/content-publish-api/internal/models"
	"github.com/content-publish-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const testToken = "test-token"

func setupTestRouter() (*gin.Engine, *mocks.MockImportService, *mocks.MockArticleService, *mocks.MockTaxonomyService) {
	gin.SetMode(gin.TestMode)

	mockImport := mocks.NewMockImportService()
	mockArticle := mocks.NewMockArticleService()
	mockArticle.NotFoundErr = service.ErrArticleNotFound
	mockTaxonomy := mocks.NewMockTaxonomyService()

	services := &service.Services{
		Import:   mockImport,
		Article:  mockArticle,
		Taxonomy: mockTaxonomy,
	}

	verifier := auth.NewStaticVerifier([]string{testToken + ":admin@example.com"})
	cfg := &config.Config{Server: config.ServerConfig{Port: "8080"}}
	log := zerolog.Nop()

	router := api.NewRouter(services, verifier, cfg, log)
	return router, mockImport, mockArticle, mockTaxonomy
}

func doJSON(router *gin.Engine, method, path, body, token, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	w := doJSON(router, "GET", "/health", "", "", "")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "content-publish-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestImport_RequiresAuth(t *testing.T) {
	router, mockImport, _, _ := setupTestRouter()

	w := doJSON(router, "POST", "/api/import", `{"type":"markdown","content":"# T"}`, "", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
	if mockImport.ImportCalls != 0 {
		t.Error("Import must not run without an actor")
	}

	// An unknown token is still anonymous
	w = doJSON(router, "POST", "/api/import", `{"type":"markdown","content":"# T"}`, "wrong-token", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for bad token, got %d", w.Code)
	}
}

func TestImport_ValidationErrors(t *testing.T) {
	router, mockImport, _, _ := setupTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{"blank content", `{"type":"markdown","content":"   "}`},
		{"missing content", `{"type":"markdown"}`},
		{"blank url", `{"type":"url","url":""}`},
		{"unknown type", `{"type":"rss","url":"https://example.com"}`},
		{"malformed json", `{"type":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, "POST", "/api/import", tt.body, testToken, "")
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}
		})
	}

	if mockImport.ImportCalls != 0 {
		t.Error("Invalid requests must not reach the import service")
	}
}

func TestImport_Success(t *testing.T) {
	router, mockImport, _, _ := setupTestRouter()
	mockImport.ImportFunc = func(ctx context.Context, src importer.Source) (*models.Article, error) {
		return &models.Article{ID: "a1", Slug: "my-title", Title: "My Title", Status: models.StatusDraft}, nil
	}

	w := doJSON(router, "POST", "/api/import", `{"type":"markdown","content":"# My Title\n\nbody"}`, testToken, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response struct {
		Success bool            `json:"success"`
		Article *models.Article `json:"article"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if !response.Success {
		t.Error("Expected success=true")
	}
	if response.Article == nil || response.Article.Slug != "my-title" {
		t.Errorf("Unexpected article in response: %+v", response.Article)
	}

	if _, ok := mockImport.LastSource.(importer.MarkdownSource); !ok {
		t.Errorf("Expected MarkdownSource, got %T", mockImport.LastSource)
	}
}

func TestImport_URLSourceParsed(t *testing.T) {
	router, mockImport, _, _ := setupTestRouter()

	w := doJSON(router, "POST", "/api/import", `{"type":"url","url":"https://example.com/post"}`, testToken, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	src, ok := mockImport.LastSource.(importer.URLSource)
	if !ok {
		t.Fatalf("Expected URLSource, got %T", mockImport.LastSource)
	}
	if src.URL != "https://example.com/post" {
		t.Errorf("Unexpected URL: %s", src.URL)
	}
}

func TestImport_FetchErrorSurfaced(t *testing.T) {
	router, mockImport, _, _ := setupTestRouter()
	mockImport.ImportFunc = func(ctx context.Context, src importer.Source) (*models.Article, error) {
		return nil, &importer.FetchError{URL: "https://example.com/gone", StatusCode: 404}
	}

	w := doJSON(router, "POST", "/api/import", `{"type":"url","url":"https://example.com/gone"}`, testToken, "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "HTTP 404") {
		t.Errorf("Fetch failure should surface the HTTP status, got %s", w.Body.String())
	}
}

func TestImport_PersistenceErrorGenericMessage(t *testing.T) {
	router, mockImport, _, _ := setupTestRouter()
	mockImport.ImportFunc = func(ctx context.Context, src importer.Source) (*models.Article, error) {
		return nil, &service.PersistenceError{Op: "create article", Err: errors.New("duplicate key on idx_articles_slug")}
	}

	w := doJSON(router, "POST", "/api/import", `{"type":"markdown","content":"# T"}`, testToken, "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
	// The detailed cause stays in the audit record, not the response
	if strings.Contains(w.Body.String(), "duplicate key") {
		t.Errorf("Persistence detail leaked into response: %s", w.Body.String())
	}
}

func TestGetArticle_FreeReadFlow(t *testing.T) {
	router, _, mockArticle, _ := setupTestRouter()
	mockArticle.Articles["free-post"] = &models.Article{ID: "a1", Slug: "free-post", Status: models.StatusPublished}

	// First anonymous read is allowed and spends the free read
	w := doJSON(router, "GET", "/api/articles/free-post", "", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for first read, got %d", w.Code)
	}
	setCookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, "firstFreeReadUsed=true") {
		t.Fatalf("First read should set the free-read cookie, got %q", setCookie)
	}

	// Second anonymous read with the flag is denied
	w = doJSON(router, "GET", "/api/articles/free-post", "", "", "firstFreeReadUsed=true")
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for second read, got %d", w.Code)
	}

	// Authenticated reads ignore the flag
	w = doJSON(router, "GET", "/api/articles/free-post", "", testToken, "firstFreeReadUsed=true")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for authenticated read, got %d", w.Code)
	}
	if cookie := w.Header().Get("Set-Cookie"); cookie != "" {
		t.Errorf("Authenticated read must not touch the flag, got %q", cookie)
	}
}

func TestGetArticle_NotFoundDoesNotSpendFreeRead(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	w := doJSON(router, "GET", "/api/articles/missing", "", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
	if cookie := w.Header().Get("Set-Cookie"); strings.Contains(cookie, "firstFreeReadUsed=true") {
		t.Errorf("A missed read must not spend the free read, got %q", cookie)
	}
}

func TestListArticles(t *testing.T) {
	router, _, mockArticle, _ := setupTestRouter()
	mockArticle.AllArticles = []*models.Article{
		{ID: "a1", Slug: "one", Status: models.StatusPublished},
		{ID: "a2", Slug: "two", Status: models.StatusPublished},
	}

	w := doJSON(router, "GET", "/api/articles", "", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Articles []*models.Article `json:"articles"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if len(response.Articles) != 2 {
		t.Errorf("Expected 2 articles, got %d", len(response.Articles))
	}

	// Bad limit
	w = doJSON(router, "GET", "/api/articles?limit=abc", "", "", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for bad limit, got %d", w.Code)
	}
}

func TestAdminEndpoints_RequireAuth(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/admin/articles"},
		{"POST", "/api/admin/articles/a1/status"},
		{"DELETE", "/api/admin/articles/a1"},
		{"GET", "/api/admin/imports"},
	}

	for _, p := range paths {
		w := doJSON(router, p.method, p.path, "", "", "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", p.method, p.path, w.Code)
		}
	}
}

func TestAdminToggleStatus(t *testing.T) {
	router, _, mockArticle, _ := setupTestRouter()
	mockArticle.ToggleFunc = func(ctx context.Context, id string) (*models.Article, error) {
		if id != "a1" {
			return nil, service.ErrArticleNotFound
		}
		return &models.Article{ID: "a1", Slug: "one", Status: models.StatusPublished}, nil
	}

	w := doJSON(router, "POST", "/api/admin/articles/a1/status", "", testToken, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	w = doJSON(router, "POST", "/api/admin/articles/nope/status", "", testToken, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestAdminListImports(t *testing.T) {
	router, mockImport, _, _ := setupTestRouter()
	mockImport.Records = []*models.ImportRecord{
		{ID: "i1", SourceType: models.SourceMarkdown, Status: models.ImportStatusSuccess},
		{ID: "i2", SourceType: models.SourceURL, Status: models.ImportStatusError, Message: "HTTP 404"},
	}

	w := doJSON(router, "GET", "/api/admin/imports", "", testToken, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Imports []*models.ImportRecord `json:"imports"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if len(response.Imports) != 2 {
		t.Errorf("Expected 2 import records, got %d", len(response.Imports))
	}
}

func TestListCategoriesAndTags(t *testing.T) {
	router, _, _, mockTaxonomy := setupTestRouter()
	mockTaxonomy.Categories = []*models.Category{{ID: "c1", Slug: "tech", Name: "Tech"}}
	mockTaxonomy.Tags = []*models.Tag{{ID: "t1", Name: "go"}}

	w := doJSON(router, "GET", "/api/categories", "", "", "")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	w = doJSON(router, "GET", "/api/tags", "", "", "")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}
