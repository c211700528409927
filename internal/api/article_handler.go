package api

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/content-publish-api/internal/gate"
	"github.com/content-publish-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArticleHandler handles public article and taxonomy reads
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// List handles GET /api/articles
func (h *ArticleHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	articles, err := h.services.Article.ListPublished(ctx, limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetBySlug handles GET /api/articles/:slug. Anonymous readers pass
// through the free-read gate: the first gated read is allowed and marks
// the visitor's flag before the body is written; later reads are denied.
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	ctx := c.Request.Context()

	slug := c.Param("slug")
	if decoded, err := url.PathUnescape(slug); err == nil {
		slug = decoded
	}

	actor := currentActor(c)
	g := gate.New(newCookieStorage(c))

	if !g.CanRead(actor != nil) {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "login required",
			"message": "only one article can be read for free; log in to continue reading",
		})
		return
	}

	article, err := h.services.Article.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		h.log.Error().Err(err).Str("slug", slug).Msg("Failed to get article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get article"})
		return
	}

	// Spend the free read before the content goes out
	if actor == nil {
		g.MarkFreeReadUsed()
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// ListCategories handles GET /api/categories
func (h *ArticleHandler) ListCategories(c *gin.Context) {
	categories, err := h.services.Taxonomy.ListCategories(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListByCategory handles GET /api/categories/:slug/articles
func (h *ArticleHandler) ListByCategory(c *gin.Context) {
	articles, err := h.services.Article.ListByCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.log.Error().Err(err).Str("category", c.Param("slug")).Msg("Failed to list articles by category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// ListTags handles GET /api/tags
func (h *ArticleHandler) ListTags(c *gin.Context) {
	tags, err := h.services.Taxonomy.ListTags(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list tags")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tags"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// ListByTag handles GET /api/tags/:name/articles
func (h *ArticleHandler) ListByTag(c *gin.Context) {
	name := c.Param("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	articles, err := h.services.Article.ListByTag(c.Request.Context(), name)
	if err != nil {
		h.log.Error().Err(err).Str("tag", name).Msg("Failed to list articles by tag")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}
