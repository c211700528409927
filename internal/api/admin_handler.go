package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/content-publish-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdminHandler handles authenticated admin endpoints
type AdminHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(services *service.Services, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		log:      log.With().Str("handler", "admin").Logger(),
	}
}

// ListArticles handles GET /api/admin/articles, drafts included
func (h *AdminHandler) ListArticles(c *gin.Context) {
	articles, err := h.services.Article.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// ToggleStatus handles POST /api/admin/articles/:id/status, flipping an
// article between draft and published
func (h *AdminHandler) ToggleStatus(c *gin.Context) {
	id := c.Param("id")

	article, err := h.services.Article.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		h.log.Error().Err(err).Str("article_id", id).Msg("Failed to toggle status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// DeleteArticle handles DELETE /api/admin/articles/:id
func (h *AdminHandler) DeleteArticle(c *gin.Context) {
	id := c.Param("id")

	if err := h.services.Article.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		h.log.Error().Err(err).Str("article_id", id).Msg("Failed to delete article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListImports handles GET /api/admin/imports, the import audit trail
func (h *AdminHandler) ListImports(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	records, err := h.services.Import.ListRecords(c.Request.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list imports")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list imports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imports": records})
}
