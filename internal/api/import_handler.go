package api

import (
	"errors"
	"net/http"

	"github.com/content-publish-api/internal/importer"
	"github.com/content-publish-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ImportHandler handles the import endpoint
type ImportHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(services *service.Services, log zerolog.Logger) *ImportHandler {
	return &ImportHandler{
		services: services,
		log:      log.With().Str("handler", "import").Logger(),
	}
}

type importRequest struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// Create handles POST /api/import. The request is parsed into a Source
// variant once at this boundary; everything downstream dispatches over the
// two valid variants.
func (h *ImportHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	src, err := importer.ParseSource(req.Type, req.Content, req.URL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.services.Import.Import(ctx, src)
	if err != nil {
		var fetchErr *importer.FetchError
		var persistErr *service.PersistenceError
		switch {
		case errors.As(err, &fetchErr):
			// Extraction failed before anything was written
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		case errors.As(err, &persistErr):
			// Detailed cause lives in the import audit record
			h.log.Error().Err(err).Str("source_ref", src.SourceRef()).Msg("Import persistence failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save imported article"})
		default:
			h.log.Error().Err(err).Msg("Import failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	h.log.Info().
		Str("article_id", article.ID).
		Str("slug", article.Slug).
		Str("type", req.Type).
		Msg("Import succeeded")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "import completed",
		"article": article,
	})
}
