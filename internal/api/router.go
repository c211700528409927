package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/content-publish-api/internal/auth"
	"github.com/content-publish-api/internal/config"
	"github.com/content-publish-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const actorContextKey = "actor"

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, verifier auth.Verifier, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(actorMiddleware(verifier, log))

	// Handlers
	importHandler := NewImportHandler(services, log)
	articleHandler := NewArticleHandler(services, log)
	adminHandler := NewAdminHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	api := router.Group("/api")
	{
		api.POST("/import", requireActor(), importHandler.Create)

		api.GET("/articles", articleHandler.List)
		api.GET("/articles/:slug", articleHandler.GetBySlug)
		api.GET("/categories", articleHandler.ListCategories)
		api.GET("/categories/:slug/articles", articleHandler.ListByCategory)
		api.GET("/tags", articleHandler.ListTags)
		api.GET("/tags/:name/articles", articleHandler.ListByTag)

		admin := api.Group("/admin", requireActor())
		{
			admin.GET("/articles", adminHandler.ListArticles)
			admin.POST("/articles/:id/status", adminHandler.ToggleStatus)
			admin.DELETE("/articles/:id", adminHandler.DeleteArticle)
			admin.GET("/imports", adminHandler.ListImports)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "content-publish-api",
	})
}

// actorMiddleware resolves an optional bearer token to an actor. Requests
// without a valid token continue anonymously; handlers that need an actor
// add requireActor.
func actorMiddleware(verifier auth.Verifier, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if ok && token != "" {
			actor, err := verifier.Verify(c.Request.Context(), token)
			if err != nil {
				log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Token rejected")
			} else {
				c.Set(actorContextKey, actor)
			}
		}
		c.Next()
	}
}

// requireActor aborts with 401 when no authenticated actor is present
func requireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentActor(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// currentActor returns the authenticated actor for the request, or nil
func currentActor(c *gin.Context) *auth.Actor {
	v, exists := c.Get(actorContextKey)
	if !exists {
		return nil
	}
	actor, _ := v.(*auth.Actor)
	return actor
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
