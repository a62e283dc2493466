package handler

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"wedding-site/internal/models"
	"wedding-site/internal/storage"
	"wedding-site/internal/wish"
)

// NewRouter wires all API routes. The invitation site is served from a
// separate origin, so CORS is open to everyone.
func NewRouter(store storage.Store, site *models.SiteContent, wisher wish.Generator, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(requestLogger(log))

	g := NewGuestHandler(store, log.With().Str("component", "guest-api").Logger())
	c := NewContentHandler(site)
	w := NewWishHandler(wisher)

	api := r.Group("/api")
	api.GET("/guest/:code", g.GetGuest)
	api.POST("/guest/:code/rsvp", g.SubmitRSVP)
	api.POST("/rsvp", g.LegacyRSVP)

	api.GET("/content", c.GetContent)
	api.GET("/content/schedule", c.GetSchedule)
	api.GET("/content/faqs", c.GetFaqs)
	api.GET("/content/registry", c.GetRegistry)

	api.POST("/wish", w.GenerateWish)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

// requestLogger tags every request with an ID and logs its outcome.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Header("X-Request-Id", id)
		start := time.Now()
		c.Next()
		log.Info().
			Str("requestId", id).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}
