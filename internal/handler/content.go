package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-site/internal/models"
)

// ContentHandler serves the read-only site content loaded at startup.
type ContentHandler struct {
	site *models.SiteContent
}

func NewContentHandler(site *models.SiteContent) *ContentHandler {
	return &ContentHandler{site: site}
}

func (h *ContentHandler) GetContent(c *gin.Context) {
	c.JSON(http.StatusOK, h.site)
}

func (h *ContentHandler) GetSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, h.site.Schedule)
}

func (h *ContentHandler) GetFaqs(c *gin.Context) {
	c.JSON(http.StatusOK, h.site.Faqs)
}

func (h *ContentHandler) GetRegistry(c *gin.Context) {
	c.JSON(http.StatusOK, h.site.Registry)
}
