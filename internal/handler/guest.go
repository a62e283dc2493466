package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"wedding-site/internal/storage"
	"wedding-site/internal/validate"
)

// GuestHandler exposes the guest lookup and RSVP update operations.
type GuestHandler struct {
	store storage.Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewGuestHandler creates a guest handler backed by the given store.
func NewGuestHandler(store storage.Store, log zerolog.Logger) *GuestHandler {
	return &GuestHandler{store: store, log: log, now: time.Now}
}

// GetGuest handles GET /api/guest/:code.
func (h *GuestHandler) GetGuest(c *gin.Context) {
	code := c.Param("code")
	guest, err := h.store.GetByCode(c.Request.Context(), code)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid invitation code"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("code", code).Msg("failed to fetch guest")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, guest)
}

// SubmitRSVP handles POST /api/guest/:code/rsvp. The submitted member list
// replaces the stored one; the optional rsvp object is field-merged.
func (h *GuestHandler) SubmitRSVP(c *gin.Context) {
	code := c.Param("code")

	var sub validate.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validate.Check(sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest, err := h.store.Update(c.Request.Context(), code, validate.Normalize(sub, h.now()))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("code", code).Msg("failed to update rsvp")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	h.log.Info().Str("code", guest.Code).Msg("rsvp updated")
	c.JSON(http.StatusOK, gin.H{"success": true, "guest": guest})
}

// LegacyRSVP handles POST /api/rsvp, the code-less path kept for invitations
// sent before personalized links existed. The body is accepted and
// discarded.
func (h *GuestHandler) LegacyRSVP(c *gin.Context) {
	h.log.Info().Msg("generic rsvp submission received")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
