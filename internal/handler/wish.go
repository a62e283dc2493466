package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-site/internal/wish"
)

// WishHandler drafts guestbook wish messages. Generation never fails from
// the client's point of view; the generator falls back to a canned sentence.
type WishHandler struct {
	gen wish.Generator
}

func NewWishHandler(gen wish.Generator) *WishHandler {
	return &WishHandler{gen: gen}
}

type wishRequest struct {
	Relationship string `json:"relationship"`
	Tone         string `json:"tone"`
}

func (h *WishHandler) GenerateWish(c *gin.Context) {
	var req wishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	message := h.gen.Generate(c.Request.Context(), req.Relationship, req.Tone)
	c.JSON(http.StatusOK, gin.H{"message": message})
}
