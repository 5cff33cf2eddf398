package handlers

import (
	"net/http"

	"bistro-boss-api/models"

	"github.com/gin-gonic/gin"
)

// ListReviews returns all customer reviews (public).
func (h *Handler) ListReviews(c *gin.Context) {
	var reviews []models.Review
	if err := h.DB.Order("created_at desc").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
