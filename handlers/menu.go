package handlers

import (
	"net/http"
	"time"

	"bistro-boss-api/models"

	"github.com/gin-gonic/gin"
)

const menuCacheKey = "menu:all"

// ListMenu returns the full catalog (public). The listing is cached because
// it is the hottest read on the site and changes only on admin mutations.
func (h *Handler) ListMenu(c *gin.Context) {
	var items []models.MenuItem
	if h.Cache.Get(c.Request.Context(), menuCacheKey, &items) {
		c.JSON(http.StatusOK, items)
		return
	}

	if err := h.DB.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load menu"})
		return
	}
	_ = h.Cache.Set(c.Request.Context(), menuCacheKey, items, 5*time.Minute)
	c.JSON(http.StatusOK, items)
}

// GetMenuItem returns a single catalog entry.
func (h *Handler) GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := h.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

type MenuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price" binding:"gte=0"`
	Image    string  `json:"image"`
	Recipe   string  `json:"recipe"`
}

// AddMenuItem creates a catalog entry (admin only).
func (h *Handler) AddMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	item := models.MenuItem{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Image:    req.Image,
		Recipe:   req.Recipe,
	}
	if err := h.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to add menu item"})
		return
	}
	_ = h.Cache.Del(c.Request.Context(), menuCacheKey)
	c.JSON(http.StatusOK, gin.H{"insertedId": item.ID})
}

// UpdateMenuItem overwrites the mutable fields of a catalog entry (admin
// only). Matching zero rows is a 200 with matchedCount 0, not an error.
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	res := h.DB.Model(&models.MenuItem{}).Where("id = ?", c.Param("id")).Updates(map[string]interface{}{
		"name":     req.Name,
		"category": req.Category,
		"price":    req.Price,
		"image":    req.Image,
		"recipe":   req.Recipe,
	})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update menu item"})
		return
	}
	_ = h.Cache.Del(c.Request.Context(), menuCacheKey)
	c.JSON(http.StatusOK, gin.H{"matchedCount": res.RowsAffected, "modifiedCount": res.RowsAffected})
}

// DeleteMenuItem removes a catalog entry (admin only).
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	res := h.DB.Where("id = ?", c.Param("id")).Delete(&models.MenuItem{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete menu item"})
		return
	}
	_ = h.Cache.Del(c.Request.Context(), menuCacheKey)
	c.JSON(http.StatusOK, gin.H{"deletedCount": res.RowsAffected})
}
