package handlers

import (
	"net/http"

	"bistro-boss-api/models"

	"github.com/gin-gonic/gin"
)

// ListCart returns the cart entries for the email given as a query param.
func (h *Handler) ListCart(c *gin.Context) {
	var items []models.CartItem
	if err := h.DB.Where("email = ?", c.Query("email")).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type AddCartItemRequest struct {
	Email      string  `json:"email" binding:"required,email"`
	MenuItemID uint    `json:"menuItemId" binding:"required"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price" binding:"gte=0"`
}

// AddCartItem puts a menu item into a cart, snapshotting its price.
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	item := models.CartItem{
		Email:      req.Email,
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
	}
	if err := h.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to add cart item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": item.ID})
}

// RemoveCartItem deletes one cart entry. Deleting an already-absent entry
// reports deletedCount 0 and succeeds.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	res := h.DB.Where("id = ?", c.Param("id")).Delete(&models.CartItem{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to remove cart item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": res.RowsAffected})
}
