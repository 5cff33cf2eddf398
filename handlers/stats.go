package handlers

import (
	"net/http"

	"bistro-boss-api/models"

	"github.com/gin-gonic/gin"
)

// AdminStats returns the dashboard headline numbers. Counts are plain
// COUNT(*); they only need to be as accurate as an estimate. Revenue is the
// sum of all ledger amounts, 0 when the ledger is empty.
func (h *Handler) AdminStats(c *gin.Context) {
	var users, menuItems, orders int64
	h.DB.Model(&models.User{}).Count(&users)
	h.DB.Model(&models.MenuItem{}).Count(&menuItems)
	h.DB.Model(&models.Payment{}).Count(&orders)

	var revenue float64
	err := h.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenue).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":     users,
		"menuItems": menuItems,
		"orders":    orders,
		"revenue":   revenue,
	})
}

// CategorySales is one row of the per-category order breakdown.
type CategorySales struct {
	Category      string  `json:"category"`
	TotalQuantity int64   `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// OrderStats expands every payment into its purchase events, resolves each
// against the catalog and groups by category. The inner join silently drops
// events whose menu item has been deleted, and revenue is computed from the
// current catalog price, not a snapshot — prices changed after purchase
// shift history.
func (h *Handler) OrderStats(c *gin.Context) {
	var rows []CategorySales
	err := h.DB.Table("payment_items").
		Select("menu_items.category AS category, COUNT(*) AS total_quantity, SUM(menu_items.price) AS total_revenue").
		Joins("JOIN menu_items ON menu_items.id = payment_items.menu_item_id").
		Group("menu_items.category").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to compute order stats"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
