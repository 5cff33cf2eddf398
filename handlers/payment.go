package handlers

import (
	"log/slog"
	"math"
	"net/http"

	"bistro-boss-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateIntentRequest struct {
	Price float64 `json:"price" binding:"gte=0"`
}

// toMinorUnits converts a major-unit decimal price to the integral
// minor-unit amount the gateway expects. Policy is round-to-nearest via
// math.Round, so 19.999 charges 2000 cents rather than truncating to 1999.
func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreatePaymentIntent asks the gateway for a payment intent covering the
// given price and returns the client secret the frontend needs.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	intent, err := h.Gateway.CreateIntent(c.Request.Context(), toMinorUnits(req.Price), "usd")
	if err != nil {
		slog.Error("payment intent failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"message": "payment gateway error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}

type RecordPaymentRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	Amount        float64 `json:"amount" binding:"gte=0"`
	TransactionID string  `json:"transactionId"`
	CartIDs       []uint  `json:"cartIds" binding:"required,min=1"`
	MenuItemIDs   []uint  `json:"menuItemIds" binding:"required,min=1"`
}

// RecordPayment settles a confirmed payment in two phases: insert the ledger
// entry, then clear the cart rows it covers. The two writes are deliberately
// not a transaction. A failed insert aborts everything; once the ledger row
// exists it stands no matter what the cleanup does, and the response reports
// each phase so the caller can see a partial outcome.
func (h *Handler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if len(req.CartIDs) != len(req.MenuItemIDs) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "cartIds and menuItemIds must have the same length"})
		return
	}

	reference := req.TransactionID
	if reference == "" {
		reference = uuid.NewString()
	}

	items := make([]models.PaymentItem, 0, len(req.CartIDs))
	for i, cartID := range req.CartIDs {
		items = append(items, models.PaymentItem{
			CartItemID: cartID,
			MenuItemID: req.MenuItemIDs[i],
		})
	}

	payment := models.Payment{
		Email:     req.Email,
		Amount:    req.Amount,
		Reference: reference,
		Items:     items,
	}
	if err := h.DB.Create(&payment).Error; err != nil {
		slog.Error("settlement failed", "email", req.Email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "settlement failed"})
		return
	}

	// Advisory cleanup: ids that are already gone simply don't count.
	res := h.DB.Where("id IN ?", req.CartIDs).Delete(&models.CartItem{})
	if res.Error != nil {
		slog.Warn("cart cleanup failed after settlement", "payment_id", payment.ID, "error", res.Error)
	}

	c.JSON(http.StatusOK, gin.H{
		"paymentResult": gin.H{"insertedId": payment.ID, "reference": payment.Reference},
		"deleteResult":  gin.H{"deletedCount": res.RowsAffected, "acknowledged": res.Error == nil},
	})
}

// PaymentHistory returns the payer's ledger entries, newest first.
// Ownership-gated: the path email must match the token subject.
func (h *Handler) PaymentHistory(c *gin.Context) {
	var payments []models.Payment
	err := h.DB.Preload("Items").
		Where("email = ?", c.Param("email")).
		Order("created_at desc").
		Find(&payments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}
