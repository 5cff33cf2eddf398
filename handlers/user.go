package handlers

import (
	"errors"
	"net/http"

	"bistro-boss-api/middleware"
	"bistro-boss-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpsertUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// UpsertUser records a user on first sign-in. Repeat calls for the same
// email are no-ops, so the client can fire it on every login.
func (h *Handler) UpsertUser(c *gin.Context) {
	var req UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var existing models.User
	err := h.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to look up user"})
		return
	}

	user := models.User{Email: req.Email, Name: req.Name, Role: models.RoleUser}
	if err := h.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": user.ID})
}

// ListUsers returns all users (admin only).
func (h *Handler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUser removes a user by id (admin only).
func (h *Handler) DeleteUser(c *gin.Context) {
	res := h.DB.Where("id = ?", c.Param("id")).Delete(&models.User{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": res.RowsAffected})
}

// PromoteUser sets a user's role to admin (admin only). There is no
// demotion path; promotion of an admin is a harmless rewrite.
func (h *Handler) PromoteUser(c *gin.Context) {
	res := h.DB.Model(&models.User{}).Where("id = ?", c.Param("id")).Update("role", models.RoleAdmin)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to promote user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": res.RowsAffected, "modifiedCount": res.RowsAffected})
}

// CheckAdmin reports whether the caller is an admin. Ownership-gated: a user
// may only ask about their own email.
func (h *Handler) CheckAdmin(c *gin.Context) {
	var user models.User
	err := h.DB.Where("email = ?", middleware.GetEmail(c)).First(&user).Error
	admin := err == nil && user.IsAdmin()
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}
