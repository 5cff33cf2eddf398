package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type IssueTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// IssueToken signs a short-lived identity token for the given email.
// Credential checking happens upstream at the identity provider; this
// endpoint only converts a verified identity payload into a bearer token.
func (h *Handler) IssueToken(c *gin.Context) {
	var req IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	token, err := h.Tokens.Issue(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
