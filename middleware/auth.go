package middleware

import (
	"net/http"
	"strings"

	"bistro-boss-api/auth"
	"bistro-boss-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ctxEmail is the gin context key holding the verified subject email.
const ctxEmail = "email"

// AuthRequired validates the bearer token and injects the verified subject
// email into the context for downstream checks. Missing header, missing
// token, bad signature and expiry all yield the same 401.
func AuthRequired(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		c.Set(ctxEmail, claims.Email)
		c.Next()
	}
}

// OwnerRequired enforces that the email path parameter matches the verified
// subject. Runs after AuthRequired.
func OwnerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param("email") != GetEmail(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}

// AdminRequired loads the verified subject's user record and enforces the
// admin role. An absent user is just as forbidden as a non-admin one.
// Runs after AuthRequired.
func AdminRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		err := db.Where("email = ?", GetEmail(c)).First(&user).Error
		if err != nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}

// GetEmail extracts the verified subject email from context.
func GetEmail(c *gin.Context) string {
	return c.GetString(ctxEmail)
}
