package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qslrm-api/services"
)

// Context keys set by AuthMiddleware.
const (
	ContextResearcherID = "researcherId"
	ContextEmail        = "email"
)

// AuthMiddleware verifies the Bearer token and stores the researcher
// identity in the request context.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextResearcherID, claims.ResearcherID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}
