package middleware

import (
	"net/http"
	"strings"

	"freshfold/utils"

	"github.com/gin-gonic/gin"
)

// CustomerAuthMiddleware validates the bearer token and stores the customer
// id on the context for order-history endpoints.
func CustomerAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		customerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("customerID", customerID)
		c.Next()
	}
}
