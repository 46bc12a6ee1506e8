package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"weddingapi/utils"
)

// Authenticate verifies the Authorization token and injects userId and
// userUID into the request context for the handlers behind it.
func Authenticate(c *gin.Context) {
	token := c.Request.Header.Get("Authorization")
	token = strings.TrimPrefix(token, "Bearer ")
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized."})
		return
	}

	userId, userUID, err := utils.VerifyToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized."})
		return
	}

	c.Set("userId", userId)
	c.Set("userUID", userUID)
	c.Next()
}
