package middleware

import (
	"strings" // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
)

// ContextTokenKey is where the raw bearer token is stored in the gin
// context.
const ContextTokenKey = "accessToken"

// BearerToken extracts the raw token from the Authorization header and
// stores it in the context. It never rejects a request: the services run
// the authorization guard themselves and distinguish a missing token from
// a malformed one, so a missing header is stored as the empty string.
func BearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tok := ""
		if strings.HasPrefix(header, "Bearer ") {
			tok = strings.TrimPrefix(header, "Bearer ")
		}
		c.Set(ContextTokenKey, tok)
		c.Next()
	}
}

// Token reads the bearer token stored by BearerToken.
func Token(c *gin.Context) string {
	return c.GetString(ContextTokenKey)
}
