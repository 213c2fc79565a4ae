// Package middleware gates the protected routes. Every failure mode —
// missing header, malformed header, bad signature, expired token — is
// surfaced as the same 401.
package middleware

import (
	"net/http"
	"strings"

	"ctchen222/studio-backend/internal/api/apperrors"
	"ctchen222/studio-backend/internal/api/response"
	"ctchen222/studio-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// UsernameKey is the gin context key the authenticated username is stored
// under for downstream handlers.
const UsernameKey = "auth.username"

// RequireAuth verifies the bearer token on the request and aborts with
// 401 when it is missing or invalid.
func RequireAuth(secretKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			reject(c)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			reject(c)
			return
		}

		username, err := auth.VerifyToken(parts[1], secretKey)
		if err != nil {
			reject(c)
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}

func reject(c *gin.Context) {
	response.ErrorResponse(c, http.StatusUnauthorized, apperrors.ErrUnauthenticated.Error())
	c.Abort()
}
