package middleware

import (
	"net/http"
	"strings"

	"barbercrm/internal/pkg/jwt"
	"barbercrm/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	ctxBranchID   = "branch_id"
	ctxBranchName = "branch_name"
)

type tokenValidator interface {
	ValidateToken(tokenStr string) (*jwt.Claims, error)
}

// JWTAuth requires a valid bearer token. Websocket clients cannot set headers,
// so a "token" query parameter is accepted when the header is absent.
func JWTAuth(tokens tokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")

		if h := c.GetHeader("Authorization"); h != "" {
			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
				c.Abort()
				return
			}
			tokenStr = parts[1]
		}

		tokenStr = strings.TrimSpace(tokenStr)
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ctxBranchID, claims.BranchID)
		c.Set(ctxBranchName, claims.BranchName)
		c.Next()
	}
}

// BranchID returns the authenticated branch id, or 0.
func BranchID(c *gin.Context) int64 {
	return c.GetInt64(ctxBranchID)
}

// BranchName returns the authenticated branch name, or "".
func BranchName(c *gin.Context) string {
	return c.GetString(ctxBranchName)
}
