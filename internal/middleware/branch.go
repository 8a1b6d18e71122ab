package middleware

import (
	"net/http"
	"strings"

	"barbercrm/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireOwnBranch rejects requests whose :branch path parameter names a
// different branch than the token. Must run after JWTAuth.
func RequireOwnBranch(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if BranchID(c) == 0 {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		requested := strings.TrimSpace(c.Param(param))
		if requested == "" || !strings.EqualFold(requested, BranchName(c)) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN_BRANCH", "Access to this branch is not allowed")
			c.Abort()
			return
		}

		c.Next()
	}
}
