package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bura/internal/pkg/response"
)

// InternalTokenAuth protects internal endpoints using a static bearer token.
// An empty token disables the endpoints.
func InternalTokenAuth(token string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			logAuthFailure(logger, c, http.StatusForbidden, "disabled")
			response.AbortError(c, http.StatusForbidden, "Internal endpoints are disabled")
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logAuthFailure(logger, c, http.StatusUnauthorized, "missing_auth")
			response.AbortError(c, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logAuthFailure(logger, c, http.StatusUnauthorized, "invalid_auth_format")
			response.AbortError(c, http.StatusUnauthorized, "Authorization header must be 'Bearer <token>'")
			return
		}

		if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(parts[1])), []byte(token)) != 1 {
			logAuthFailure(logger, c, http.StatusForbidden, "invalid_token")
			response.AbortError(c, http.StatusForbidden, "Invalid internal token")
			return
		}

		c.Next()
	}
}

func logAuthFailure(logger *zap.Logger, c *gin.Context, status int, reason string) {
	logger.Warn("internal_auth",
		zap.Int("status", status),
		zap.String("request_id", requestID(c)),
		zap.String("reason", reason),
	)
}
