package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront-payments/internal/handler/httperr"
	"storefront-payments/internal/pkg/cookie"
	"storefront-payments/internal/pkg/errs"
	"storefront-payments/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxSessionEmailKey = "session_email"

var errMissingSession = errs.New("missing session token")

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireSession accepts the session cookie or a Bearer header.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Session required", nil)
			return
		}

		email, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Session validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session", nil)
			return
		}

		c.Set(ctxSessionEmailKey, email)
		c.Next()
	}
}

func GetSessionEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSessionEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
