package middleware

import (
	"log/slog"
	"strings"

	"storefront-orders/internal/domain/user"
	"storefront-orders/internal/handler/httperr"
	"storefront-orders/internal/pkg/cookie"
	"storefront-orders/internal/usecase"
	"storefront-orders/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	resolver usecase.IdentityResolver
	logger   *slog.Logger
}

const ctxIdentityKey = "identity"

func NewAuthMiddleware(resolver usecase.IdentityResolver, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.resolver.Resolve(bearerOrCookie(c))
		if err != nil {
			m.logger.Warn("identity resolution failed", "error", err.Error(), "path", c.Request.URL.Path)
			httperr.AbortWithKind(c, err)
			return
		}

		c.Set(ctxIdentityKey, identity)
		c.Set("jwt_claims", map[string]any{
			"user_id": identity.ID,
			"role":    string(identity.Role),
		})
		c.Next()
	}
}

// RequireStaff must run after RequireAuth.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok || !identity.Staff {
			httperr.AbortWithKind(c, queries.ErrStaffOnly)
			return
		}
		c.Next()
	}
}

func bearerOrCookie(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetIdentity(c *gin.Context) (user.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return user.Identity{}, false
	}
	identity, ok := v.(user.Identity)
	return identity, ok
}
