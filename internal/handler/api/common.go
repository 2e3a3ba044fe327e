package api

import (
	"net/http"

	"storefront-orders/internal/domain/user"
	"storefront-orders/internal/handler/httperr"
	"storefront-orders/internal/handler/middleware"
	"storefront-orders/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// identityOrAbort reads the identity set by RequireAuth.
func identityOrAbort(c *gin.Context) (user.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithKind(c, usecase.ErrInvalidCredentials)
		return user.Identity{}, false
	}
	return identity, true
}

func pathIDOrAbort(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
