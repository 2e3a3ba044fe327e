package cookie

import (
	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie the identity service sets on the storefront domain.
const SessionCookieName = "__session"

func GetSessionToken(c *gin.Context) string {
	token, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return token
}
