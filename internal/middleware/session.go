package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie makes sure every request carries a session id cookie.
// The id is exposed to handlers through SessionID.
func (m Middleware) SessionCookie() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(m.cookie.name)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}

		// Refresh on every request so the cookie outlives the idle session TTL.
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(m.cookie.name, id, m.cookie.maxAge, "/", "", m.cookie.secure, true)
		c.Set(sessionIDKey, id)
		c.Next()
	}
}

// SessionID returns the id stored by SessionCookie, or "".
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
