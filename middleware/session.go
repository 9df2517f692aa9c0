package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khmiq/ecommerce/models"
	"github.com/khmiq/ecommerce/store"
)

const sessionKey = "session"

// CurrentSession attaches a snapshot of the active session to the request
// context. Pages read it for the navbar and auth-gated actions; nil means
// logged out.
func CurrentSession(sessions *store.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := sessions.Current(); sess != nil {
			c.Set(sessionKey, sess)
		}
		c.Next()
	}
}

// RequireSession redirects anonymous visitors to the login page.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := SessionFromContext(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFromContext returns the session attached by CurrentSession.
func SessionFromContext(c *gin.Context) (*models.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*models.Session)
	return sess, ok
}
