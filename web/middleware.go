package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/govista/govista-web/auth"
)

const sessionCookie = "govista_session"

const loginPath = "/auth/login"

// Sessions resolves the session cookie and tags both the gin context
// and the request context, so the API client's token source can find
// the caller's credentials.
func Sessions(store *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)

		if err != nil {
			return
		}

		sess, found := store.Get(id)

		if !found {
			return
		}

		c.Set("session", sess)
		c.Set("sessionID", id)
		c.Request = c.Request.WithContext(auth.ContextWithSessionID(c.Request.Context(), id))
	}
}

// RequireUser redirects anonymous requests to the login page.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("session"); !exists {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
		}
	}
}

// RequireOperator gates the operator route tree on an operator session.
func RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("session")

		if !exists {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		if !value.(auth.Session).IsOperator() {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
		}
	}
}

func currentSession(c *gin.Context) (auth.Session, string) {
	value, exists := c.Get("session")

	if !exists {
		return auth.Session{}, ""
	}

	return value.(auth.Session), c.GetString("sessionID")
}
