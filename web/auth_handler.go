package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/govista/govista-web/auth"
	"github.com/govista/govista-web/govista"
)

// Authenticator signs a user in against the remote API.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (govista.LoginResult, error)
}

type AuthHandler struct {
	authenticator Authenticator
	store         *auth.Store
}

func NewAuthHandler(authenticator Authenticator, store *auth.Store) *AuthHandler {
	return &AuthHandler{authenticator: authenticator, store: store}
}

func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/login", h.LoginForm)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{"Session": auth.Session{}})
}

// Login exchanges the form credentials for a bearer token and opens a
// session. The landing page depends on the role; an operator token is
// stored as the admin token so it wins on outbound calls.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	result, err := h.authenticator.Login(c.Request.Context(), email, password)

	if err != nil {
		c.Error(err)
		c.HTML(http.StatusUnauthorized, "login.tmpl", gin.H{
			"Session": auth.Session{},
			"Error":   govista.UserMessage(err),
		})
		return
	}

	sess := auth.Session{Role: result.User.Role, Name: result.User.FullName()}

	var landing string

	switch result.User.Role {
	case auth.RoleUser:
		sess.Token = result.Token
		landing = "/tours"
	case auth.RoleOperator:
		sess.AdminToken = result.Token
		landing = "/operator/bookings"
	default:
		c.HTML(http.StatusForbidden, "login.tmpl", gin.H{
			"Session": auth.Session{},
			"Error":   "Unknown role. Cannot redirect.",
		})
		return
	}

	id := h.store.Create(sess)
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, landing)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if id, err := c.Cookie(sessionCookie); err == nil {
		h.store.Delete(id)
	}

	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, loginPath)
}
