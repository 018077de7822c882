package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gharseva/provider-portal/internal/backend"
	"github.com/gharseva/provider-portal/internal/core"
	"github.com/gharseva/provider-portal/internal/middleware"
	"github.com/gharseva/provider-portal/internal/session"
)

const (
	loginFallbackMsg  = "Login failed. Please try again."
	signupFallbackMsg = "Signup failed. Please try again."
)

// AuthHandler serves the login, signup, and logout form posts.
type AuthHandler struct {
	auth   core.AuthService
	store  *session.Store
	logger *zap.Logger
}

// NewAuthHandler creates the AuthHandler.
func NewAuthHandler(auth core.AuthService, store *session.Store, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, store: store, logger: logger}
}

// Login handles POST /auth/login. On success the backend's session cookies
// are relayed to the browser, the identity is cached, and the user always
// lands on the dashboard; the dashboard owns resuming any pending plan.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	result, err := h.auth.Login(c.Request.Context(), email, password)
	if err != nil {
		h.logger.Warn("login failed", zap.Error(err))
		h.store.SetFlash(c.Writer, session.Flash{
			Kind:    "error",
			Message: backend.Message(err, loginFallbackMsg),
		})
		// Reopen the login modal with the form still usable.
		c.Redirect(http.StatusFound, "/?login=1")
		return
	}

	h.finishAuth(c, result)
}

// Signup handles POST /auth/signup. A plan selected before signup survives
// in the state cookie and is not touched here.
func (h *AuthHandler) Signup(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")

	result, err := h.auth.Signup(c.Request.Context(), name, email, password)
	if err != nil {
		h.logger.Warn("signup failed", zap.Error(err))
		h.store.SetFlash(c.Writer, session.Flash{
			Kind:    "error",
			Message: backend.Message(err, signupFallbackMsg),
		})
		c.Redirect(http.StatusFound, "/?signup=1")
		return
	}

	h.finishAuth(c, result)
}

func (h *AuthHandler) finishAuth(c *gin.Context, result *backend.AuthResult) {
	// Relay the backend's session cookies; they are the real credential.
	for _, ck := range result.Cookies {
		http.SetCookie(c.Writer, ck)
	}

	st := middleware.State(c)
	st.User = &result.User
	middleware.SetState(c, h.store, st)

	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout handles POST /auth/logout. Local state is cleared unconditionally:
// a failed backend logout leaves at worst a remote session that the backend
// will reject on next use.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), c.Request.Cookies()); err != nil {
		h.logger.Warn("backend logout failed", zap.Error(err))
	}
	h.store.Clear(c.Writer)
	c.Redirect(http.StatusFound, "/")
}
