package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gharseva/provider-portal/internal/core"
	"github.com/gharseva/provider-portal/internal/session"
)

// Context keys populated by the session middleware.
const (
	StateKey = "portalState"
)

// LoadState makes the decoded state cookie available to every handler, even
// public pages: the landing page needs the cached identity for its nav and
// the pending plan for the signup modal.
func LoadState(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(StateKey, store.Load(c.Request))
		c.Next()
	}
}

// State retrieves the state placed by LoadState.
func State(c *gin.Context) session.State {
	if v, ok := c.Get(StateKey); ok {
		if st, ok := v.(session.State); ok {
			return st
		}
	}
	return session.State{}
}

// SetState replaces the state for downstream handlers and persists it.
func SetState(c *gin.Context, store *session.Store, st session.State) {
	c.Set(StateKey, st)
	_ = store.Save(c.Writer, st)
}

// RequireSession restores the session before protected pages: when no cached
// identity exists it probes the backend's "who am I" endpoint with the
// request's cookies. A failed probe clears any stale local identity and
// treats the visitor as unauthenticated. Pages are redirected to the landing
// page; JSON endpoints get a 401.
func RequireSession(store *session.Store, auth core.AuthService, jsonMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := State(c)
		if st.User == nil {
			sess, ok := auth.Probe(c.Request.Context(), c.Request.Cookies())
			if !ok {
				store.Clear(c.Writer)
				if jsonMode {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
				} else {
					c.Redirect(http.StatusFound, "/")
					c.Abort()
				}
				return
			}
			st.User = &sess.User
			st.ProfileCompleted = sess.Provider != nil && sess.Provider.ProfileCompleted
			SetState(c, store, st)
		}
		c.Next()
	}
}
