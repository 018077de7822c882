package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gharseva/provider-portal/internal/backend"
	"github.com/gharseva/provider-portal/internal/models"
	"github.com/gharseva/provider-portal/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuth struct {
	session *backend.Session
	ok      bool

	probeCalls int
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (*backend.AuthResult, error) {
	return nil, nil
}

func (s *stubAuth) Signup(ctx context.Context, name, email, password string) (*backend.AuthResult, error) {
	return nil, nil
}

func (s *stubAuth) Logout(ctx context.Context, cookies []*http.Cookie) error {
	return nil
}

func (s *stubAuth) Probe(ctx context.Context, cookies []*http.Cookie) (*backend.Session, bool) {
	s.probeCalls++
	return s.session, s.ok
}

func guardedRouter(store *session.Store, auth *stubAuth, jsonMode bool) *gin.Engine {
	r := gin.New()
	r.Use(LoadState(store))
	r.GET("/protected", RequireSession(store, auth, jsonMode), func(c *gin.Context) {
		st := State(c)
		name := ""
		if st.User != nil {
			name = st.User.Name
		}
		c.JSON(http.StatusOK, gin.H{"name": name, "profileCompleted": st.ProfileCompleted})
	})
	return r
}

func newStore() *session.Store {
	return session.NewStore([]byte("0123456789abcdef0123456789abcdef"), nil, false)
}

func stateCookie(t *testing.T, store *session.Store, st session.State) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, st))
	resp := http.Response{Header: rec.Header()}
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	return &http.Cookie{Name: cookies[0].Name, Value: cookies[0].Value}
}

func TestRequireSessionSkipsProbeWithCachedIdentity(t *testing.T) {
	store := newStore()
	auth := &stubAuth{}
	r := guardedRouter(store, auth, false)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(stateCookie(t, store, session.State{User: &models.User{ID: "u1", Name: "Ravi"}}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ravi")
	assert.Zero(t, auth.probeCalls)
}

func TestRequireSessionRestoresFromProbe(t *testing.T) {
	store := newStore()
	auth := &stubAuth{
		ok: true,
		session: &backend.Session{
			User:     models.User{ID: "u1", Name: "Ravi", Email: "ravi@example.com"},
			Provider: &models.Provider{Name: "Ravi", ProfileCompleted: true},
		},
	}
	r := guardedRouter(store, auth, false)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ravi")
	assert.Contains(t, rec.Body.String(), `"profileCompleted":true`)
	assert.Equal(t, 1, auth.probeCalls)

	// The restored identity is persisted for subsequent requests.
	resp := http.Response{Header: rec.Header()}
	var saved bool
	for _, ck := range resp.Cookies() {
		if ck.Name == "gharseva_state" && ck.Value != "" {
			saved = true
		}
	}
	assert.True(t, saved)
}

func TestRequireSessionRedirectsPagesWhenProbeFails(t *testing.T) {
	store := newStore()
	auth := &stubAuth{ok: false}
	r := guardedRouter(store, auth, false)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	// Stale local state is dropped.
	resp := http.Response{Header: rec.Header()}
	var cleared bool
	for _, ck := range resp.Cookies() {
		if ck.Name == "gharseva_state" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestRequireSessionReturns401ForJSONEndpoints(t *testing.T) {
	store := newStore()
	auth := &stubAuth{ok: false}
	r := guardedRouter(store, auth, true)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authentication required")
}
