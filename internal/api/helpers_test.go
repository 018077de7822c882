package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gharseva/provider-portal/internal/backend"
	"github.com/gharseva/provider-portal/internal/core"
	"github.com/gharseva/provider-portal/internal/middleware"
	"github.com/gharseva/provider-portal/internal/models"
	"github.com/gharseva/provider-portal/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAuth struct {
	loginResult  *backend.AuthResult
	loginErr     error
	signupResult *backend.AuthResult
	signupErr    error
	logoutErr    error
	probeSession *backend.Session
	probeOK      bool

	logoutCalls int
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*backend.AuthResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAuth) Signup(ctx context.Context, name, email, password string) (*backend.AuthResult, error) {
	return f.signupResult, f.signupErr
}

func (f *fakeAuth) Logout(ctx context.Context, cookies []*http.Cookie) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAuth) Probe(ctx context.Context, cookies []*http.Cookie) (*backend.Session, bool) {
	return f.probeSession, f.probeOK
}

type fakeProfiles struct {
	provider  *models.Provider
	getErr    error
	submitted *backend.ProfileSubmission
	submitErr error
}

func (f *fakeProfiles) Get(ctx context.Context, cookies []*http.Cookie) (*models.Provider, error) {
	return f.provider, f.getErr
}

func (f *fakeProfiles) Submit(ctx context.Context, cookies []*http.Cookie, sub backend.ProfileSubmission) (*models.Provider, error) {
	f.submitted = &sub
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.provider, nil
}

func (f *fakeProfiles) Suggestions(category models.ServiceCategory, name string) []string {
	return category.Suggestions(name)
}

type fakeSubs struct {
	sub       *models.Subscription
	plans     []models.Plan
	order     *models.Order
	orderErr  error
	verifyErr error

	orderCalls int
}

func (f *fakeSubs) Current(ctx context.Context, cookies []*http.Cookie) (*models.Subscription, error) {
	return f.sub, nil
}

func (f *fakeSubs) Plans(ctx context.Context) ([]models.Plan, error) {
	return f.plans, nil
}

func (f *fakeSubs) CreateOrder(ctx context.Context, cookies []*http.Cookie, planKey string) (*models.Order, error) {
	f.orderCalls++
	return f.order, f.orderErr
}

func (f *fakeSubs) Verify(ctx context.Context, cookies []*http.Cookie, cb models.PaymentCallback) error {
	return f.verifyErr
}

type fakeGateway struct {
	available bool
}

func (f *fakeGateway) Available() bool { return f.available }

func (f *fakeGateway) CheckoutOptions(order models.Order, planName, prefillName, prefillEmail string) core.CheckoutOptions {
	return core.CheckoutOptions{
		OrderID:     order.OrderID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Key:         order.Key,
		Description: planName + " Subscription",
		Prefill:     core.CheckoutPrefill{Name: prefillName, Email: prefillEmail},
	}
}

type testEnv struct {
	router *gin.Engine
	store  *session.Store
	auth   *fakeAuth
	prof   *fakeProfiles
	subs   *fakeSubs
	gw     *fakeGateway
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := session.NewStore([]byte("0123456789abcdef0123456789abcdef"), nil, false)
	env := &testEnv{
		store: store,
		auth:  &fakeAuth{},
		prof:  &fakeProfiles{},
		subs:  &fakeSubs{},
		gw:    &fakeGateway{available: true},
	}

	logger := zap.NewNop()
	flow := core.NewFlow(env.prof, env.subs, env.gw, logger)

	router := gin.New()
	router.SetFuncMap(TemplateFuncs())
	router.LoadHTMLGlob("../../web/templates/*.html")
	router.Use(middleware.LoadState(store))
	SetupRoutes(router, Handlers{
		Pages:         NewPageHandler(flow, env.prof, store, logger),
		Auth:          NewAuthHandler(env.auth, store, logger),
		Profile:       NewProfileHandler(env.prof, store, logger),
		Subscriptions: NewSubscriptionHandler(flow, env.prof, store, logger),
	}, store, env.auth)
	env.router = router
	return env
}

// withState attaches an encoded state cookie to the request.
func (e *testEnv) withState(t *testing.T, req *http.Request, st session.State) {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, e.store.Save(rec, st))
	resp := http.Response{Header: rec.Header()}
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	req.AddCookie(&http.Cookie{Name: cookies[0].Name, Value: cookies[0].Value})
}

// stateFrom decodes the state cookie a response set.
func (e *testEnv) stateFrom(t *testing.T, rec *httptest.ResponseRecorder) session.State {
	t.Helper()
	resp := http.Response{Header: rec.Header()}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range resp.Cookies() {
		if ck.Name == "gharseva_state" && ck.MaxAge >= 0 {
			req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
		}
	}
	return e.store.Load(req)
}

// flashFrom decodes the flash cookie a response set.
func (e *testEnv) flashFrom(t *testing.T, rec *httptest.ResponseRecorder) *session.Flash {
	t.Helper()
	resp := http.Response{Header: rec.Header()}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range resp.Cookies() {
		if ck.Name == "gharseva_flash" && ck.MaxAge >= 0 {
			req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
		}
	}
	return e.store.PopFlash(httptest.NewRecorder(), req)
}

// stateCleared reports whether the response expired the state cookie.
func stateCleared(rec *httptest.ResponseRecorder) bool {
	resp := http.Response{Header: rec.Header()}
	for _, ck := range resp.Cookies() {
		if ck.Name == "gharseva_state" && ck.MaxAge < 0 {
			return true
		}
	}
	return false
}
