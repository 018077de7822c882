package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gharseva/provider-portal/internal/models"
	"github.com/gharseva/provider-portal/internal/session"
)

func TestLandingRendersForVisitors(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Trusted Home Services")
	assert.Contains(t, body, "Professional")
	assert.Contains(t, body, "Join as Provider")
	assert.NotContains(t, body, "Logout")
}

func TestLandingShowsDashboardLinkWhenLoggedIn(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	env.withState(t, req, session.State{User: &models.User{ID: "u1", Name: "Ravi"}})

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dashboard")
	assert.Contains(t, rec.Body.String(), "Logout")
}

func TestDashboardRedirectsVisitors(t *testing.T) {
	env := newTestEnv(t)
	env.auth.probeOK = false

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestDashboardGatesTabsUntilProfileExists(t *testing.T) {
	env := newTestEnv(t)
	env.prof.provider = nil

	req := httptest.NewRequest(http.MethodGet, "/dashboard?tab=leads", nil)
	env.withState(t, req, session.State{User: &models.User{ID: "u1", Name: "Ravi"}})

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Complete your profile first")
}

func TestDashboardWithoutProfileHidesCatalogAndBanner(t *testing.T) {
	env := newTestEnv(t)
	env.prof.provider = nil
	env.subs.plans = []models.Plan{
		{Key: "professional", Name: "Professional", Amount: 99900, Duration: models.PlanDuration{Value: 1, Unit: "month"}, SortOrder: 1},
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	env.withState(t, req, session.State{
		User:         &models.User{ID: "u1", Name: "Ravi"},
		SelectedPlan: &models.SelectedPlan{Key: "professional", Name: "Professional", Price: "₹999", Period: "month"},
	})

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Set up your provider profile")
	assert.NotContains(t, body, "Pay Now")
	assert.NotContains(t, body, "Unlock Your Business Potential")
	assert.NotContains(t, body, "startCheckout('professional'")
}

func TestDashboardShowsProfileAndCatalog(t *testing.T) {
	env := newTestEnv(t)
	env.prof.provider = &models.Provider{
		Name:               "Ravi Kumar",
		Phone:              "9876543210",
		Email:              "ravi@example.com",
		PrimaryService:     "Plumbing",
		PrimaryServiceArea: "Wakad",
		IsVerified:         true,
	}
	env.subs.plans = []models.Plan{
		{Key: "basic", Name: "Basic", Amount: 49900, Duration: models.PlanDuration{Value: 1, Unit: "month"}},
		{Key: "professional", Name: "Professional", Amount: 99900, Duration: models.PlanDuration{Value: 1, Unit: "month"}, SortOrder: 1},
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	env.withState(t, req, session.State{User: &models.User{ID: "u1", Name: "Ravi"}})

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Ravi Kumar")
	assert.Contains(t, body, "Verified")
	assert.Contains(t, body, "₹999")
	assert.Contains(t, body, "Most Popular")
}

func TestDashboardHidesCatalogWhenSubscribed(t *testing.T) {
	env := newTestEnv(t)
	env.prof.provider = &models.Provider{Name: "Ravi Kumar"}
	env.subs.sub = &models.Subscription{PlanName: "Professional", Status: models.SubscriptionStatusActive}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	env.withState(t, req, session.State{User: &models.User{ID: "u1", Name: "Ravi"}})

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Your Subscription")
	assert.NotContains(t, body, "Unlock Your Business Potential")
}

func TestDashboardReconcilesStaleCompletionFlag(t *testing.T) {
	env := newTestEnv(t)
	env.prof.provider = nil // backend says no profile

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	env.withState(t, req, session.State{
		User:             &models.User{ID: "u1", Name: "Ravi"},
		ProfileCompleted: true, // optimistic flag left over
	})

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	st := env.stateFrom(t, rec)
	assert.False(t, st.ProfileCompleted)
}

func TestDashboardShowsPendingPlanBanner(t *testing.T) {
	env := newTestEnv(t)
	env.prof.provider = &models.Provider{Name: "Ravi Kumar"}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	env.withState(t, req, session.State{
		User:         &models.User{ID: "u1", Name: "Ravi"},
		SelectedPlan: &models.SelectedPlan{Key: "professional", Name: "Professional", Price: "₹999", Period: "month"},
	})

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Complete the payment")
	assert.Contains(t, body, "Pay Now")
}

func TestDashboardUnknownTabFallsBackToProfile(t *testing.T) {
	env := newTestEnv(t)
	env.prof.provider = &models.Provider{Name: "Ravi Kumar"}

	req := httptest.NewRequest(http.MethodGet, "/dashboard?tab=bogus", nil)
	env.withState(t, req, session.State{User: &models.User{ID: "u1", Name: "Ravi"}})

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ravi Kumar")
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"UP"}`, rec.Body.String())
}
